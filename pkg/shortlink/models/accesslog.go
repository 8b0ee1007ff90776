package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessLogEntry is an immutable record of one successful resolution.
// Rows are only ever inserted; retention is an operational concern.
type AccessLogEntry struct {
	ID         string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LinkID     string    `gorm:"size:36;not null;index" json:"link_id"`
	AccessedAt time.Time `gorm:"not null;index" json:"accessed_at"`
	IPAddress  string    `gorm:"size:45;not null;index" json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer"`
	Country    string    `gorm:"size:50;index" json:"country"`
}

func (a *AccessLogEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
