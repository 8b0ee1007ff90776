package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordProtection gates access to a link with a bcrypt-hashed secret.
// Either bound may be nil; a nil bound is unbounded in that direction, and a
// protection with no bounds at all is always active.
type PasswordProtection struct {
	ID        string         `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	LinkID    string         `gorm:"size:36;not null;index" json:"link_id"`
	Hash      string         `gorm:"size:100;not null" json:"-"`
	StartTime *time.Time     `gorm:"index" json:"start_time,omitempty"`
	EndTime   *time.Time     `gorm:"index" json:"end_time,omitempty"`
}

func (p *PasswordProtection) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Bounds returns the protection window for the temporal activity predicate.
func (p PasswordProtection) Bounds() (*time.Time, *time.Time) {
	return p.StartTime, p.EndTime
}
