package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link represents a shortened URL with optional expiry, schedules and password gates
type Link struct {
	ID          string         `gorm:"primarykey;size:36" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	ShortCode   string         `gorm:"uniqueIndex;size:20;not null" json:"short_code"`
	TargetURL   string         `gorm:"not null" json:"target_url"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	ExpiresAt   *time.Time     `gorm:"index" json:"expires_at,omitempty"`
	AccessLimit *int           `json:"access_limit,omitempty"`
	MetaTag     string         `json:"meta_tag,omitempty"`
	UserID      *string        `gorm:"size:36;index" json:"user_id,omitempty"` // nullable: links outlive their owner

	// Relationships
	User       *User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules  []Schedule           `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"schedules,omitempty"`
	Passwords  []PasswordProtection `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"passwords,omitempty"`
	AccessLogs []AccessLogEntry     `gorm:"foreignKey:LinkID" json:"access_logs,omitempty"`
}

func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
