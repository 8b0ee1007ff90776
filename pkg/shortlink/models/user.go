package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account that owns links
type User struct {
	ID                string         `gorm:"primarykey;size:36" json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	Email             string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string         `json:"-"`
	IsVerified        bool           `gorm:"default:false" json:"is_verified"`
	VerificationToken string         `json:"-"`

	// Relationships
	Links    []Link        `gorm:"foreignKey:UserID" json:"links,omitempty"`
	Sessions []UserSession `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
