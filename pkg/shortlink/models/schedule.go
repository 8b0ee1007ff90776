package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a time-boxed override of a link's target URL.
// Both bounds are required and StartTime must precede EndTime.
type Schedule struct {
	ID        string         `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	LinkID    string         `gorm:"size:36;not null;index" json:"link_id"`
	TargetURL string         `gorm:"not null" json:"target_url"`
	StartTime time.Time      `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time      `gorm:"not null;index" json:"end_time"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Bounds returns the schedule window for the temporal activity predicate.
func (s Schedule) Bounds() (*time.Time, *time.Time) {
	return &s.StartTime, &s.EndTime
}
