// Package temporal decides whether time-windowed entities are active at a
// reference instant and selects the effective target among overlapping
// schedules. Everything here is pure: the caller always supplies now.
package temporal

import (
	"time"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

// Window is any entity bounded by an optional start and end instant.
// A nil bound is unbounded in that direction.
type Window interface {
	Bounds() (start *time.Time, end *time.Time)
}

// ActiveAt reports whether the window contains now. Both bounds are
// inclusive; a window with neither bound is always active.
func ActiveAt(w Window, now time.Time) bool {
	start, end := w.Bounds()
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}

// ActiveSchedules filters schedules down to those whose window contains now.
func ActiveSchedules(schedules []models.Schedule, now time.Time) []models.Schedule {
	var active []models.Schedule
	for _, s := range schedules {
		if ActiveAt(s, now) {
			active = append(active, s)
		}
	}
	return active
}

// ActivePasswords filters password protections down to those active at now.
func ActivePasswords(passwords []models.PasswordProtection, now time.Time) []models.PasswordProtection {
	var active []models.PasswordProtection
	for _, p := range passwords {
		if ActiveAt(p, now) {
			active = append(active, p)
		}
	}
	return active
}

// EffectiveTarget returns the URL a link should serve at now.
//
// When several schedules are active at once the earliest-starting one wins;
// ties on StartTime fall back to creation order, then ID, so the choice is
// deterministic regardless of how the rows were fetched. With no active
// schedule the link's default target is returned.
func EffectiveTarget(defaultURL string, schedules []models.Schedule, now time.Time) string {
	var chosen *models.Schedule
	for i := range schedules {
		s := &schedules[i]
		if !ActiveAt(*s, now) {
			continue
		}
		if chosen == nil || startsBefore(s, chosen) {
			chosen = s
		}
	}
	if chosen == nil {
		return defaultURL
	}
	return chosen.TargetURL
}

func startsBefore(a, b *models.Schedule) bool {
	if !a.StartTime.Equal(b.StartTime) {
		return a.StartTime.Before(b.StartTime)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
