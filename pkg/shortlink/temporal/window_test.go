package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func TestActiveAtBoundedWindow(t *testing.T) {
	s := models.Schedule{
		StartTime: ts("2025-06-01T00:00:00Z"),
		EndTime:   ts("2025-06-30T00:00:00Z"),
	}

	assert.False(t, ActiveAt(s, ts("2025-05-31T23:59:59Z")))
	assert.True(t, ActiveAt(s, ts("2025-06-01T00:00:00Z")), "start bound is inclusive")
	assert.True(t, ActiveAt(s, ts("2025-06-15T12:00:00Z")))
	assert.True(t, ActiveAt(s, ts("2025-06-30T00:00:00Z")), "end bound is inclusive")
	assert.False(t, ActiveAt(s, ts("2025-06-30T00:00:01Z")))
}

func TestActiveAtNullableBounds(t *testing.T) {
	now := ts("2025-06-15T00:00:00Z")

	always := models.PasswordProtection{}
	assert.True(t, ActiveAt(always, now), "no bounds means always active")

	openEnded := models.PasswordProtection{StartTime: tsp("2025-06-01T00:00:00Z")}
	assert.True(t, ActiveAt(openEnded, now))
	assert.False(t, ActiveAt(openEnded, ts("2025-05-01T00:00:00Z")))

	openStart := models.PasswordProtection{EndTime: tsp("2025-06-30T00:00:00Z")}
	assert.True(t, ActiveAt(openStart, now))
	assert.False(t, ActiveAt(openStart, ts("2025-07-01T00:00:00Z")))
}

func TestEffectiveTargetDefaultsWhenNoScheduleActive(t *testing.T) {
	schedules := []models.Schedule{
		{
			TargetURL: "https://b.example",
			StartTime: ts("2025-06-01T00:00:00Z"),
			EndTime:   ts("2025-06-02T00:00:00Z"),
		},
	}

	got := EffectiveTarget("https://a.example", schedules, ts("2025-06-10T00:00:00Z"))
	assert.Equal(t, "https://a.example", got)

	got = EffectiveTarget("https://a.example", nil, ts("2025-06-10T00:00:00Z"))
	assert.Equal(t, "https://a.example", got)
}

func TestEffectiveTargetActiveScheduleOverrides(t *testing.T) {
	schedules := []models.Schedule{
		{
			TargetURL: "https://b.example",
			StartTime: ts("2025-06-01T00:00:00Z"),
			EndTime:   ts("2025-06-30T00:00:00Z"),
		},
	}

	got := EffectiveTarget("https://a.example", schedules, ts("2025-06-15T00:00:00Z"))
	assert.Equal(t, "https://b.example", got)
}

func TestEffectiveTargetEarliestStartWins(t *testing.T) {
	later := models.Schedule{
		ID:        "s2",
		TargetURL: "https://later.example",
		StartTime: ts("2025-06-10T00:00:00Z"),
		EndTime:   ts("2025-06-20T00:00:00Z"),
	}
	earlier := models.Schedule{
		ID:        "s1",
		TargetURL: "https://earlier.example",
		StartTime: ts("2025-06-01T00:00:00Z"),
		EndTime:   ts("2025-06-30T00:00:00Z"),
	}
	now := ts("2025-06-15T00:00:00Z")

	// Selection must not depend on slice order.
	assert.Equal(t, "https://earlier.example", EffectiveTarget("https://a.example", []models.Schedule{later, earlier}, now))
	assert.Equal(t, "https://earlier.example", EffectiveTarget("https://a.example", []models.Schedule{earlier, later}, now))
}

func TestEffectiveTargetTieBreaksDeterministically(t *testing.T) {
	start := ts("2025-06-01T00:00:00Z")
	end := ts("2025-06-30T00:00:00Z")
	first := models.Schedule{ID: "a", TargetURL: "https://first.example", StartTime: start, EndTime: end}
	second := models.Schedule{ID: "b", TargetURL: "https://second.example", StartTime: start, EndTime: end}
	now := ts("2025-06-15T00:00:00Z")

	assert.Equal(t, "https://first.example", EffectiveTarget("https://a.example", []models.Schedule{second, first}, now))
	assert.Equal(t, "https://first.example", EffectiveTarget("https://a.example", []models.Schedule{first, second}, now))
}

func TestActiveFilters(t *testing.T) {
	now := ts("2025-06-15T00:00:00Z")
	schedules := []models.Schedule{
		{ID: "in", StartTime: ts("2025-06-01T00:00:00Z"), EndTime: ts("2025-06-30T00:00:00Z")},
		{ID: "out", StartTime: ts("2025-07-01T00:00:00Z"), EndTime: ts("2025-07-30T00:00:00Z")},
	}
	active := ActiveSchedules(schedules, now)
	assert.Len(t, active, 1)
	assert.Equal(t, "in", active[0].ID)

	passwords := []models.PasswordProtection{
		{ID: "always"},
		{ID: "expired", EndTime: tsp("2025-06-01T00:00:00Z")},
	}
	activePw := ActivePasswords(passwords, now)
	assert.Len(t, activePw, 1)
	assert.Equal(t, "always", activePw[0].ID)
}
