package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/analytics"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/gate"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func newTestEngine(db *gorm.DB) *Engine {
	return NewEngine(db, nil, zerolog.Nop())
}

func createLink(t *testing.T, db *gorm.DB, link models.Link) models.Link {
	if link.TargetURL == "" {
		link.TargetURL = "https://example.com"
	}
	link.IsActive = true
	require.NoError(t, db.Create(&link).Error)
	return link
}

func TestResolvePlainLink(t *testing.T) {
	db := setupTestDB(t)
	createLink(t, db, models.Link{ShortCode: "abc123", TargetURL: "https://example.com/page"})

	res, err := newTestEngine(db).Resolve(context.Background(), "abc123", "", analytics.RequestContext{})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/page", res.TargetURL)
	assert.False(t, res.PasswordRequired)
}

func TestResolveUnknownCode(t *testing.T) {
	db := setupTestDB(t)

	_, err := newTestEngine(db).Resolve(context.Background(), "nosuch", "", analytics.RequestContext{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveExpiredLink(t *testing.T) {
	db := setupTestDB(t)
	past := time.Now().Add(-time.Hour)
	createLink(t, db, models.Link{ShortCode: "old001", ExpiresAt: &past})

	_, err := newTestEngine(db).Resolve(context.Background(), "old001", "", analytics.RequestContext{})
	assert.ErrorIs(t, err, ErrNotFound, "expired is indistinguishable from missing")
}

func TestResolveInactiveLink(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "off001"})
	require.NoError(t, db.Model(&link).Update("is_active", false).Error)

	_, err := newTestEngine(db).Resolve(context.Background(), "off001", "", analytics.RequestContext{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveDeletedLink(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "del001"})
	require.NoError(t, db.Delete(&link).Error)

	_, err := newTestEngine(db).Resolve(context.Background(), "del001", "", analytics.RequestContext{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveActiveScheduleOverridesTarget(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "sch001", TargetURL: "https://default.example"})

	now := time.Now()
	require.NoError(t, db.Create(&models.Schedule{
		LinkID:    link.ID,
		TargetURL: "https://override.example",
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}).Error)

	res, err := newTestEngine(db).Resolve(context.Background(), "sch001", "", analytics.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", res.TargetURL)
}

func TestResolveInactiveScheduleFallsBackToDefault(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "sch002", TargetURL: "https://default.example"})

	now := time.Now()
	require.NoError(t, db.Create(&models.Schedule{
		LinkID:    link.ID,
		TargetURL: "https://override.example",
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}).Error)

	res, err := newTestEngine(db).Resolve(context.Background(), "sch002", "", analytics.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, "https://default.example", res.TargetURL)
}

func TestResolvePasswordGate(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "pw0001", TargetURL: "https://secret.example"})

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	engine := newTestEngine(db)

	// No secret: resolution withholds the target behind the gate
	res, err := engine.Resolve(context.Background(), "pw0001", "", analytics.RequestContext{})
	require.NoError(t, err)
	assert.True(t, res.PasswordRequired)
	assert.Empty(t, res.TargetURL)

	// Correct secret
	res, err = engine.Resolve(context.Background(), "pw0001", "open-sesame", analytics.RequestContext{})
	require.NoError(t, err)
	assert.False(t, res.PasswordRequired)
	assert.Equal(t, "https://secret.example", res.TargetURL)

	// Wrong secret
	_, err = engine.Resolve(context.Background(), "pw0001", "wrong", analytics.RequestContext{})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestResolveExpiredPasswordWindowIsOpen(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "pw0002", TargetURL: "https://example.com"})

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	start := time.Now().Add(-2 * time.Hour)
	end := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.PasswordProtection{
		LinkID:    link.ID,
		Hash:      hash,
		StartTime: &start,
		EndTime:   &end,
	}).Error)

	res, err := newTestEngine(db).Resolve(context.Background(), "pw0002", "", analytics.RequestContext{})
	require.NoError(t, err)
	assert.False(t, res.PasswordRequired, "a protection outside its window does not gate")
	assert.Equal(t, "https://example.com", res.TargetURL)
}

func TestResolveAccessLimit(t *testing.T) {
	db := setupTestDB(t)
	limit := 1
	link := createLink(t, db, models.Link{ShortCode: "lim001", AccessLimit: &limit})

	engine := newTestEngine(db)

	res, err := engine.Resolve(context.Background(), "lim001", "", analytics.RequestContext{})
	require.NoError(t, err, "under the limit the link still resolves")
	assert.Equal(t, "https://example.com", res.TargetURL)

	require.NoError(t, db.Create(&models.AccessLogEntry{
		LinkID:     link.ID,
		AccessedAt: time.Now(),
		IPAddress:  "127.0.0.1",
	}).Error)

	_, err = engine.Resolve(context.Background(), "lim001", "", analytics.RequestContext{})
	assert.ErrorIs(t, err, ErrNotFound, "an exhausted link looks gone, not forbidden")
}

func TestResolveRecordsAccess(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "rec001"})

	rec := analytics.NewRecorder(db, analytics.StubGeoResolver{}, zerolog.Nop(), 4)
	engine := NewEngine(db, rec, zerolog.Nop())

	_, err := engine.Resolve(context.Background(), "rec001", "", analytics.RequestContext{
		IPAddress: "127.0.0.1",
		UserAgent: "curl/8.4.0",
	})
	require.NoError(t, err)
	rec.Close()

	var entries []models.AccessLogEntry
	require.NoError(t, db.Where("link_id = ?", link.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "127.0.0.1", entries[0].IPAddress)
	assert.Equal(t, "Local", entries[0].Country)
}

func TestResolveGatedAccessIsNotRecorded(t *testing.T) {
	db := setupTestDB(t)
	link := createLink(t, db, models.Link{ShortCode: "rec002"})

	hash, err := gate.HashSecret("open-sesame")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.PasswordProtection{LinkID: link.ID, Hash: hash}).Error)

	rec := analytics.NewRecorder(db, analytics.StubGeoResolver{}, zerolog.Nop(), 4)
	engine := NewEngine(db, rec, zerolog.Nop())

	res, err := engine.Resolve(context.Background(), "rec002", "", analytics.RequestContext{IPAddress: "127.0.0.1"})
	require.NoError(t, err)
	require.True(t, res.PasswordRequired)
	rec.Close()

	var count int64
	require.NoError(t, db.Model(&models.AccessLogEntry{}).Where("link_id = ?", link.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "stopping at the gate is not an access")
}
