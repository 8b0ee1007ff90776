// Package resolver orchestrates short code resolution: link lookup, expiry
// and activity checks, the password gate, schedule selection and access
// recording.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/analytics"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/gate"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
	"github.com/truong-le-ofs/short-link/pkg/shortlink/temporal"
)

// ErrNotFound covers every terminal lookup failure: missing code, inactive
// link, past expiry, tombstoned row or exhausted access limit. Collapsing
// them keeps callers from probing which condition failed.
var ErrNotFound = errors.New("shortlink not found or expired")

// ErrInvalidPassword mirrors the gate's denial for callers that only import
// this package.
var ErrInvalidPassword = gate.ErrInvalidPassword

// Resolution is the outcome of a successful (or password-pending) resolve.
type Resolution struct {
	TargetURL        string `json:"target_url"`
	PasswordRequired bool   `json:"password_required"`
}

// Engine resolves short codes against the store.
type Engine struct {
	db       *gorm.DB
	recorder *analytics.Recorder
	log      zerolog.Logger
}

// NewEngine creates a resolution engine. The recorder may be nil, in which
// case successful accesses are simply not logged.
func NewEngine(db *gorm.DB, recorder *analytics.Recorder, log zerolog.Logger) *Engine {
	return &Engine{db: db, recorder: recorder, log: log}
}

// Resolve decides what URL to serve for a short code.
//
// When a password gate is active and no secret was supplied, the returned
// resolution has PasswordRequired set and an empty target so the URL is
// never leaked past the gate. A successful resolve dispatches an access log
// write off the request path.
func (e *Engine) Resolve(ctx context.Context, code, password string, reqCtx analytics.RequestContext) (*Resolution, error) {
	now := time.Now()

	link, err := e.lookup(ctx, code, now)
	if err != nil {
		return nil, err
	}

	// The store filter that trimmed the preloaded rows is an optimization;
	// the window predicate re-verifies activity here.
	activePasswords := temporal.ActivePasswords(link.Passwords, now)
	decision, err := gate.Authorize(activePasswords, password)
	if err != nil {
		return nil, err
	}
	if decision == gate.PasswordRequired {
		return &Resolution{PasswordRequired: true}, nil
	}

	target := temporal.EffectiveTarget(link.TargetURL, link.Schedules, now)

	if e.recorder != nil {
		e.recorder.Record(link.ID, reqCtx)
	}

	return &Resolution{TargetURL: target}, nil
}

func (e *Engine) lookup(ctx context.Context, code string, now time.Time) (*models.Link, error) {
	var link models.Link
	err := e.db.WithContext(ctx).
		Preload("Schedules", "start_time <= ? AND end_time >= ?", now, now).
		Preload("Passwords", "(start_time IS NULL OR start_time <= ?) AND (end_time IS NULL OR end_time >= ?)", now, now).
		Where("short_code = ? AND is_active = ?", code, true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shortlink: %w", err)
	}

	if link.AccessLimit != nil {
		var count int64
		if err := e.db.WithContext(ctx).Model(&models.AccessLogEntry{}).
			Where("link_id = ?", link.ID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count accesses: %w", err)
		}
		if count >= int64(*link.AccessLimit) {
			e.log.Debug().Str("code", code).Msg("access limit reached")
			return nil, ErrNotFound
		}
	}

	return &link, nil
}
