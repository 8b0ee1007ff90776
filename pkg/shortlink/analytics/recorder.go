package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

// DefaultQueueSize bounds the number of pending access writes.
const DefaultQueueSize = 256

type pendingAccess struct {
	linkID     string
	accessedAt time.Time
	ctx        RequestContext
}

// Recorder persists access log entries off the request path. Record never
// blocks and never fails the caller; a full queue drops the entry.
type Recorder struct {
	db    *gorm.DB
	geo   GeoResolver
	log   zerolog.Logger
	queue chan pendingAccess
	done  chan struct{}
}

// NewRecorder starts a recorder draining writes on a background worker.
// queueSize <= 0 falls back to DefaultQueueSize.
func NewRecorder(db *gorm.DB, geo GeoResolver, log zerolog.Logger, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	r := &Recorder{
		db:    db,
		geo:   geo,
		log:   log,
		queue: make(chan pendingAccess, queueSize),
		done:  make(chan struct{}),
	}
	go r.drain()
	return r
}

// Record enqueues one access for persistence. The write happens on the
// worker with a background context, so cancelling the originating request
// cannot abort it.
func (r *Recorder) Record(linkID string, ctx RequestContext) {
	select {
	case r.queue <- pendingAccess{linkID: linkID, accessedAt: time.Now(), ctx: ctx}:
	default:
		r.log.Debug().Str("link_id", linkID).Msg("access log queue full, dropping entry")
	}
}

// Close stops accepting entries and waits for pending writes to finish.
func (r *Recorder) Close() {
	close(r.queue)
	<-r.done
}

func (r *Recorder) drain() {
	defer close(r.done)
	for p := range r.queue {
		entry := models.AccessLogEntry{
			LinkID:     p.linkID,
			AccessedAt: p.accessedAt,
			IPAddress:  p.ctx.IPAddress,
			UserAgent:  p.ctx.UserAgent,
			Referrer:   p.ctx.Referrer,
			Country:    r.geo.Country(p.ctx.IPAddress),
		}
		if err := r.db.WithContext(context.Background()).Create(&entry).Error; err != nil {
			r.log.Warn().Err(err).Str("link_id", p.linkID).Msg("failed to write access log")
		}
	}
}
