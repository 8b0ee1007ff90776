package analytics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

const (
	topN           = 5
	trailingWindow = 30 * 24 * time.Hour
)

// CountryCount is one row of a grouped-by-country aggregation.
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// ReferrerCount is one row of a grouped-by-referrer aggregation.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

// DateCount is one daily bucket of an access count series.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DeviceStats is the breakdown of accesses by coarse device class.
type DeviceStats struct {
	Mobile  int64 `json:"mobile"`
	Desktop int64 `json:"desktop"`
	Tablet  int64 `json:"tablet"`
	Other   int64 `json:"other"`
}

// LinkStats aggregates the access history of a single link.
type LinkStats struct {
	TotalAccess  int64          `json:"total_access"`
	UniqueIPs    int64          `json:"unique_ips"`
	TopCountries []CountryCount `json:"top_countries"`
	AccessByDate []DateCount    `json:"access_by_date"`
	DeviceStats  DeviceStats    `json:"device_stats"`
}

// UserStats aggregates accesses across all links owned by one user.
type UserStats struct {
	TotalAccess     int64           `json:"total_access"`
	UniqueIPs       int64           `json:"unique_ips"`
	TopReferrers    []ReferrerCount `json:"top_referrers"`
	TotalShortlinks int64           `json:"total_shortlinks"`
}

// LogEntry is one access log row prepared for owner-facing display, with
// the IP masked and the device class derived.
type LogEntry struct {
	ID         string    `json:"id"`
	AccessedAt time.Time `json:"accessed_at"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer"`
	Country    string    `json:"country"`
	DeviceType string    `json:"device_type"`
}

// LogPage is a paginated slice of display-ready access logs.
type LogPage struct {
	Data       []LogEntry `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int64      `json:"total_pages"`
}

// Stats answers read-only aggregation queries over stored access logs.
type Stats struct {
	db *gorm.DB
}

// NewStats creates a stats reader over the given database.
func NewStats(db *gorm.DB) *Stats {
	return &Stats{db: db}
}

// ForLink computes the aggregate view of one link's access history.
func (s *Stats) ForLink(ctx context.Context, linkID string) (*LinkStats, error) {
	logs := s.db.WithContext(ctx).Model(&models.AccessLogEntry{}).Where("link_id = ?", linkID)

	var stats LinkStats
	if err := logs.Session(&gorm.Session{}).Count(&stats.TotalAccess).Error; err != nil {
		return nil, fmt.Errorf("failed to count accesses: %w", err)
	}
	if err := logs.Session(&gorm.Session{}).Distinct("ip_address").Count(&stats.UniqueIPs).Error; err != nil {
		return nil, fmt.Errorf("failed to count unique IPs: %w", err)
	}
	if err := logs.Session(&gorm.Session{}).
		Select("country, count(*) as count").
		Group("country").
		Order("count DESC").
		Limit(topN).
		Scan(&stats.TopCountries).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate countries: %w", err)
	}

	since := time.Now().Add(-trailingWindow)
	if err := logs.Session(&gorm.Session{}).
		Select("date(accessed_at) as date, count(*) as count").
		Where("accessed_at >= ?", since).
		Group("date(accessed_at)").
		Order("date ASC").
		Scan(&stats.AccessByDate).Error; err != nil {
		return nil, fmt.Errorf("failed to bucket accesses by date: %w", err)
	}

	var userAgents []string
	if err := logs.Session(&gorm.Session{}).Pluck("user_agent", &userAgents).Error; err != nil {
		return nil, fmt.Errorf("failed to load user agents: %w", err)
	}
	for _, ua := range userAgents {
		switch DetectDevice(ua) {
		case DeviceMobile:
			stats.DeviceStats.Mobile++
		case DeviceDesktop:
			stats.DeviceStats.Desktop++
		case DeviceTablet:
			stats.DeviceStats.Tablet++
		default:
			stats.DeviceStats.Other++
		}
	}

	return &stats, nil
}

// ForUser computes the aggregate view across all links owned by a user.
func (s *Stats) ForUser(ctx context.Context, userID string) (*UserStats, error) {
	logs := s.db.WithContext(ctx).Model(&models.AccessLogEntry{}).
		Joins("JOIN links ON links.id = access_log_entries.link_id").
		Where("links.user_id = ? AND links.deleted_at IS NULL", userID)

	var stats UserStats
	if err := logs.Session(&gorm.Session{}).Count(&stats.TotalAccess).Error; err != nil {
		return nil, fmt.Errorf("failed to count accesses: %w", err)
	}
	if err := logs.Session(&gorm.Session{}).Distinct("access_log_entries.ip_address").Count(&stats.UniqueIPs).Error; err != nil {
		return nil, fmt.Errorf("failed to count unique IPs: %w", err)
	}
	if err := logs.Session(&gorm.Session{}).
		Select("referrer, count(*) as count").
		Where("referrer != ''").
		Group("referrer").
		Order("count DESC").
		Limit(topN).
		Scan(&stats.TopReferrers).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate referrers: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Link{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalShortlinks).Error; err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}

	return &stats, nil
}

// Logs returns one page of a link's access history, newest first, with IPs
// masked for display.
func (s *Stats) Logs(ctx context.Context, linkID string, page, limit int) (*LogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := s.db.WithContext(ctx).Model(&models.AccessLogEntry{}).Where("link_id = ?", linkID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count access logs: %w", err)
	}

	var rows []models.AccessLogEntry
	if err := query.Session(&gorm.Session{}).
		Order("accessed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load access logs: %w", err)
	}

	entries := make([]LogEntry, len(rows))
	for i, row := range rows {
		entries[i] = LogEntry{
			ID:         row.ID,
			AccessedAt: row.AccessedAt,
			IPAddress:  MaskIP(row.IPAddress),
			UserAgent:  row.UserAgent,
			Referrer:   row.Referrer,
			Country:    row.Country,
			DeviceType: string(DetectDevice(row.UserAgent)),
		}
	}

	return &LogPage{
		Data:       entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}
