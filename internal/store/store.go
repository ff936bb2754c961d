// Package store implements catalog persistence: game search, featured games,
// song ratings and the CRUD operations behind the API.
package store

import (
	"context"
	"time"

	"gamebeats/backend/internal/bgg"

	"gorm.io/gorm"
)

const defaultTimeout = 5 * time.Second

// StatsProvider fetches external catalog statistics for a BoardGameGeek id.
type StatsProvider interface {
	FetchStats(ctx context.Context, bggID int) (bgg.Stats, error)
}

// Store wraps a gorm connection. Every call runs with its own timeout.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
	now     func() time.Time
	stats   StatsProvider
}

type Option func(*Store)

// WithTimeout bounds every database call made by the store.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock replaces the clock used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithStatsProvider(p StatsProvider) Option {
	return func(s *Store) { s.stats = p }
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:      db,
		timeout: defaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return s.db.WithContext(ctx), cancel
}
