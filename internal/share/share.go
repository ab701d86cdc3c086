// Package share lets users publish a read-only snapshot of their results
// behind an opaque token, the backing for "share your snapshot" links.
package share

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"lifepath/internal/catalog"
	"lifepath/internal/logging"
)

// ErrNotFound is returned for unknown or expired share tokens.
var ErrNotFound = errors.New("shared result not found")

const (
	defaultTTL       = 30 * 24 * time.Hour
	defaultCacheSize = 512
)

// Record is one published results snapshot.
type Record struct {
	Token     string                    `json:"token"`
	Scores    map[catalog.Pillar]int    `json:"scores"`
	Insights  map[catalog.Pillar]string `json:"insights"`
	CreatedAt time.Time                 `json:"createdAt"`
	ExpiresAt time.Time                 `json:"expiresAt"`
}

// Expired reports whether the record has passed its expiry.
func (r Record) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Store persists share records by token.
type Store interface {
	Put(ctx context.Context, rec Record) error
	Get(ctx context.Context, token string) (Record, error)
}

// Service mints share tokens and serves lookups through an LRU cache,
// since share links are read many times and written once.
type Service struct {
	store  Store
	cache  *lru.Cache[string, Record]
	ttl    time.Duration
	logger logging.Logger
	now    func() time.Time
}

// NewService constructs a share service. ttl <= 0 selects the default
// thirty-day expiry.
func NewService(store Store, ttl time.Duration, logger logging.Logger) (*Service, error) {
	cache, err := lru.New[string, Record](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logging.OrNop(logger),
		now:    time.Now,
	}, nil
}

// Create publishes a results snapshot and returns its record, token
// included.
func (s *Service) Create(ctx context.Context, scores map[catalog.Pillar]int, insights map[catalog.Pillar]string) (Record, error) {
	now := s.now()
	rec := Record{
		Token:     uuid.NewString(),
		Scores:    scores,
		Insights:  insights,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Record{}, err
	}
	s.cache.Add(rec.Token, rec)
	return rec, nil
}

// Get resolves a share token. Expired records report ErrNotFound and are
// dropped from the cache.
func (s *Service) Get(ctx context.Context, token string) (Record, error) {
	if rec, ok := s.cache.Get(token); ok {
		if rec.Expired(s.now()) {
			s.cache.Remove(token)
			return Record{}, ErrNotFound
		}
		return rec, nil
	}

	rec, err := s.store.Get(ctx, token)
	if err != nil {
		return Record{}, err
	}
	if rec.Expired(s.now()) {
		return Record{}, ErrNotFound
	}
	s.cache.Add(token, rec)
	return rec, nil
}
