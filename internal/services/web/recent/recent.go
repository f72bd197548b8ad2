// Package recent serves the latest sealed records, cached between requests.
package recent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
	"github.com/louisbranch/crypto-seal/internal/services/web/storage"
)

const (
	// CacheKey is the cache row holding the last /list payload.
	CacheKey = "seal:list"
	// DefaultTTL is how long a cached list is served without asking the backend.
	DefaultTTL = 30 * time.Second
	// DefaultMaxStale is how long a cached list may stand in for a failing backend.
	DefaultMaxStale = 24 * time.Hour
	cacheScope = "recent"
)

// Lister reads every sealed record.
type Lister interface {
	List(ctx context.Context) (sealapi.ListResponse, error)
}

// Snapshot is what the recent-seals panel shows.
type Snapshot struct {
	Count   int
	Records []sealapi.SealRecord
	// Stale is set when the backend failed and a cached copy was served.
	Stale     bool
	FetchedAt time.Time
}

// Service reads /list through an optional cache.
type Service struct {
	lister   Lister
	cache    storage.CacheStore
	ttl      time.Duration
	maxStale time.Duration
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithCache stores list payloads in cache.
func WithCache(cache storage.CacheStore) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithTTL sets the cache freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxStale bounds how old a fallback list may be.
func WithMaxStale(maxStale time.Duration) Option {
	return func(s *Service) {
		if maxStale > 0 {
			s.maxStale = maxStale
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a service over lister.
func New(lister Lister, opts ...Option) *Service {
	s := &Service{lister: lister, ttl: DefaultTTL, maxStale: DefaultMaxStale, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

type cachedList struct {
	List      sealapi.ListResponse `json:"list"`
	FetchedAt time.Time            `json:"fetched_at"`
}

// Recent returns the record count and the newest limit records. A limit of
// zero or less returns every record.
func (s *Service) Recent(ctx context.Context, limit int) (Snapshot, error) {
	if s == nil || s.lister == nil {
		return Snapshot{}, errors.New("recent seals are not configured")
	}
	now := s.now()

	cached, hasCached := s.readCache(ctx, now)
	if hasCached && cached.fresh(now, s.ttl) {
		return snapshot(cached.List, cached.FetchedAt, false, limit), nil
	}

	list, err := s.lister.List(ctx)
	if err != nil {
		if hasCached {
			log.Printf("recent: serving stale list after backend error: %v", err)
			return snapshot(cached.List, cached.FetchedAt, true, limit), nil
		}
		return Snapshot{}, fmt.Errorf("list seals: %w", err)
	}
	s.writeCache(ctx, cachedList{List: list, FetchedAt: now})
	return snapshot(list, now, false, limit), nil
}

// Invalidate drops the cached list so the next read asks the backend.
func (s *Service) Invalidate(ctx context.Context) error {
	if s == nil || s.cache == nil {
		return nil
	}
	if err := s.cache.DeleteCacheEntry(ctx, CacheKey); err != nil {
		return fmt.Errorf("invalidate recent seals: %w", err)
	}
	return nil
}

// Prune removes cache rows too old to serve even as a fallback.
func (s *Service) Prune(ctx context.Context) (int64, error) {
	if s == nil || s.cache == nil {
		return 0, nil
	}
	return s.cache.DeleteExpiredCacheEntries(ctx, s.now())
}

func (c cachedList) fresh(now time.Time, ttl time.Duration) bool {
	return now.Before(c.FetchedAt.Add(ttl))
}

func (s *Service) readCache(ctx context.Context, now time.Time) (cachedList, bool) {
	if s.cache == nil {
		return cachedList{}, false
	}
	entry, ok, err := s.cache.GetCacheEntry(ctx, CacheKey)
	if err != nil {
		log.Printf("recent: read cache: %v", err)
		return cachedList{}, false
	}
	if !ok || !entry.Fresh(now) {
		return cachedList{}, false
	}
	var cached cachedList
	if err := json.Unmarshal(entry.Payload, &cached); err != nil {
		log.Printf("recent: decode cache: %v", err)
		return cachedList{}, false
	}
	return cached, true
}

func (s *Service) writeCache(ctx context.Context, cached cachedList) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		log.Printf("recent: encode cache: %v", err)
		return
	}
	// The row outlives the TTL so a backend outage can fall back to it.
	err = s.cache.PutCacheEntry(ctx, storage.CacheEntry{
		Key:       CacheKey,
		Scope:     cacheScope,
		Payload:   payload,
		StoredAt:  cached.FetchedAt,
		ExpiresAt: cached.FetchedAt.Add(s.ttl + s.maxStale),
	})
	if err != nil {
		log.Printf("recent: write cache: %v", err)
	}
}

func snapshot(list sealapi.ListResponse, fetchedAt time.Time, stale bool, limit int) Snapshot {
	records := make([]sealapi.SealRecord, len(list.Records))
	copy(records, list.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	count := list.Count
	if count < len(list.Records) {
		count = len(list.Records)
	}
	return Snapshot{Count: count, Records: records, Stale: stale, FetchedAt: fetchedAt}
}
