// Package storage defines the web cache persistence contract.
package storage

import (
	"context"
	"time"
)

// CacheEntry stores one cached payload and its freshness window.
//
// Cache data is always derived from backend reads and can be dropped at any
// time.
type CacheEntry struct {
	Key       string
	Scope     string
	Payload   []byte
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Fresh reports whether the entry is still inside its TTL at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.Before(e.ExpiresAt)
}

// CacheStore persists cache entries by key.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, key string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, key string) error
	DeleteExpiredCacheEntries(ctx context.Context, before time.Time) (int64, error)
	Close() error
}
