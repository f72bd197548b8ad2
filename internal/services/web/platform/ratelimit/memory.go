package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCapacity is returned when the memory limiter tracks too many keys.
var ErrCapacity = errors.New("rate limiter capacity exceeded")

// MemoryConfig configures a MemoryLimiter.
type MemoryConfig struct {
	Now     func() time.Time
	MaxKeys int
}

// MemoryLimiter keeps fixed-window counters in process memory.
type MemoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*bucket
	maxKeys int
}

type bucket struct {
	count     int
	windowEnd time.Time
}

// NewMemoryLimiter builds an empty in-memory limiter.
func NewMemoryLimiter(cfg MemoryConfig) *MemoryLimiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 10000
	}
	return &MemoryLimiter{
		now:     cfg.Now,
		buckets: make(map[string]*bucket),
		maxKeys: cfg.MaxKeys,
	}
}

// Allow counts one hit for key.
func (m *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if ok && !now.Before(b.windowEnd) {
		delete(m.buckets, key)
		ok = false
	}
	if !ok {
		if len(m.buckets) >= m.maxKeys {
			m.collect(now)
		}
		if len(m.buckets) >= m.maxKeys {
			return Decision{}, ErrCapacity
		}
		b = &bucket{windowEnd: now.Add(window)}
		m.buckets[key] = b
	}

	if b.count < limit {
		b.count++
		return Decision{Allowed: true, Limit: limit, Remaining: limit - b.count, ResetAt: b.windowEnd}, nil
	}
	return Decision{Allowed: false, Limit: limit, Remaining: 0, ResetAt: b.windowEnd}, nil
}

func (m *MemoryLimiter) collect(now time.Time) {
	for key, b := range m.buckets {
		if !now.Before(b.windowEnd) {
			delete(m.buckets, key)
		}
	}
}

var _ Limiter = (*MemoryLimiter)(nil)
