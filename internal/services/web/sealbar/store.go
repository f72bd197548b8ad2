package sealbar

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTTL is how long an untouched session keeps its widget.
const DefaultIdleTTL = 30 * time.Minute

// Store maps session ids to widgets and forgets idle ones.
type Store struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	newID     func() string
	entries   map[string]*storeEntry
	nextSweep time.Time
}

type storeEntry struct {
	widget   *Widget
	lastSeen time.Time
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithIdleTTL sets the idle expiry.
func WithIdleTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithStoreClock replaces the wall clock.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSessionIDs replaces the uuid session id generator.
func WithSessionIDs(newID func() string) StoreOption {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		ttl:     DefaultIdleTTL,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
		entries: make(map[string]*storeEntry),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Get returns the live widget for id.
func (s *Store) Get(id string) (*Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	entry, ok := s.lookupLocked(strings.TrimSpace(id), now)
	if !ok {
		return nil, false
	}
	return entry.widget, true
}

// Acquire returns the widget for id, or a fresh widget under a new id when id
// is unknown or expired. The returned id is the one to keep in the cookie.
func (s *Store) Acquire(id string) (string, *Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	id = strings.TrimSpace(id)
	if entry, ok := s.lookupLocked(id, now); ok {
		return id, entry.widget
	}
	id = s.newID()
	widget := NewWidget()
	s.entries[id] = &storeEntry{widget: widget, lastSeen: now}
	return id, widget
}

// Len returns the number of tracked sessions, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) lookupLocked(id string, now time.Time) (*storeEntry, bool) {
	if id == "" {
		return nil, false
	}
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if now.Sub(entry.lastSeen) >= s.ttl {
		delete(s.entries, id)
		return nil, false
	}
	entry.lastSeen = now
	return entry, true
}

func (s *Store) sweepLocked(now time.Time) {
	if now.Before(s.nextSweep) {
		return
	}
	for id, entry := range s.entries {
		if now.Sub(entry.lastSeen) >= s.ttl {
			delete(s.entries, id)
		}
	}
	interval := s.ttl
	if interval > time.Minute {
		interval = time.Minute
	}
	s.nextSweep = now.Add(interval)
}
