package sealbar

import (
	"fmt"
	"testing"
	"time"
)

type storeClock struct{ now time.Time }

func (c *storeClock) Now() time.Time { return c.now }

func newTestStore(c *storeClock) *Store {
	n := 0
	return NewStore(
		WithIdleTTL(time.Minute),
		WithStoreClock(c.Now),
		WithSessionIDs(func() string {
			n++
			return fmt.Sprintf("sess-%d", n)
		}),
	)
}

func TestAcquireCreatesAndReuses(t *testing.T) {
	t.Parallel()

	c := &storeClock{now: time.Unix(0, 0)}
	s := newTestStore(c)

	id, w := s.Acquire("")
	if id != "sess-1" || w == nil {
		t.Fatalf("Acquire() = %q, %v", id, w)
	}
	w.Edit("hello")

	again, w2 := s.Acquire(" sess-1 ")
	if again != "sess-1" || w2 != w {
		t.Fatalf("Acquire(sess-1) = %q, new widget %v", again, w2 != w)
	}
	if got := w2.Snapshot().Input; got != "hello" {
		t.Fatalf("input = %q", got)
	}

	other, w3 := s.Acquire("forged")
	if other != "sess-2" || w3 == w {
		t.Fatalf("Acquire(unknown) = %q", other)
	}
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	c := &storeClock{now: time.Unix(0, 0)}
	s := newTestStore(c)
	id, _ := s.Acquire("")

	c.now = c.now.Add(59 * time.Second)
	if _, ok := s.Get(id); !ok {
		t.Fatal("session expired early")
	}

	c.now = c.now.Add(59 * time.Second)
	if _, ok := s.Get(id); !ok {
		t.Fatal("access did not refresh idle timer")
	}

	c.now = c.now.Add(time.Minute)
	if _, ok := s.Get(id); ok {
		t.Fatal("idle session still present")
	}
	newID, _ := s.Acquire(id)
	if newID == id {
		t.Fatal("expired id reused")
	}
}

func TestStoreSweepsOtherSessions(t *testing.T) {
	t.Parallel()

	c := &storeClock{now: time.Unix(0, 0)}
	s := newTestStore(c)
	for i := 0; i < 5; i++ {
		s.Acquire("")
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d", s.Len())
	}
	c.now = c.now.Add(2 * time.Minute)
	s.Acquire("")
	if s.Len() != 1 {
		t.Fatalf("Len() after sweep = %d, want 1", s.Len())
	}
}

func TestGetRejectsBlankID(t *testing.T) {
	t.Parallel()

	if _, ok := NewStore().Get(" "); ok {
		t.Fatal("Get(blank) ok")
	}
}
