package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func TestMemoryLimiterWindow(t *testing.T) {
	t.Parallel()

	c := &clock{now: time.Unix(1000, 0)}
	limiter := NewMemoryLimiter(MemoryConfig{Now: c.Now})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		decision, err := limiter.Allow(ctx, "k", 2, time.Minute)
		if err != nil || !decision.Allowed {
			t.Fatalf("Allow() #%d = %+v, %v", i, decision, err)
		}
		if decision.Remaining != 1-i {
			t.Fatalf("remaining = %d, want %d", decision.Remaining, 1-i)
		}
	}
	decision, err := limiter.Allow(ctx, "k", 2, time.Minute)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if decision.Allowed || decision.Remaining != 0 {
		t.Fatalf("third Allow() = %+v", decision)
	}
	if !decision.ResetAt.Equal(time.Unix(1060, 0)) {
		t.Fatalf("reset = %v", decision.ResetAt)
	}

	c.now = c.now.Add(time.Minute)
	decision, err = limiter.Allow(ctx, "k", 2, time.Minute)
	if err != nil || !decision.Allowed {
		t.Fatalf("Allow() after window = %+v, %v", decision, err)
	}
}

func TestMemoryLimiterDisabledLimit(t *testing.T) {
	t.Parallel()

	decision, err := NewMemoryLimiter(MemoryConfig{}).Allow(context.Background(), "k", 0, time.Minute)
	if err != nil || !decision.Allowed {
		t.Fatalf("Allow() = %+v, %v", decision, err)
	}
}

func TestMemoryLimiterCapacity(t *testing.T) {
	t.Parallel()

	c := &clock{now: time.Unix(0, 0)}
	limiter := NewMemoryLimiter(MemoryConfig{Now: c.Now, MaxKeys: 1})
	if _, err := limiter.Allow(context.Background(), "a", 1, time.Second); err != nil {
		t.Fatalf("Allow(a) error = %v", err)
	}
	if _, err := limiter.Allow(context.Background(), "b", 1, time.Second); !errors.Is(err, ErrCapacity) {
		t.Fatalf("Allow(b) error = %v, want ErrCapacity", err)
	}
	c.now = c.now.Add(2 * time.Second)
	if _, err := limiter.Allow(context.Background(), "b", 1, time.Second); err != nil {
		t.Fatalf("Allow(b) after expiry error = %v", err)
	}
}

func TestDecisionFromScript(t *testing.T) {
	t.Parallel()

	now := time.Unix(500, 0)
	decision, err := decisionFromScript([]any{int64(3), int64(1500)}, 2, now)
	if err != nil {
		t.Fatalf("decisionFromScript() error = %v", err)
	}
	if decision.Allowed || decision.Remaining != 0 || !decision.ResetAt.Equal(now.Add(1500*time.Millisecond)) {
		t.Fatalf("decision = %+v", decision)
	}

	decision, err = decisionFromScript([]any{int64(1), int64(-1)}, 2, now)
	if err != nil || !decision.Allowed || decision.Remaining != 1 || !decision.ResetAt.Equal(now) {
		t.Fatalf("decision = %+v, %v", decision, err)
	}

	for _, bad := range []any{"nope", []any{int64(1)}, []any{"1", int64(2)}} {
		if _, err := decisionFromScript(bad, 2, now); err == nil {
			t.Fatalf("decisionFromScript(%v) expected error", bad)
		}
	}
}

func TestNewRedisLimiterRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisLimiter(context.Background(), RedisConfig{Addr: " "}); err == nil {
		t.Fatal("expected error for empty addr")
	}
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (Decision, error) {
	return Decision{}, errors.New("down")
}

func TestPolicyCheck(t *testing.T) {
	t.Parallel()

	policy := &Policy{Limiter: NewMemoryLimiter(MemoryConfig{}), Limit: 1, Window: time.Minute}
	req := httptest.NewRequest(http.MethodPost, "/seal-bar/submit", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rr := httptest.NewRecorder()
	if !policy.Check(rr, req, "submit") {
		t.Fatal("first Check() rejected")
	}
	if got := rr.Header().Get("RateLimit-Remaining"); got != "0" {
		t.Fatalf("RateLimit-Remaining = %q", got)
	}
	rr = httptest.NewRecorder()
	if policy.Check(rr, req, "submit") {
		t.Fatal("second Check() allowed")
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After")
	}

	other := httptest.NewRequest(http.MethodPost, "/seal-bar/submit", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	if !policy.Check(httptest.NewRecorder(), other, "submit") {
		t.Fatal("other client rejected")
	}
}

func TestPolicyFailureMode(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/seal", nil)
	open := &Policy{Limiter: failingLimiter{}, Limit: 1}
	if !open.Check(httptest.NewRecorder(), req, "api") {
		t.Fatal("fail-open policy rejected")
	}
	closed := &Policy{Limiter: failingLimiter{}, Limit: 1, FailClosed: true}
	if closed.Check(httptest.NewRecorder(), req, "api") {
		t.Fatal("fail-closed policy allowed")
	}
	var disabled *Policy
	if !disabled.Check(httptest.NewRecorder(), req, "api") || disabled.Enabled() {
		t.Fatal("nil policy should allow")
	}
}

func TestKeyHashesClient(t *testing.T) {
	t.Parallel()

	key := Key("submit", "10.0.0.1")
	if strings.Contains(key, "10.0.0.1") || !strings.HasPrefix(key, "seal:ratelimit:submit:") {
		t.Fatalf("Key() = %q", key)
	}
	if Key("submit", "10.0.0.1") != key {
		t.Fatal("Key() not stable")
	}
	if ClientID(&http.Request{RemoteAddr: "bad"}) != "bad" {
		t.Fatal("ClientID() should fall back to raw remote addr")
	}
}
