// Package ratelimit throttles seal and resolve submissions per client.
//
// Counters are fixed windows. The memory limiter serves a single process;
// the redis limiter shares counters between replicas.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts hits per key inside a window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}

// Policy applies a Limiter to HTTP requests.
type Policy struct {
	Limiter Limiter
	Limit   int
	Window  time.Duration
	// FailClosed rejects requests when the limiter itself errors.
	FailClosed bool
}

// Enabled reports whether the policy limits anything.
func (p *Policy) Enabled() bool {
	return p != nil && p.Limiter != nil && p.Limit > 0
}

// Check counts one hit for the request's client on route. It writes the
// RateLimit-* headers and reports whether the request may proceed.
func (p *Policy) Check(w http.ResponseWriter, r *http.Request, route string) bool {
	if !p.Enabled() || r == nil {
		return true
	}
	window := p.Window
	if window <= 0 {
		window = time.Minute
	}
	decision, err := p.Limiter.Allow(r.Context(), Key(route, ClientID(r)), p.Limit, window)
	if err != nil {
		log.Printf("rate limiter unavailable route=%s err=%v", route, err)
		return !p.FailClosed
	}
	WriteHeaders(w, decision, time.Now())
	return decision.Allowed
}

// Key builds the counter key for a route and client. The client id is hashed
// so raw addresses never reach the store.
func Key(route string, clientID string) string {
	sum := sha256.Sum256([]byte(clientID))
	return "seal:ratelimit:" + strings.TrimSpace(route) + ":" + hex.EncodeToString(sum[:8])
}

// ClientID identifies the caller by remote IP.
func ClientID(r *http.Request) string {
	if r == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

// WriteHeaders publishes the decision as RateLimit-* headers.
func WriteHeaders(w http.ResponseWriter, decision Decision, now time.Time) {
	if w == nil {
		return
	}
	if decision.Limit > 0 {
		w.Header().Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	if decision.Remaining >= 0 {
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}
	if decision.ResetAt.IsZero() {
		return
	}
	w.Header().Set("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
	if !decision.Allowed {
		retryAfter := int64(decision.ResetAt.Sub(now).Seconds())
		if retryAfter < 0 {
			retryAfter = 0
		}
		w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
	}
}
