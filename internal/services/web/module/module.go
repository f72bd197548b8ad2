// Package module defines the contract every web feature module implements.
package module

import (
	"net/http"
	"time"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crypto-seal/internal/services/web/recent"
	"github.com/louisbranch/crypto-seal/internal/services/web/sealbar"
)

// DefaultRecordsLimit is how many recent seals the panel lists.
const DefaultRecordsLimit = 5

// Dependencies carries shared services into modules.
type Dependencies struct {
	// Gateway is the seal backend, real or mocked.
	Gateway sealapi.Service
	// Widgets holds per-session seal bar state.
	Widgets *sealbar.Store
	// Recent serves the recent-seals panel; nil hides it.
	Recent       *recent.Service
	RateLimit    *ratelimit.Policy
	SchemePolicy requestmeta.SchemePolicy
	RecordsLimit int
	Now          func() time.Time
}

// Clock returns the configured clock or the wall clock.
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Limit returns the recent-seals panel size.
func (d Dependencies) Limit() int {
	if d.RecordsLimit > 0 {
		return d.RecordsLimit
	}
	return DefaultRecordsLimit
}

// Mount describes the prefix and handler a module owns.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one composable slice of the web surface.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
