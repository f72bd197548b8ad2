// Package sealbar serves the seal/resolve widget.
package sealbar

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
)

// Module provides the seal bar routes.
type Module struct{}

// New returns a seal bar module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "sealbar" }

// Mount wires seal bar route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Widgets == nil {
		return module.Mount{}, errors.New("widget store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.SealBar, Handler: mux}, nil
}
