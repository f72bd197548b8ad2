// Package api serves the same-origin JSON pass-through to the seal backend.
package api

import (
	"net/http"

	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	_ "github.com/louisbranch/crypto-seal/internal/services/web/modules/api/docs"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Module provides the JSON API routes.
type Module struct{}

// New returns an API module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires the API handlers and the Swagger UI.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps)
	mux.HandleFunc(http.MethodPost+" "+routepath.APISeal, h.Seal)
	mux.HandleFunc(http.MethodPost+" "+routepath.APIVerify, h.Verify)
	mux.HandleFunc(http.MethodPost+" "+routepath.APIResolve, h.Resolve)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIResolveHash("{hash}"), h.ResolveByPath)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIList, h.List)
	mux.Handle(routepath.APIDocs, httpSwagger.Handler(httpSwagger.URL(routepath.APIDocs+"doc.json")))
	mux.HandleFunc(routepath.API, func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return module.Mount{Prefix: routepath.API, Handler: mux}, nil
}
