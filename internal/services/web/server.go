// Package web hosts the browser-facing Crypto Seal service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/crypto-seal/internal/platform/timeouts"
	"github.com/louisbranch/crypto-seal/internal/sealapi"
	webapp "github.com/louisbranch/crypto-seal/internal/services/web/app"
	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	"github.com/louisbranch/crypto-seal/internal/services/web/modules"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/httpx"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/observability"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crypto-seal/internal/services/web/recent"
	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
	"github.com/louisbranch/crypto-seal/internal/services/web/sealbar"
	webstatic "github.com/louisbranch/crypto-seal/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	Gateway      sealapi.Service
	Widgets      *sealbar.Store
	Recent       *recent.Service
	RateLimit    *ratelimit.Policy
	SchemePolicy requestmeta.SchemePolicy
	RecordsLimit int
	Now          func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	widgets := cfg.Widgets
	if widgets == nil {
		widgets = sealbar.NewStore()
	}
	deps := module.Dependencies{
		Gateway:      cfg.Gateway,
		Widgets:      widgets,
		Recent:       cfg.Recent,
		RateLimit:    cfg.RateLimit,
		SchemePolicy: cfg.SchemePolicy,
		RecordsLimit: cfg.RecordsLimit,
		Now:          cfg.Now,
	}
	h, err := webapp.Composer{}.Compose(webapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
