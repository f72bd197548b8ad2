// Package cmd holds startup plumbing shared by crypto-seal commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/crypto-seal/internal/platform/config"
	"github.com/louisbranch/crypto-seal/internal/platform/otel"
)

// ServiceWeb names the browser-facing web service in telemetry and logs.
const ServiceWeb = "web"

const defaultTelemetryFlush = 5 * time.Second

// RunOption adjusts RunWithTelemetry.
type RunOption func(*runSettings)

type runSettings struct {
	flushTimeout time.Duration
	setup        func(context.Context, string) (func(context.Context) error, error)
}

// WithFlushTimeout bounds how long pending spans may take to export on exit.
func WithFlushTimeout(d time.Duration) RunOption {
	return func(s *runSettings) {
		if d > 0 {
			s.flushTimeout = d
		}
	}
}

// ParseConfig fills cfg from its env struct tags.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs applies command-line flags over the env defaults already in fs.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, calls run, and
// flushes telemetry after run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error, opts ...RunOption) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	settings := runSettings{flushTimeout: defaultTelemetryFlush, setup: otel.Setup}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	shutdown, err := settings.setup(ctx, service)
	if err != nil {
		return fmt.Errorf("%s telemetry: %w", service, err)
	}
	defer flushTelemetry(service, shutdown, settings.flushTimeout)
	return run(ctx)
}

func flushTelemetry(service string, shutdown func(context.Context) error, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s telemetry shutdown: %v", service, err)
	}
}
