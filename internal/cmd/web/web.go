// Package web parses web command flags and launches the browser-facing service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/crypto-seal/internal/platform/cmd"
	"github.com/louisbranch/crypto-seal/internal/sealapi"
	"github.com/louisbranch/crypto-seal/internal/sealapi/sealmock"
	"github.com/louisbranch/crypto-seal/internal/services/web"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/crypto-seal/internal/services/web/recent"
	websqlite "github.com/louisbranch/crypto-seal/internal/services/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"CRYPTO_SEAL_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL          string        `env:"CRYPTO_SEAL_API_BASE_URL" envDefault:"http://localhost:8082"`
	APITimeout          time.Duration `env:"CRYPTO_SEAL_API_TIMEOUT" envDefault:"10s"`
	MockBackend         bool          `env:"CRYPTO_SEAL_WEB_MOCK_BACKEND" envDefault:"false"`
	MockLatency         time.Duration `env:"CRYPTO_SEAL_WEB_MOCK_LATENCY" envDefault:"800ms"`
	CacheDBPath         string        `env:"CRYPTO_SEAL_WEB_CACHE_DB_PATH" envDefault:"data/web-cache.db"`
	RecentTTL           time.Duration `env:"CRYPTO_SEAL_WEB_RECENT_TTL" envDefault:"30s"`
	RecordsLimit        int           `env:"CRYPTO_SEAL_WEB_RECORDS_LIMIT" envDefault:"5"`
	RateLimit           int           `env:"CRYPTO_SEAL_WEB_RATE_LIMIT" envDefault:"30"`
	RateWindow          time.Duration `env:"CRYPTO_SEAL_WEB_RATE_WINDOW" envDefault:"1m"`
	RedisAddr           string        `env:"CRYPTO_SEAL_WEB_REDIS_ADDR"`
	RedisPassword       string        `env:"CRYPTO_SEAL_WEB_REDIS_PASSWORD"`
	RedisDB             int           `env:"CRYPTO_SEAL_WEB_REDIS_DB" envDefault:"0"`
	TrustForwardedProto bool          `env:"CRYPTO_SEAL_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Seal backend base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Timeout for one seal backend call")
	fs.BoolVar(&cfg.MockBackend, "mock-backend", cfg.MockBackend, "Serve an in-memory backend instead of calling the seal API")
	fs.DurationVar(&cfg.MockLatency, "mock-latency", cfg.MockLatency, "Simulated latency of the in-memory backend")
	fs.StringVar(&cfg.CacheDBPath, "cache-db-path", cfg.CacheDBPath, "SQLite cache path for recent seals (empty disables)")
	fs.DurationVar(&cfg.RecentTTL, "recent-ttl", cfg.RecentTTL, "How long the recent seals list is cached")
	fs.IntVar(&cfg.RecordsLimit, "records-limit", cfg.RecordsLimit, "Recent seals shown on the page")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Backend calls allowed per client per window (0 disables)")
	fs.DurationVar(&cfg.RateWindow, "rate-window", cfg.RateWindow, "Rate limit window")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for shared rate limits (empty uses memory)")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a proxy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		gateway, err := newGateway(cfg)
		if err != nil {
			return err
		}

		recentSeals, closeCache, err := newRecent(ctx, cfg, gateway)
		if err != nil {
			return err
		}
		defer closeCache()

		policy, closeLimiter := newRateLimit(ctx, cfg)
		defer closeLimiter()

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			Gateway:      gateway,
			Recent:       recentSeals,
			RateLimit:    policy,
			SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			RecordsLimit: cfg.RecordsLimit,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		log.Printf("web listening on %s", server.Addr())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func newGateway(cfg Config) (sealapi.Service, error) {
	if cfg.MockBackend || strings.TrimSpace(cfg.APIBaseURL) == "" {
		log.Printf("using in-memory seal backend latency=%s", cfg.MockLatency)
		return sealmock.New(sealmock.WithLatency(cfg.MockLatency)), nil
	}
	client, err := sealapi.NewClient(cfg.APIBaseURL, sealapi.WithTimeout(cfg.APITimeout))
	if err != nil {
		return nil, fmt.Errorf("init seal api client: %w", err)
	}
	log.Printf("using seal backend %s", client.BaseURL())
	return client, nil
}

func newRecent(ctx context.Context, cfg Config, lister recent.Lister) (*recent.Service, func(), error) {
	opts := []recent.Option{recent.WithTTL(cfg.RecentTTL)}
	store, err := websqlite.OpenFile(ctx, cfg.CacheDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open web cache: %w", err)
	}
	closeStore := func() {}
	if store != nil {
		opts = append(opts, recent.WithCache(store))
		closeStore = func() {
			if err := store.Close(); err != nil {
				log.Printf("close web cache: %v", err)
			}
		}
	}
	svc := recent.New(lister, opts...)
	if pruned, err := svc.Prune(ctx); err != nil {
		log.Printf("prune web cache: %v", err)
	} else if pruned > 0 {
		log.Printf("pruned %d expired web cache entries", pruned)
	}
	return svc, closeStore, nil
}

// newRateLimit prefers redis when configured and falls back to process
// memory when redis cannot be reached.
func newRateLimit(ctx context.Context, cfg Config) (*ratelimit.Policy, func()) {
	if cfg.RateLimit <= 0 {
		return nil, func() {}
	}
	policy := &ratelimit.Policy{Limit: cfg.RateLimit, Window: cfg.RateWindow}
	if cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisLimiter(ctx, ratelimit.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err == nil {
			policy.Limiter = limiter
			return policy, func() { _ = limiter.Close() }
		}
		log.Printf("redis rate limiter unavailable, using memory: %v", err)
	}
	policy.Limiter = ratelimit.NewMemoryLimiter(ratelimit.MemoryConfig{})
	return policy, func() {}
}
