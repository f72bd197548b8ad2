package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Addr    string        `env:"CRYPTO_SEAL_TEST_ADDR" envDefault:"localhost:1"`
	Limit   int           `env:"CRYPTO_SEAL_TEST_LIMIT" envDefault:"123"`
	Timeout time.Duration `env:"CRYPTO_SEAL_TEST_TIMEOUT" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 123 {
		t.Fatalf("expected default limit 123, got %d", cfg.Limit)
	}
	if cfg.Addr != "localhost:1" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected default timeout 2s, got %s", cfg.Timeout)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CRYPTO_SEAL_TEST_ADDR", "127.0.0.1:9000")
	t.Setenv("CRYPTO_SEAL_TEST_TIMEOUT", "750ms")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9000")
	}
	if cfg.Timeout != 750*time.Millisecond {
		t.Fatalf("Timeout = %s, want 750ms", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CRYPTO_SEAL_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRejectsNilTarget(t *testing.T) {
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}
