package config_test

import (
	"testing"

	"github.com/Sol1du2/transacto/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("TRANSACTO_STRICT", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}

	if cfg.LogFormat != "console" {
		t.Fatalf("expected default log format console, got %q", cfg.LogFormat)
	}

	if cfg.Strict {
		t.Fatal("expected strict mode to default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("TRANSACTO_STRICT", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %q", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Fatalf("expected log format override, got %q", cfg.LogFormat)
	}

	if !cfg.Strict {
		t.Fatal("expected strict mode to be enabled")
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("TRANSACTO_STRICT", "not-a-bool")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}
