package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if got := cfg.Cart.DeliveryFee.String(); got != "20" {
		t.Fatalf("expected default delivery fee 20, got %s", got)
	}
	if cfg.Amount.Min != 1 || cfg.Amount.Max != 9 || cfg.Amount.Default != 1 {
		t.Fatalf("unexpected amount defaults %+v", cfg.Amount)
	}
	if cfg.Orders.Timeout != 10*time.Second {
		t.Fatalf("expected orders timeout 10s, got %v", cfg.Orders.Timeout)
	}
	if cfg.Orders.SubmissionEnabled() {
		t.Fatalf("order submission should be disabled without a URL")
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without a URL or address")
	}
	if len(cfg.App.CORSOrigins) != 1 || cfg.App.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default cors origins %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartDeliveryFee, "12.50")
	t.Setenv(EnvAmountMax, "20")
	t.Setenv(EnvOrdersURL, "http://localhost:3131/orders")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvCORSOrigins, "https://pizzeria.example,https://www.pizzeria.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if got := cfg.Cart.DeliveryFee.StringFixed(2); got != "12.50" {
		t.Fatalf("expected delivery fee 12.50, got %s", got)
	}
	if cfg.Amount.Max != 20 {
		t.Fatalf("expected max 20, got %d", cfg.Amount.Max)
	}
	if !cfg.Orders.SubmissionEnabled() {
		t.Fatalf("expected submission enabled")
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("expected redis enabled")
	}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[1] != "https://www.pizzeria.example" {
		t.Fatalf("unexpected cors origins %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsNegativeDeliveryFee(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartDeliveryFee, "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected negative delivery fee to be rejected")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
