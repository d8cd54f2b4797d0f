package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("Port default: %q", cfg.Port)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath default: %q", cfg.APIBasePath)
	}
	if cfg.DBPath != "app.db" {
		t.Fatalf("DBPath default: %q", cfg.DBPath)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("SessionTTL default: %v", cfg.SessionTTL)
	}
	if cfg.Currency != "USD" {
		t.Fatalf("Currency default: %q", cfg.Currency)
	}
	if cfg.SeedAdmin.Username != "admin" || cfg.SeedAdmin.Role != "admin" {
		t.Fatalf("SeedAdmin default: %+v", cfg.SeedAdmin)
	}
	if cfg.SeedOwner.Username != "owner" || cfg.SeedOwner.Role != "owner" {
		t.Fatalf("SeedOwner default: %+v", cfg.SeedOwner)
	}
	if cfg.SeedAdmin.Password != "" || cfg.SeedOwner.Password != "" {
		t.Fatal("seed passwords must default to empty (no account created)")
	}
	if cfg.Stripe.SecretKey != "" {
		t.Fatal("Stripe key must default to empty (sandbox charger)")
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate limits default: rps=%v burst=%d", cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.SwaggerEnabled {
		t.Fatal("Swagger must be off by default")
	}
	if cfg.OTEL.ServiceName != "go-donation-backend" {
		t.Fatalf("OTEL service name default: %q", cfg.OTEL.ServiceName)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DEFAULT_CURRENCY", "php")
	t.Setenv("SEED_ADMIN_PASSWORD", "pw123456")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("API_BASE_PATH", "api/v2/")
	t.Setenv("LOG_LEVEL", "warning")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("Port: %q", cfg.Port)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL: %v", cfg.SessionTTL)
	}
	if cfg.Currency != "PHP" {
		t.Fatalf("Currency must be uppercased: %q", cfg.Currency)
	}
	if cfg.SeedAdmin.Password != "pw123456" {
		t.Fatalf("SeedAdmin.Password: %q", cfg.SeedAdmin.Password)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("CORS origins: %+v", cfg.CORS.AllowedOrigins)
	}
	if cfg.APIBasePath != "/api/v2" {
		t.Fatalf("base path normalization: %q", cfg.APIBasePath)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("warning alias: %q", cfg.LogLevel)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		key, val string
	}{
		{"LOG_LEVEL", "verbose"},
		{"SESSION_TTL", "-1h"},
		{"DEFAULT_CURRENCY", "DOLLARS"},
		{"RATE_BURST", "0"},
		{"READ_TIMEOUT", "-5s"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"/api/v1": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
