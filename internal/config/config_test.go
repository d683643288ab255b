package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "APP_PORT", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT",
		"DB_NAME", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST", "RABBITMQ_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("Env: got %q want dev", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port: got %q want 8080", cfg.Port)
	}
	if cfg.JWTSecret != DefaultJWTSecret {
		t.Fatalf("JWTSecret: got %q want the dev default", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 7*24*time.Hour {
		t.Fatalf("TokenTTL: got %v want 168h", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("BcryptCost: got %d want 10", cfg.BcryptCost)
	}
	if cfg.IsProduction() {
		t.Fatal("dev config must not report production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("APP_PORT", "9000")

	cfg := Load()
	if !cfg.IsProduction() {
		t.Fatal("APP_ENV=production must report production")
	}
	if cfg.JWTSecret != "real-secret" {
		t.Fatalf("JWTSecret: got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL: got %v want 24h", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("BcryptCost: got %d want 12", cfg.BcryptCost)
	}
	if cfg.Port != "9000" {
		t.Fatalf("Port: got %q want 9000", cfg.Port)
	}
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_TTL", "next tuesday")

	if cfg := Load(); cfg.TokenTTL != 7*24*time.Hour {
		t.Fatalf("TokenTTL: got %v want the 168h default", cfg.TokenTTL)
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"dev", false},
		{"test", false},
		{"prod", true},
		{"production", true},
	}
	for _, tt := range tests {
		if got := (Config{Env: tt.env}).IsProduction(); got != tt.want {
			t.Fatalf("IsProduction(%q): got %v want %v", tt.env, got, tt.want)
		}
	}
}
