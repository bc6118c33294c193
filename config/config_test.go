package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if !cfg.PersistenceEnabled {
		t.Fatal("persistence must default to enabled")
	}
	if cfg.EmailPort != 587 {
		t.Fatalf("expected default email port 587, got %d", cfg.EmailPort)
	}
	if cfg.Development {
		t.Fatal("development must default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PERSISTENCE_ENABLED", "false")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("SMS_PROVIDER", "dummy")
	t.Setenv("APP_ENV", "development")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.PersistenceEnabled {
		t.Fatal("expected persistence disabled")
	}
	if cfg.EmailPort != 465 {
		t.Fatalf("unexpected email port %d", cfg.EmailPort)
	}
	if cfg.SMSProvider != "dummy" {
		t.Fatalf("unexpected provider %q", cfg.SMSProvider)
	}
	if !cfg.Development {
		t.Fatal("expected development mode")
	}
}

func TestInvalidNumericFallsBack(t *testing.T) {
	t.Setenv("EMAIL_PORT", "not-a-number")
	t.Setenv("PERSISTENCE_ENABLED", "maybe")

	cfg := Load()
	if cfg.EmailPort != 587 {
		t.Fatalf("expected fallback 587, got %d", cfg.EmailPort)
	}
	if !cfg.PersistenceEnabled {
		t.Fatal("expected fallback true")
	}
}
