package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("DEFAULT_TIMEOUT_MS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBPath == "" {
		t.Error("expected a non-empty default DB path")
	}
	if cfg.DefaultTimeoutMs <= 0 {
		t.Errorf("expected a positive default timeout, got %d", cfg.DefaultTimeoutMs)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("DEFAULT_TIMEOUT_MS", "1500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("expected DB path override, got %q", cfg.DBPath)
	}
	if cfg.DefaultTimeoutMs != 1500 {
		t.Errorf("expected timeout 1500, got %d", cfg.DefaultTimeoutMs)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("DEFAULT_TIMEOUT_MS", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("expected an error for a non-numeric DEFAULT_TIMEOUT_MS")
	}
}
