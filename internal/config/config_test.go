package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "ai:\n  api_key: sk-test\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Fatalf("Env = %q", cfg.Env)
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Upload.MaxFileSizeMB != 20 {
		t.Fatalf("MaxFileSizeMB = %d, want 20", cfg.Upload.MaxFileSizeMB)
	}
	if cfg.MaxFileSizeBytes() != 20*1024*1024 {
		t.Fatalf("MaxFileSizeBytes = %d", cfg.MaxFileSizeBytes())
	}
	if cfg.AI.Provider != "openai" {
		t.Fatalf("Provider = %q, want openai", cfg.AI.Provider)
	}
	if cfg.AI.RequestTimeoutSec != 120 || cfg.AI.RateLimitPerMinute != 30 {
		t.Fatalf("AI defaults = %+v", cfg.AI)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
env: production
port: 9000
jwt_secret: supersecret
allowed_origins:
  - "example.com"
  - "*.example.org"
ai:
  provider: anthropic
  api_key: sk-test
  model: claude-haiku-4-5-20251001
  request_timeout_sec: 60
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IsDev() {
		t.Fatal("production config should not be dev")
	}
	if cfg.Port != 9000 || cfg.JWTSecret != "supersecret" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.AI.Provider != "anthropic" || cfg.AI.RequestTimeoutSec != 60 {
		t.Fatalf("AI = %+v", cfg.AI)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := Load(writeConfig(t, "prot: 8080\n")); err == nil {
		t.Fatal("typo'd keys must be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("missing file must error")
	}
}
