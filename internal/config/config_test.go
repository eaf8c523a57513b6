package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadFileWithDefaults(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: flights.csv
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Dataset.Path != "flights.csv" {
		t.Errorf("expected dataset path flights.csv, got %s", cfg.Dataset.Path)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("expected default cache backend memory, got %s", cfg.Cache.Backend)
	}
	if cfg.RateLimit.RequestsPerSecond != 10 || cfg.RateLimit.BurstSize != 20 {
		t.Errorf("unexpected default rate limits: %v/%d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
dataset:
  path: data/flights.csv
cache:
  backend: redis
  redisHost: cache.internal
  ttl: 10m
rateLimit:
  requestsPerSecond: 5
  burstSize: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisHost != "cache.internal" {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
	if cfg.Cache.TTLDuration() != 10*time.Minute {
		t.Errorf("expected TTL 10m, got %v", cfg.Cache.TTLDuration())
	}
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.BurstSize != 10 {
		t.Errorf("unexpected rate limits: %+v", cfg.RateLimit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: flights.csv
`)

	t.Setenv("PORT", "7070")
	t.Setenv("CACHE_BACKEND", "off")
	t.Setenv("DATASET_PATH", "env/flights.csv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Backend != "off" {
		t.Errorf("expected env cache backend off, got %s", cfg.Cache.Backend)
	}
	if cfg.Dataset.Path != "env/flights.csv" {
		t.Errorf("expected env dataset path, got %s", cfg.Dataset.Path)
	}
}

func TestLoadMissingFileNeedsEnvDataset(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")

	if _, err := Load(missing); err == nil {
		t.Error("expected validation error without a dataset path")
	}

	t.Setenv("DATASET_PATH", "env/flights.csv")
	cfg, err := Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Dataset.Path != "env/flights.csv" {
		t.Errorf("expected env dataset path, got %s", cfg.Dataset.Path)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad port",
			content: `
server:
  port: -1
dataset:
  path: flights.csv
`,
		},
		{
			name: "unknown cache backend",
			content: `
dataset:
  path: flights.csv
cache:
  backend: memcached
`,
		},
		{
			name: "malformed yaml",
			content: `
dataset: [
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTTLDurationFallback(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
		want time.Duration
	}{
		{name: "empty", ttl: "", want: 5 * time.Minute},
		{name: "malformed", ttl: "soon", want: 5 * time.Minute},
		{name: "valid", ttl: "90s", want: 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := CacheConfig{TTL: tt.ttl}
			if got := cfg.TTLDuration(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
