package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8081" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.LiveTTL.Std() != 10*time.Minute {
		t.Fatalf("expected default live TTL, got %s", cfg.LiveTTL.Std())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "port: \"9000\"\nfixtures_dir: /data/fixtures\nlive_cache_ttl: 5m\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || cfg.FixturesDir != "/data/fixtures" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.LiveTTL.Std() != 5*time.Minute {
		t.Fatalf("expected 5m TTL, got %s", cfg.LiveTTL.Std())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "7777" {
		t.Fatalf("PORT env not applied: %s", cfg.Port)
	}
	found := 0
	for _, o := range cfg.CORSOrigins {
		if o == "https://a.example" || o == "https://b.example" {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("CORS_ORIGINS env not applied: %v", cfg.CORSOrigins)
	}
}
