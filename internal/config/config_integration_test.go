package config

import (
	"path/filepath"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "arrdeck", "config.toml")
	if err := WriteDefault(cfgPath, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	// 2. Set required env vars (t.Setenv auto-restores on cleanup)
	t.Setenv("RADARR_API_KEY", "test-radarr-key")
	t.Setenv("SONARR_API_KEY", "test-sonarr-key")
	t.Setenv("TMDB_API_KEY", "test-tmdb-key")

	// 3. The default config validates once keys are present
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 4. Verify env substitution
	if cfg.Radarr == nil || cfg.Radarr.APIKey != "test-radarr-key" {
		t.Errorf("expected radarr key substituted, got %+v", cfg.Radarr)
	}
	if cfg.TMDB == nil || cfg.TMDB.APIKey != "test-tmdb-key" {
		t.Errorf("expected tmdb key substituted, got %+v", cfg.TMDB)
	}

	// 5. Verify defaults applied
	if cfg.Server.Port != 8484 {
		t.Errorf("expected default port 8484, got %d", cfg.Server.Port)
	}
	if cfg.TMDB.PosterSize != DefaultPosterSize {
		t.Errorf("expected default poster size, got %q", cfg.TMDB.PosterSize)
	}
}

func TestFullWorkflow_MissingKeys(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteDefault(cfgPath, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	t.Setenv("RADARR_API_KEY", "")
	t.Setenv("SONARR_API_KEY", "")
	t.Setenv("TMDB_API_KEY", "")

	// Empty values substitute as empty strings and fail validation.
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected validation error for empty api keys")
	}
}
