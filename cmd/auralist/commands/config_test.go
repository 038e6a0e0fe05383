package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.MaxSongs != 20 {
		t.Errorf("MaxSongs = %d, want 20", cfg.MaxSongs)
	}
	if !cfg.Shuffle || !cfg.Dynamic {
		t.Errorf("Shuffle, Dynamic = %v, %v, want true, true", cfg.Shuffle, cfg.Dynamic)
	}
	if cfg.MoodMatchThreshold != 0.5 {
		t.Errorf("MoodMatchThreshold = %v, want 0.5", cfg.MoodMatchThreshold)
	}
	if cfg.EnergyColumn != "energy" || cfg.ValenceColumn != "valence" || cfg.TempoColumn != "tempo" {
		t.Errorf("trait columns = (%q, %q, %q)", cfg.EnergyColumn, cfg.ValenceColumn, cfg.TempoColumn)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auralist.yaml")
	content := "max_songs: 12\nshuffle: false\nenergy_column: loudness\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.MaxSongs != 12 {
		t.Errorf("MaxSongs = %d, want 12 from file", cfg.MaxSongs)
	}
	if cfg.Shuffle {
		t.Error("Shuffle = true, want false from file")
	}
	if cfg.EnergyColumn != "loudness" {
		t.Errorf("EnergyColumn = %q, want loudness", cfg.EnergyColumn)
	}
	// Untouched keys keep their defaults.
	if cfg.TempoColumn != "tempo" {
		t.Errorf("TempoColumn = %q, want default tempo", cfg.TempoColumn)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auralist.yaml")
	if err := os.WriteFile(path, []byte("max_songs: 12\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AURALIST_MAX_SONGS", "7")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxSongs != 7 {
		t.Errorf("MaxSongs = %d, want 7 from environment", cfg.MaxSongs)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() with missing file returned nil error")
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := defaultCLIConfig()
	cfg.MoodMatchThreshold = 0.8
	cfg.EnergyColumn = "intensity"

	engineCfg := cfg.EngineConfig()
	if engineCfg.MoodMatchThreshold != 0.8 {
		t.Errorf("MoodMatchThreshold = %v, want 0.8", engineCfg.MoodMatchThreshold)
	}
	if engineCfg.TraitColumns.Energy != "intensity" {
		t.Errorf("TraitColumns.Energy = %q, want intensity", engineCfg.TraitColumns.Energy)
	}
	if engineCfg.TraitColumns.Valence != "valence" {
		t.Errorf("TraitColumns.Valence = %q, want valence", engineCfg.TraitColumns.Valence)
	}
}
