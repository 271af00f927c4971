package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingConfig(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("Load succeeded with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	saved := &Config{
		Version:      "1",
		DatabasePath: filepath.Join(tmpDir, "world.db"),
		Components:   []string{"core", "pk_auto", "timestamps"},
	}
	if err := Save(tmpDir, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("Version = %q, want 1", cfg.Version)
	}
	if cfg.DatabasePath != saved.DatabasePath {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, saved.DatabasePath)
	}
	if len(cfg.Components) != 3 || cfg.Components[2] != "timestamps" {
		t.Errorf("Components = %v, want %v", cfg.Components, saved.Components)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	tmpDir := t.TempDir()

	sweetDir := filepath.Join(tmpDir, ".sweet")
	if err := os.MkdirAll(sweetDir, 0755); err != nil {
		t.Fatalf("failed to create .sweet dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sweetDir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("Load succeeded with malformed config")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Version != "1" {
		t.Errorf("Version = %q, want 1", cfg.Version)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("DatabasePath = %q, want empty", cfg.DatabasePath)
	}
}
