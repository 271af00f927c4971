package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat sweet CLI configuration.
type Config struct {
	Version      string   `json:"version"`
	DatabasePath string   `json:"database_path,omitempty"` // sqlite file for deploys
	Components   []string `json:"components,omitempty"`    // extra components to require during doctor checks
}

// Load reads .sweet/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns an error if no config is found - the caller decides whether to
// fall back to defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".sweet", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes config.json to the directory's .sweet subdirectory.
func Save(dir string, cfg *Config) error {
	sweetDir := filepath.Join(dir, ".sweet")
	if err := os.MkdirAll(sweetDir, 0755); err != nil {
		return fmt.Errorf("failed to create .sweet dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(sweetDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Version: "1"}
}
