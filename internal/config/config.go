package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the environment variable that overrides the global config path.
const EnvConfigPath = "WTS_CONFIG"

// EnvConfig lists the auxiliary environment files kept in sync between checkouts.
type EnvConfig struct {
	Files []string `toml:"files"`
}

// InstallConfig controls dependency installation after new and done.
type InstallConfig struct {
	Enabled bool   `toml:"enabled"`
	Command string `toml:"command"` // overrides detection, e.g. "pnpm install"
}

// Config holds the wts configuration
type Config struct {
	Remote        string        `toml:"remote"`
	DefaultBranch string        `toml:"default_branch"`
	Publish       bool          `toml:"publish"`
	SyncOnDone    bool          `toml:"sync_on_done"`
	Env           EnvConfig     `toml:"env"`
	Install       InstallConfig `toml:"install"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Remote:        "origin",
		DefaultBranch: "main",
		Publish:       true,
		SyncOnDone:    true,
		Env:           EnvConfig{Files: []string{".env"}},
		Install:       InstallConfig{Enabled: true},
	}
}

// configPath returns the path to the global config file
func configPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wts", "config.toml"), nil
}

// Load reads the global config.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. Keys absent from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validate(&cfg, path); err != nil {
		return Default(), err
	}

	return cfg, nil
}
