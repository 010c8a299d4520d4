package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-home override file at the worktree home root.
const LocalConfigFileName = ".wts.toml"

// LocalConfig holds per-home configuration overrides from .wts.toml.
// Nil pointer fields indicate "not set" (inherit from global).
type LocalConfig struct {
	Remote        *string      `toml:"remote"`
	DefaultBranch *string      `toml:"default_branch"`
	Publish       *bool        `toml:"publish"`
	SyncOnDone    *bool        `toml:"sync_on_done"`
	Env           EnvConfig    `toml:"env"` // appended to global
	Install       LocalInstall `toml:"install"`
}

// LocalInstall holds local install overrides
type LocalInstall struct {
	Enabled *bool   `toml:"enabled"`
	Command *string `toml:"command"`
}

// LoadLocal reads .wts.toml from the given home root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(root string) (*LocalConfig, error) {
	configFile := filepath.Join(root, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if _, err := toml.Decode(string(data), &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if local.Remote != nil && strings.TrimSpace(*local.Remote) == "" {
		return nil, fmt.Errorf("invalid remote in %s: must not be empty", configFile)
	}
	if err := validateEnvFiles(local.Env.Files, configFile); err != nil {
		return nil, err
	}

	return &local, nil
}
