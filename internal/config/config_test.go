package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Remote != "origin" {
		t.Errorf("remote = %q, want origin", cfg.Remote)
	}
	if cfg.DefaultBranch != "main" {
		t.Errorf("default_branch = %q, want main", cfg.DefaultBranch)
	}
	if !cfg.Publish || !cfg.SyncOnDone || !cfg.Install.Enabled {
		t.Errorf("publish, sync_on_done and install.enabled should default to true: %+v", cfg)
	}
	if !slices.Equal(cfg.Env.Files, []string{".env"}) {
		t.Errorf("env.files = %v, want [.env]", cfg.Env.Files)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Remote != "origin" {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `publish = false

[install]
command = "pnpm install"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Publish {
		t.Error("publish should be false")
	}
	if cfg.Install.Command != "pnpm install" {
		t.Errorf("install.command = %q", cfg.Install.Command)
	}
	if !cfg.Install.Enabled {
		t.Error("install.enabled should keep its default")
	}
	if cfg.Remote != "origin" || !cfg.SyncOnDone {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", `remote = `, "failed to parse"},
		{"empty remote", `remote = ""`, "invalid remote"},
		{"env file with separator", "[env]\nfiles = [\"config/.env\"]", "invalid env.files[0]"},
		{"env file dotdot", "[env]\nfiles = [\".env\", \"..\"]", "invalid env.files[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.content)

			cfg, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want to contain %q", err, tt.wantErr)
			}
			if cfg.Remote != "origin" {
				t.Error("invalid config should return defaults")
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `remote = "upstream"`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("remote = %q, want upstream", cfg.Remote)
	}
}
