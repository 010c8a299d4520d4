package config

import (
	"slices"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestMergeLocal_Nil(t *testing.T) {
	t.Parallel()

	global := Default()
	if got := MergeLocal(&global, nil); got != &global {
		t.Error("nil local should return global unchanged")
	}
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	global := Default()
	global.Env.Files = []string{".env", ".env.local"}

	local := &LocalConfig{
		Remote:  ptr("upstream"),
		Publish: ptr(false),
		Env:     EnvConfig{Files: []string{".env.local", ".envrc"}},
		Install: LocalInstall{Command: ptr("bun install")},
	}

	merged := MergeLocal(&global, local)

	if merged.Remote != "upstream" {
		t.Errorf("remote = %q, want upstream", merged.Remote)
	}
	if merged.Publish {
		t.Error("publish should be overridden to false")
	}
	if !merged.SyncOnDone {
		t.Error("sync_on_done should be inherited")
	}
	if merged.DefaultBranch != "main" {
		t.Errorf("default_branch = %q, want inherited main", merged.DefaultBranch)
	}
	if want := []string{".env", ".env.local", ".envrc"}; !slices.Equal(merged.Env.Files, want) {
		t.Errorf("env.files = %v, want %v", merged.Env.Files, want)
	}
	if merged.Install.Command != "bun install" || !merged.Install.Enabled {
		t.Errorf("install = %+v", merged.Install)
	}

	// global must not be mutated
	if global.Remote != "origin" || !global.Publish || len(global.Env.Files) != 2 {
		t.Errorf("global was mutated: %+v", global)
	}
}
