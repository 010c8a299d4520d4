package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckGit_Available(t *testing.T) {
	t.Parallel()
	// git must be available in CI and dev environments
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}

func TestShowToplevel(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	nested := filepath.Join(repoPath, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ShowToplevel(context.Background(), nested)
	if err != nil {
		t.Fatalf("ShowToplevel failed: %v", err)
	}
	if got != repoPath {
		t.Errorf("ShowToplevel = %q, want %q", got, repoPath)
	}
}

func TestShowToplevel_NotARepo(t *testing.T) {
	t.Parallel()

	_, err := ShowToplevel(context.Background(), resolveTempDir(t))
	if err == nil {
		t.Fatal("ShowToplevel outside a repo should fail")
	}
	if errors.Is(err, ErrGitNotFound) {
		t.Error("a missing repo is not a missing git binary")
	}
}
