package remote

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/raphi011/wts/internal/cmd"
)

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	if err := cmd.RunContext(context.Background(), dir, "git", args...); err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
}

// setupOrigin creates a bare repository whose HEAD points to branch and
// which holds one commit on it.
func setupOrigin(t *testing.T, branch string) string {
	t.Helper()
	tmp := t.TempDir()
	origin := filepath.Join(tmp, "origin.git")
	work := filepath.Join(tmp, "work")

	gitRun(t, tmp, "init", "--bare", "-b", branch, origin)
	gitRun(t, tmp, "init", "-b", branch, work)
	gitRun(t, work, "config", "user.email", "test@test.com")
	gitRun(t, work, "config", "user.name", "Test User")
	gitRun(t, work, "config", "commit.gpgsign", "false")
	if err := os.WriteFile(filepath.Join(work, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	gitRun(t, work, "add", "README.md")
	gitRun(t, work, "commit", "-m", "Initial commit")
	gitRun(t, work, "push", origin, branch)
	return origin
}

func TestDefaultBranch(t *testing.T) {
	t.Parallel()

	for _, branch := range []string{"main", "master", "trunk"} {
		t.Run(branch, func(t *testing.T) {
			t.Parallel()
			origin := setupOrigin(t, branch)

			got, err := DefaultBranch(context.Background(), origin)
			if err != nil {
				t.Fatalf("DefaultBranch failed: %v", err)
			}
			if got != branch {
				t.Errorf("DefaultBranch = %q, want %q", got, branch)
			}
		})
	}
}

func TestDefaultBranch_Unreachable(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.git")
	if _, err := DefaultBranch(context.Background(), missing); err == nil {
		t.Error("DefaultBranch of a missing repository should fail")
	}
}

func TestHeadBranch(t *testing.T) {
	t.Parallel()

	hash := "0123456789abcdef0123456789abcdef01234567"

	t.Run("symbolic head", func(t *testing.T) {
		t.Parallel()
		refs := []*plumbing.Reference{
			plumbing.NewReferenceFromStrings("refs/heads/develop", hash),
			plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("develop")),
		}
		got, err := headBranch(refs)
		if err != nil || got != "develop" {
			t.Errorf("headBranch = %q, %v; want develop", got, err)
		}
	})

	t.Run("detached head", func(t *testing.T) {
		t.Parallel()
		refs := []*plumbing.Reference{
			plumbing.NewReferenceFromStrings("HEAD", hash),
		}
		if _, err := headBranch(refs); !errors.Is(err, ErrNoHead) {
			t.Errorf("headBranch error = %v, want ErrNoHead", err)
		}
	})
}
