package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// commitFile writes name and commits it.
func commitFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	ctx := context.Background()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", "add "+name); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and git config.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	if err := runGit(context.Background(), "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n")

	return repoPath
}

// setupTestRepoWithOrigin creates a repo with a bare origin remote.
// Returns (repoPath, originPath).
func setupTestRepoWithOrigin(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := resolveTempDir(t)

	originPath := filepath.Join(tmpDir, "origin.git")
	repoPath := filepath.Join(tmpDir, "repo")

	ctx := context.Background()

	// -b main ensures consistent default branch across git versions
	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}
	if err := runGit(ctx, "", "clone", originPath, repoPath); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}
	if err := runGit(ctx, repoPath, "symbolic-ref", "HEAD", "refs/heads/main"); err != nil {
		t.Fatalf("failed to point HEAD at main: %v", err)
	}
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n")
	if err := runGit(ctx, repoPath, "push", "-u", "origin", "HEAD"); err != nil {
		t.Fatalf("failed to push: %v", err)
	}

	return repoPath, originPath
}

func TestExtractRepoNameFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/octocat/Hello-World.git", "Hello-World"},
		{"https://github.com/octocat/Hello-World", "Hello-World"},
		{"https://github.com/octocat/Hello-World/", "Hello-World"},
		{"git@github.com:octocat/Hello-World.git", "Hello-World"},
		{"git@host:repo.git", "repo"},
		{"ssh://git@github.com/org/acme.git", "acme"},
		{"/srv/git/acme.git", "acme"},
		{"acme", "acme"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			if got := ExtractRepoNameFromURL(tt.url); got != tt.want {
				t.Errorf("ExtractRepoNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	_, originPath := setupTestRepoWithOrigin(t)
	dest := filepath.Join(resolveTempDir(t), "main")

	if err := Clone(context.Background(), originPath, dest); err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(dest, ".git"))
	if err != nil {
		t.Fatalf("clone has no .git: %v", err)
	}
	if !info.IsDir() {
		t.Error("cloned .git should be a directory")
	}
}

func TestClone_Unreachable(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(resolveTempDir(t), "main")
	missing := filepath.Join(resolveTempDir(t), "does-not-exist.git")

	if err := Clone(context.Background(), missing, dest); err == nil {
		t.Fatal("Clone of a missing source should fail")
	}
}

func TestLsRemoteDefaultBranch(t *testing.T) {
	t.Parallel()

	_, originPath := setupTestRepoWithOrigin(t)

	got, err := LsRemoteDefaultBranch(context.Background(), originPath)
	if err != nil {
		t.Fatalf("LsRemoteDefaultBranch failed: %v", err)
	}
	if got != "main" {
		t.Errorf("LsRemoteDefaultBranch = %q, want main", got)
	}
}

func TestBranchExists(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := runGit(ctx, repoPath, "branch", "existing"); err != nil {
		t.Fatalf("failed to create branch: %v", err)
	}

	if !LocalBranchExists(ctx, repoPath, "existing") {
		t.Error("existing branch should exist")
	}
	if LocalBranchExists(ctx, repoPath, "nonexistent") {
		t.Error("nonexistent branch should not exist")
	}
}

func TestRemoteBranchExists(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepoWithOrigin(t)
	ctx := context.Background()

	// setupTestRepoWithOrigin pushes to origin, creating origin/main
	if !RemoteBranchExists(ctx, repoPath, "origin", "main") {
		t.Error("remote branch \"main\" should exist")
	}
	if RemoteBranchExists(ctx, repoPath, "origin", "nonexistent-remote") {
		t.Error("nonexistent remote branch should not exist")
	}
	if LocalBranchExists(ctx, repoPath, "origin/main") {
		t.Error("remote-tracking ref must not count as a local branch")
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	dirty, err := IsDirty(ctx, repoPath)
	if err != nil {
		t.Fatalf("IsDirty failed: %v", err)
	}
	if dirty {
		t.Error("fresh repo should be clean")
	}

	if err := os.WriteFile(filepath.Join(repoPath, "scratch.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := Status(ctx, repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if len(lines) != 1 || lines[0] != "?? scratch.txt" {
		t.Errorf("Status = %q, want [\"?? scratch.txt\"]", lines)
	}
}

func TestDeleteLocalBranch(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := runGit(ctx, repoPath, "branch", "doomed"); err != nil {
		t.Fatalf("failed to create branch: %v", err)
	}
	if err := DeleteLocalBranch(ctx, repoPath, "doomed", true); err != nil {
		t.Fatalf("DeleteLocalBranch failed: %v", err)
	}
	if LocalBranchExists(ctx, repoPath, "doomed") {
		t.Error("branch should be gone")
	}
	if err := DeleteLocalBranch(ctx, repoPath, "doomed", true); err == nil {
		t.Error("deleting a missing branch should fail")
	}
}

func TestPushAndFetchPrune(t *testing.T) {
	t.Parallel()

	repoPath, originPath := setupTestRepoWithOrigin(t)
	ctx := context.Background()

	if err := runGit(ctx, repoPath, "branch", "feature"); err != nil {
		t.Fatalf("failed to create branch: %v", err)
	}
	if err := Push(ctx, repoPath, "origin", "feature"); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if !RemoteBranchExists(ctx, repoPath, "origin", "feature") {
		t.Fatal("origin/feature should exist after push")
	}

	// delete on the remote side, then prune
	if err := runGit(ctx, originPath, "branch", "-D", "feature"); err != nil {
		t.Fatalf("failed to delete remote branch: %v", err)
	}
	if err := FetchPrune(ctx, repoPath); err != nil {
		t.Fatalf("FetchPrune failed: %v", err)
	}
	if RemoteBranchExists(ctx, repoPath, "origin", "feature") {
		t.Error("origin/feature should be pruned")
	}
	if err := PullFastForward(ctx, repoPath); err != nil {
		t.Errorf("PullFastForward failed: %v", err)
	}
}

func TestPush_NoRemote(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	if err := Push(context.Background(), repoPath, "origin", "main"); err == nil {
		t.Error("Push without a remote should fail")
	}
}
