package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// WorktreeEntry is one line of "git worktree list".
type WorktreeEntry struct {
	Path     string
	Revision string
	Branch   string
}

// worktreeLine matches "<path>  <rev> [<branch>]" with optional trailing
// annotations such as "locked" or "prunable".
var worktreeLine = regexp.MustCompile(`^(.+?)\s+([0-9a-f]{4,})\s+\[(.+?)\]`)

// ParseWorktreeList parses the default (non-porcelain) output of
// "git worktree list". Lines without a bracketed branch (bare, detached)
// are skipped.
func ParseWorktreeList(output string) []WorktreeEntry {
	var entries []WorktreeEntry
	for _, line := range strings.Split(output, "\n") {
		m := worktreeLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		entries = append(entries, WorktreeEntry{
			Path:     m[1],
			Revision: m[2],
			Branch:   m[3],
		})
	}
	return entries
}

// ListWorktrees lists all worktrees known to the repository at repoPath.
func ListWorktrees(ctx context.Context, repoPath string) ([]WorktreeEntry, error) {
	output, err := outputGit(ctx, repoPath, "worktree", "list")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return ParseWorktreeList(string(output)), nil
}

// AddWorktree creates a worktree at path with a new branch based on the
// current HEAD of repoPath.
func AddWorktree(ctx context.Context, repoPath, path, branch string) error {
	return runGit(ctx, repoPath, "worktree", "add", "-b", branch, path)
}

// RemoveWorktree removes the worktree at path.
func RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	return runGit(ctx, repoPath, append(args, path)...)
}
