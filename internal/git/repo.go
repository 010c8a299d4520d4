package git

import (
	"context"
	"fmt"
	"strings"
)

// ExtractRepoNameFromURL extracts the repository name from a git URL.
// Handles https, ssh, scp-style (git@host:org/repo.git) and local paths.
func ExtractRepoNameFromURL(url string) string {
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, ".git")
	if i := strings.LastIndexAny(url, "/:\\"); i != -1 {
		url = url[i+1:]
	}
	return url
}

// Clone clones source into dest with a regular (non-bare) checkout.
func Clone(ctx context.Context, source, dest string) error {
	if err := runGit(ctx, "", "clone", source, dest); err != nil {
		return fmt.Errorf("failed to clone %s: %w", source, err)
	}
	return nil
}

// LsRemoteDefaultBranch asks the remote which branch HEAD points to.
// Parses the "ref: refs/heads/<name>\tHEAD" line of ls-remote --symref.
func LsRemoteDefaultBranch(ctx context.Context, source string) (string, error) {
	output, err := outputGit(ctx, "", "ls-remote", "--symref", source, "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to query remote HEAD: %w", err)
	}
	for _, line := range strings.Split(string(output), "\n") {
		ref, ok := strings.CutPrefix(line, "ref: ")
		if !ok {
			continue
		}
		ref, _, _ = strings.Cut(ref, "\t")
		if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok && name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("remote %s did not advertise a HEAD branch", source)
}

// LocalBranchExists checks if refs/heads/<branch> exists in repoPath.
func LocalBranchExists(ctx context.Context, repoPath, branch string) bool {
	return runGit(ctx, repoPath, "show-ref", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// RemoteBranchExists checks if the remote-tracking ref refs/remotes/<remote>/<branch> exists.
func RemoteBranchExists(ctx context.Context, repoPath, remote, branch string) bool {
	return runGit(ctx, repoPath, "show-ref", "--verify", "--quiet", "refs/remotes/"+remote+"/"+branch) == nil
}

// DeleteLocalBranch deletes a local branch
func DeleteLocalBranch(ctx context.Context, repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := runGit(ctx, repoPath, "branch", flag, branch); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}

// Status returns the porcelain status lines of the checkout at path.
// An empty slice means the checkout is clean.
func Status(ctx context.Context, path string) ([]string, error) {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// IsDirty returns true if the checkout has uncommitted changes.
func IsDirty(ctx context.Context, path string) (bool, error) {
	lines, err := Status(ctx, path)
	if err != nil {
		return false, err
	}
	return len(lines) > 0, nil
}

// PullFastForward updates the current branch of repoPath without creating merges.
func PullFastForward(ctx context.Context, repoPath string) error {
	if err := runGit(ctx, repoPath, "pull", "--ff-only"); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

// FetchPrune fetches all remotes and drops stale remote-tracking refs.
func FetchPrune(ctx context.Context, repoPath string) error {
	if err := runGit(ctx, repoPath, "fetch", "--prune"); err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	return nil
}

// Push publishes branch to remote and sets it as upstream.
func Push(ctx context.Context, repoPath, remote, branch string) error {
	if err := runGit(ctx, repoPath, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
