// Package safety holds the precondition checks run before a checkout is
// created or retired. Checks only read state; deciding what a failed check
// means is left to the caller.
package safety

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/wts/internal/git"
	"github.com/raphi011/wts/internal/home"
	"github.com/raphi011/wts/internal/preserve"
)

var (
	// ErrBranchExists means the branch already exists as a local branch.
	ErrBranchExists = errors.New("branch already exists locally")

	// ErrRemoteBranchExists means the branch exists as a remote-tracking branch.
	ErrRemoteBranchExists = errors.New("branch already exists on remote")

	// ErrDirExists means the target directory of a new sibling is taken.
	ErrDirExists = errors.New("directory already exists")

	// ErrProtectedCheckout means the target is the main checkout.
	ErrProtectedCheckout = errors.New("refusing to remove the main checkout")
)

// CheckBranch fails if branch exists locally in mainPath or as
// <remote>/<branch>. The local check runs first.
func CheckBranch(ctx context.Context, mainPath, remote, branch string) error {
	if git.LocalBranchExists(ctx, mainPath, branch) {
		return fmt.Errorf("%w: %s", ErrBranchExists, branch)
	}
	if remote != "" && git.RemoteBranchExists(ctx, mainPath, remote, branch) {
		return fmt.Errorf("%w: %s/%s (check it out instead, or pick another name)", ErrRemoteBranchExists, remote, branch)
	}
	return nil
}

// CheckDir fails if anything exists at path.
func CheckDir(path string) error {
	_, err := os.Lstat(path)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDirExists, path)
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to check %s: %w", path, err)
}

// CheckNotMain fails if path is a main checkout. There is no override.
func CheckNotMain(path string) error {
	if home.Classify(path) == home.KindMain {
		return fmt.Errorf("%w: %s", ErrProtectedCheckout, path)
	}
	return nil
}

// Dirty reports whether the checkout at path has uncommitted changes.
// Untracked files count unless they are ignored.
func Dirty(ctx context.Context, path string) (bool, error) {
	return git.IsDirty(ctx, path)
}

// EnvDivergence lists env files present in both checkouts whose bytes differ.
func EnvDivergence(names []string, mainPath, targetPath string) ([]string, error) {
	return preserve.Diverged(names, mainPath, targetPath)
}
