package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/raphi011/wts/internal/git"
	"github.com/raphi011/wts/internal/home"
	"github.com/raphi011/wts/internal/install"
	"github.com/raphi011/wts/internal/safety"
)

// DoneOptions configures Done.
type DoneOptions struct {
	// Dir is the checkout to retire, absolute or relative to the home root.
	// Empty means the checkout containing the working directory.
	Dir   string
	Force bool
}

// DoneResult describes a retired sibling checkout.
type DoneResult struct {
	Path   string
	Branch string
	// Main is the main checkout of the home.
	Main string
	// Relocated is set when the working directory moved to the main checkout.
	Relocated     bool
	BranchDeleted bool
	Warnings      []Warning
}

// Done removes a sibling checkout and its local branch, then syncs main.
func Done(ctx context.Context, env *Env, opts DoneOptions) (*DoneResult, error) {
	h, cfg, err := resolve(ctx, env.Cwd)
	if err != nil {
		return nil, err
	}

	target, err := doneTarget(ctx, env, h, opts.Dir)
	if err != nil {
		return nil, err
	}
	res := &DoneResult{Path: target, Main: h.Main}
	var warns warnings

	if within(env.Cwd, target) && !within(h.Main, target) {
		if err := env.relocate(ctx, h.Main); err != nil {
			return nil, err
		}
		res.Relocated = true
	}

	if _, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to check %s: %w", target, err)
		}
		return nil, missingTarget(h, target)
	}

	if err := safety.CheckNotMain(target); err != nil {
		return nil, err
	}

	dirty, err := safety.Dirty(ctx, target)
	if err != nil {
		return nil, err
	}
	if dirty {
		if !opts.Force {
			return nil, fmt.Errorf("%w: %s (commit or stash them, or use --force)", ErrDirtyCheckout, h.Rel(target))
		}
		warns.add(ctx, "uncommitted changes", fmt.Errorf("discarding changes in %s", h.Rel(target)))
	}

	diverged, err := safety.EnvDivergence(cfg.Env.Files, h.Main, target)
	if err != nil {
		warns.add(ctx, "compare env files", err)
	}
	for _, name := range diverged {
		warns.add(ctx, "env file differs", fmt.Errorf("%s in %s differs from the main checkout", name, h.Rel(target)))
	}

	branch, hasBranch := home.BranchOf(ctx, h, target)
	res.Branch = branch

	if err := git.RemoveWorktree(ctx, h.Main, target, opts.Force); err != nil {
		return nil, fmt.Errorf("failed to remove worktree: %w", err)
	}

	if hasBranch {
		if err := git.DeleteLocalBranch(ctx, h.Main, branch, true); err != nil {
			warns.add(ctx, "delete branch "+branch, err)
		} else {
			res.BranchDeleted = true
		}
	}

	if cfg.SyncOnDone {
		err := env.step("Syncing main checkout", func() error {
			if err := git.FetchPrune(ctx, h.Main); err != nil {
				return err
			}
			return git.PullFastForward(ctx, h.Main)
		})
		if err != nil {
			warns.add(ctx, "sync main checkout", err)
		}
	}

	err = env.step("Installing dependencies", func() error {
		_, err := install.Run(ctx, cfg.Install, h.Main)
		return err
	})
	if err != nil {
		warns.add(ctx, "install dependencies", err)
	}

	res.Warnings = warns
	return res, nil
}

// doneTarget resolves the checkout to retire.
func doneTarget(ctx context.Context, env *Env, h *home.Home, dir string) (string, error) {
	if dir != "" {
		return h.Path(dir), nil
	}
	top, err := git.ShowToplevel(ctx, env.Cwd)
	if err != nil {
		return "", err
	}
	return top, nil
}

// missingTarget builds ErrTargetMissing with close sibling names.
func missingTarget(h *home.Home, target string) error {
	err := fmt.Errorf("%w: %s", ErrTargetMissing, target)
	if suggestions := home.Suggest(h.Root, h.Rel(target)); len(suggestions) > 0 {
		return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
	}
	return err
}
