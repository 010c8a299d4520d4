package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/wts/internal/git"
	"github.com/raphi011/wts/internal/home"
	"github.com/raphi011/wts/internal/install"
	"github.com/raphi011/wts/internal/log"
	"github.com/raphi011/wts/internal/preserve"
	"github.com/raphi011/wts/internal/safety"
)

// NewOptions configures New.
type NewOptions struct {
	Branch string
	// Dir overrides the sibling directory, relative to the home root.
	Dir string
	// NoPublish skips pushing the branch regardless of config.
	NoPublish bool
}

// NewResult describes a created sibling checkout.
type NewResult struct {
	Path      string
	Branch    string
	Published bool
	EnvFiles  []string
	Installed bool
	Warnings  []Warning
}

// New creates a sibling checkout on a new branch.
func New(ctx context.Context, env *Env, opts NewOptions) (*NewResult, error) {
	branch := strings.TrimSpace(opts.Branch)
	if branch == "" {
		return nil, errors.New("branch name must not be empty")
	}

	h, cfg, err := resolve(ctx, env.Cwd)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = home.DirName(branch)
	}
	path := h.Path(dir)

	if err := safety.CheckBranch(ctx, h.Main, cfg.Remote, branch); err != nil {
		return nil, err
	}
	if err := safety.CheckDir(path); err != nil {
		return nil, err
	}

	res := &NewResult{Path: path, Branch: branch}
	var warns warnings

	err = env.step("Updating "+filepath.Base(h.Main), func() error {
		return git.PullFastForward(ctx, h.Main)
	})
	if err != nil {
		warns.add(ctx, "update main checkout", err)
	}

	if err := git.AddWorktree(ctx, h.Main, path, branch); err != nil {
		return nil, fmt.Errorf("failed to create worktree: %w", err)
	}
	log.FromContext(ctx).Debug("new: created", "path", path, "branch", branch)

	if cfg.Publish && !opts.NoPublish {
		err := env.step("Publishing "+branch, func() error {
			return git.Push(ctx, path, cfg.Remote, branch)
		})
		if err != nil {
			warns.add(ctx, "publish branch", err)
		} else {
			res.Published = true
		}
	}

	copied, err := preserve.CopyEnvFiles(ctx, cfg.Env.Files, h.Main, path)
	res.EnvFiles = copied
	if err != nil {
		warns.add(ctx, "copy env files", err)
	}

	err = env.step("Installing dependencies", func() error {
		ran, err := install.Run(ctx, cfg.Install, path)
		res.Installed = ran && err == nil
		return err
	})
	if err != nil {
		warns.add(ctx, "install dependencies", err)
	}

	res.Warnings = warns
	return res, nil
}
