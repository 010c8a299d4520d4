package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/wts/internal/config"
	"github.com/raphi011/wts/internal/git"
	"github.com/raphi011/wts/internal/home"
	"github.com/raphi011/wts/internal/install"
	"github.com/raphi011/wts/internal/log"
	"github.com/raphi011/wts/internal/remote"
)

// HomeSuffix is appended to the repository name when no home name is given.
const HomeSuffix = ".worktree"

// CloneOptions configures Clone.
type CloneOptions struct {
	Source string
	// Name is the home directory, used verbatim. Empty derives <repo>.worktree.
	Name string
}

// CloneResult describes a bootstrapped worktree home.
type CloneResult struct {
	Home      string
	Main      string
	Branch    string
	Installed bool
	Warnings  []Warning
}

// Clone creates a worktree home and clones source's default branch into it.
// A failed clone removes the home again.
func Clone(ctx context.Context, env *Env, opts CloneOptions) (*CloneResult, error) {
	name := opts.Name
	if name == "" {
		repo := git.ExtractRepoNameFromURL(opts.Source)
		if repo == "" || repo == "." || repo == ".." {
			return nil, fmt.Errorf("cannot derive a repository name from %q, pass one explicitly", opts.Source)
		}
		name = repo + HomeSuffix
	}

	root := name
	if !filepath.IsAbs(root) {
		root = filepath.Join(env.Cwd, name)
	}

	if _, err := os.Lstat(root); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrHomeExists, root)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to check %s: %w", root, err)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create worktree home: %w", err)
	}

	res := &CloneResult{Home: root}
	var warns warnings

	cfg := config.ResolverFromContext(ctx).Global()
	branch := defaultBranch(ctx, opts.Source, cfg.DefaultBranch, &warns)

	res.Branch = branch
	res.Main = filepath.Join(root, home.DirName(branch))

	err := env.step("Cloning "+opts.Source, func() error {
		return git.Clone(ctx, opts.Source, res.Main)
	})
	if err != nil {
		if rmErr := os.RemoveAll(root); rmErr != nil {
			log.FromContext(ctx).Warn("roll back worktree home", rmErr)
		}
		return nil, err
	}

	err = env.step("Installing dependencies", func() error {
		ran, err := install.Run(ctx, cfg.Install, res.Main)
		res.Installed = ran && err == nil
		return err
	})
	if err != nil {
		warns.add(ctx, "install dependencies", err)
	}

	res.Warnings = warns
	return res, nil
}

// defaultBranch asks the remote for HEAD through go-git, then through
// git ls-remote, and finally falls back to the configured name.
func defaultBranch(ctx context.Context, source, fallback string, warns *warnings) string {
	l := log.FromContext(ctx)

	branch, err := remote.DefaultBranch(ctx, source)
	if err == nil {
		return branch
	}
	l.Debug("clone: go-git listing failed", "err", err)

	branch, lsErr := git.LsRemoteDefaultBranch(ctx, source)
	if lsErr == nil {
		return branch
	}

	warns.add(ctx, "detect default branch", fmt.Errorf("%w, using %q", lsErr, fallback))
	return fallback
}
