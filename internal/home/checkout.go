package home

import (
	"context"
	"path/filepath"

	"github.com/raphi011/wts/internal/git"
)

// Checkout is one worktree known to git.
type Checkout struct {
	Path     string `json:"path" yaml:"path"`
	Rel      string `json:"rel" yaml:"rel"`
	Branch   string `json:"branch" yaml:"branch"`
	Revision string `json:"revision" yaml:"revision"`
	Kind     Kind   `json:"kind" yaml:"kind"`
}

// IsMain reports whether c is the main checkout.
func (c Checkout) IsMain() bool {
	return c.Kind == KindMain
}

// List enumerates the checkouts of h in the order git reports them.
func List(ctx context.Context, h *Home) ([]Checkout, error) {
	entries, err := git.ListWorktrees(ctx, h.Main)
	if err != nil {
		return nil, err
	}

	checkouts := make([]Checkout, 0, len(entries))
	for _, e := range entries {
		checkouts = append(checkouts, Checkout{
			Path:     e.Path,
			Rel:      h.Rel(e.Path),
			Branch:   e.Branch,
			Revision: e.Revision,
			Kind:     Classify(e.Path),
		})
	}
	return checkouts, nil
}

// BranchOf returns the branch checked out at path. ok is false when git
// does not know the path or the listing fails.
func BranchOf(ctx context.Context, h *Home, path string) (branch string, ok bool) {
	checkouts, err := List(ctx, h)
	if err != nil {
		return "", false
	}
	want := canonical(path)
	for _, c := range checkouts {
		if canonical(c.Path) == want {
			return c.Branch, true
		}
	}
	return "", false
}

// canonical resolves symlinks so /tmp and /private/tmp compare equal.
// For a path that does not exist, the nearest existing parent is resolved.
func canonical(p string) string {
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	parent := filepath.Dir(p)
	if parent == p {
		return p
	}
	return filepath.Join(canonical(parent), filepath.Base(p))
}
