package home

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/raphi011/wts/internal/log"
)

var (
	// ErrNotInHome is returned when no checkout exists at or above the start path.
	ErrNotInHome = errors.New("not inside a worktree home")

	// ErrNoMainCheckout is returned when a home has no subdirectory with a .git directory.
	ErrNoMainCheckout = errors.New("no main checkout found in worktree home")
)

// Home is a resolved worktree home.
type Home struct {
	// Root is the directory holding all checkouts.
	Root string
	// Main is the absolute path of the main checkout.
	Main string
}

// Find walks upward from start and returns the parent of the first
// checkout root it meets. Both main and sibling markers end the walk.
// ok is false when the filesystem root is reached without a marker.
func Find(ctx context.Context, start string) (root string, ok bool) {
	l := log.FromContext(ctx)

	dir, err := filepath.Abs(start)
	if err != nil {
		l.Debug("resolve: invalid start path", "path", start, "err", err)
		return "", false
	}

	for {
		kind := Classify(dir)
		l.Debug("resolve: inspect", "dir", dir, "marker", kind)
		if kind != KindNone {
			root = filepath.Dir(dir)
			l.Debug("resolve: found home", "root", root, "via", kind)
			return root, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			l.Debug("resolve: reached filesystem root", "dir", dir)
			return "", false
		}
		dir = parent
	}
}

// FindMain returns the first immediate subdirectory of root, in lexical
// order, whose marker is a directory.
func FindMain(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("failed to read worktree home %s: %w", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		p := filepath.Join(root, name)
		if Classify(p) == KindMain {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoMainCheckout, root)
}

// Resolve finds the home containing start and its main checkout.
func Resolve(ctx context.Context, start string) (*Home, error) {
	root, ok := Find(ctx, start)
	if !ok {
		return nil, ErrNotInHome
	}
	main, err := FindMain(root)
	if err != nil {
		return nil, err
	}
	return &Home{Root: root, Main: main}, nil
}

// Path resolves a user supplied checkout argument. Absolute paths are
// kept, anything else is taken relative to the home root.
func (h *Home) Path(arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(h.Root, arg)
}

// Rel returns p relative to the home root, or p itself when it lies elsewhere.
// The root maps to ".". Both paths are compared with symlinks resolved, so a
// home entered through a link still yields "main" for git's real paths.
func (h *Home) Rel(p string) string {
	rel, err := filepath.Rel(canonical(h.Root), canonical(p))
	if err != nil {
		return p
	}
	return rel
}
