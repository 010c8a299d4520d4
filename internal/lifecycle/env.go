package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/wts/internal/config"
	"github.com/raphi011/wts/internal/home"
	"github.com/raphi011/wts/internal/log"
)

var (
	// ErrHomeExists is returned by Clone when the target home already exists.
	ErrHomeExists = errors.New("worktree home already exists")

	// ErrTargetMissing is returned by Done when the checkout to retire does not exist.
	ErrTargetMissing = errors.New("checkout does not exist")

	// ErrDirtyCheckout is returned by Done for uncommitted changes without force.
	ErrDirtyCheckout = errors.New("checkout has uncommitted changes")
)

// Env is the execution context of one command invocation.
type Env struct {
	// Cwd is the logical working directory. Done may move it to the main checkout.
	Cwd string

	// Chdir changes the real process working directory. Done calls it
	// exactly once, before removing a checkout that contains Cwd.
	Chdir func(dir string) error

	// Progress starts a progress indicator and returns a function that stops it.
	// Nil means no indicator.
	Progress func(msg string) (stop func())
}

// NewEnv returns an Env rooted at cwd that changes the real working directory.
func NewEnv(cwd string) *Env {
	return &Env{Cwd: cwd, Chdir: os.Chdir}
}

// relocate moves the logical and the real working directory to dir.
func (e *Env) relocate(ctx context.Context, dir string) error {
	log.FromContext(ctx).Debug("done: leaving checkout", "from", e.Cwd, "to", dir)
	if e.Chdir != nil {
		if err := e.Chdir(dir); err != nil {
			return fmt.Errorf("failed to change directory to %s: %w", dir, err)
		}
	}
	e.Cwd = dir
	return nil
}

// step runs fn while a progress indicator shows msg.
func (e *Env) step(msg string, fn func() error) error {
	if e.Progress == nil {
		return fn()
	}
	stop := e.Progress(msg)
	defer stop()
	return fn()
}

// Warning is a best-effort step that failed without failing the command.
type Warning struct {
	Step string
	Err  error
}

func (w Warning) Error() string {
	return w.Step + ": " + w.Err.Error()
}

func (w Warning) Unwrap() error {
	return w.Err
}

// warnings collects and logs best-effort failures.
type warnings []Warning

func (ws *warnings) add(ctx context.Context, step string, err error) {
	log.FromContext(ctx).Warn(step, err)
	*ws = append(*ws, Warning{Step: step, Err: err})
}

// resolve finds the home around cwd and its effective config.
func resolve(ctx context.Context, cwd string) (*home.Home, *config.Config, error) {
	h, err := home.Resolve(ctx, cwd)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.ResolverFromContext(ctx).ConfigForHome(h.Root)
	if err != nil {
		return nil, nil, err
	}
	return h, cfg, nil
}

// canonical resolves symlinks where possible.
func canonical(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(canonical(dir), canonical(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
