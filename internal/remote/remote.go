// Package remote queries remote repositories without a local clone.
//
// Listing advertised references goes through go-git so no temporary
// repository is needed. All mutating operations stay in package git.
package remote

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/raphi011/wts/internal/log"
)

// ErrNoHead is returned when the remote does not advertise where HEAD points.
var ErrNoHead = errors.New("remote does not advertise a HEAD branch")

// DefaultBranch returns the branch that HEAD of url points to.
func DefaultBranch(ctx context.Context, url string) (string, error) {
	rem := gogit.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})

	refs, err := rem.ListContext(ctx, &gogit.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to list references of %s: %w", url, err)
	}

	branch, err := headBranch(refs)
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("remote: default branch", "url", url, "branch", branch)
	return branch, nil
}

// headBranch finds the symbolic HEAD among refs.
func headBranch(refs []*plumbing.Reference) (string, error) {
	for _, ref := range refs {
		if ref.Name() != plumbing.HEAD || ref.Type() != plumbing.SymbolicReference {
			continue
		}
		if target := ref.Target(); target.IsBranch() {
			return target.Short(), nil
		}
	}
	return "", ErrNoHead
}
