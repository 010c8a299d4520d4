package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wts/internal/lifecycle"
	"github.com/raphi011/wts/internal/log"
	"github.com/raphi011/wts/internal/output"
)

func (a *app) newDoneCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "done [dir]",
		Short: "Remove a sibling checkout and its branch",
		Args:  cobra.MaximumNArgs(1),
		Long: `Remove a sibling checkout and delete its local branch.

Without dir, the checkout containing the current directory is removed.
dir may be absolute or relative to the worktree home. If the current
directory is inside the removed checkout, wts moves to the main checkout
first. The main checkout itself can never be removed.

Uncommitted changes abort the command unless --force is given. Untracked
files count too, including env files that new copied from the main
checkout: list them in .gitignore, or pass --force. Afterwards the main
checkout is fetched and fast-forwarded.

The main checkout path is printed on stdout.`,
		Example: `  wts done                   # Remove the current checkout
  wts done feature__login    # Remove a sibling by directory
  wts done hotfix -f         # Discard uncommitted changes
  cd "$(wts done)"`,
		ValidArgsFunction: completeSiblings,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			opts := lifecycle.DoneOptions{Force: force}
			if len(args) > 0 {
				opts.Dir = args[0]
			}

			env, err := a.env()
			if err != nil {
				return err
			}

			res, err := lifecycle.Done(ctx, env, opts)
			if err != nil {
				return err
			}

			l.Success("Removed %s", res.Path)
			if res.BranchDeleted {
				l.Success("Deleted branch %s", res.Branch)
			}

			if res.Relocated {
				l.Debug("done: working directory moved", "to", env.Cwd)
			}
			out.Println(res.Main)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")

	return cmd
}
