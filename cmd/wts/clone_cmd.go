package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wts/internal/lifecycle"
	"github.com/raphi011/wts/internal/log"
	"github.com/raphi011/wts/internal/output"
)

func (a *app) newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <source> [name]",
		Short: "Clone a repository into a new worktree home",
		Args:  cobra.RangeArgs(1, 2),
		Long: `Clone a repository into a new worktree home.

The home is created in the current directory as <repo>.worktree, or as
<name> when given. The source's default branch is cloned into the home
and becomes the main checkout. If the clone fails the home is removed again.

The main checkout path is printed on stdout.`,
		Example: `  wts clone https://github.com/acme/acme.git     # ./acme.worktree/main
  wts clone git@github.com:acme/acme.git work    # ./work/main
  cd "$(wts clone ../acme)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			opts := lifecycle.CloneOptions{Source: args[0]}
			if len(args) > 1 {
				opts.Name = args[1]
			}

			env, err := a.env()
			if err != nil {
				return err
			}

			res, err := lifecycle.Clone(ctx, env, opts)
			if err != nil {
				return err
			}

			l.Success("Cloned %s (%s) into %s", opts.Source, res.Branch, res.Home)
			out.Println(res.Main)
			return nil
		},
	}

	return cmd
}
