package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/wts/internal/lifecycle"
	"github.com/raphi011/wts/internal/log"
	"github.com/raphi011/wts/internal/output"
)

func (a *app) newNewCmd() *cobra.Command {
	var (
		noPublish bool
		copyPath  bool
	)

	cmd := &cobra.Command{
		Use:   "new <branch> [dir]",
		Short: "Create a sibling checkout on a new branch",
		Args:  cobra.RangeArgs(1, 2),
		Long: `Create a sibling checkout on a new branch.

The checkout is created next to the main checkout. Its directory is the
branch name with "/" and ":" replaced by "__" unless dir is given.

After creating the checkout, wts pushes the branch to the remote (unless
--no-publish or publish = false), copies env files from the main checkout
and installs dependencies when a package.json is present. Failures in
these steps are reported as warnings.

The new checkout path is printed on stdout.`,
		Example: `  wts new feature/login             # ../feature__login
  wts new fix-42 hotfix             # ../hotfix
  wts new spike --no-publish
  cd "$(wts new feature/login)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			opts := lifecycle.NewOptions{
				Branch:    args[0],
				NoPublish: noPublish,
			}
			if len(args) > 1 {
				opts.Dir = args[1]
			}

			env, err := a.env()
			if err != nil {
				return err
			}

			res, err := lifecycle.New(ctx, env, opts)
			if err != nil {
				return err
			}

			l.Success("Created %s on branch %s", res.Path, res.Branch)
			if res.Published {
				l.Success("Published %s", res.Branch)
			}
			if len(res.EnvFiles) > 0 {
				l.Success("Copied %s", strings.Join(res.EnvFiles, ", "))
			}
			if res.Installed {
				l.Success("Installed dependencies")
			}

			if copyPath {
				if err := clipboard.WriteAll(res.Path); err != nil {
					l.Warn("copy path to clipboard", err)
				}
			}

			out.Println(res.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPublish, "no-publish", false, "Don't push the new branch to the remote")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the new checkout path to the clipboard")

	return cmd
}
