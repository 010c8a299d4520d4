package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/wts/internal/lifecycle"
	"github.com/raphi011/wts/internal/output"
	"github.com/raphi011/wts/internal/ui/static"
)

func (a *app) newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List the checkouts of the worktree home",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Long: `List the checkouts of the current worktree home.

The main checkout is marked with *. Paths are relative to the home.`,
		Example: `  wts list
  wts list --json | jq -r '.[].path'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			env, err := a.env()
			if err != nil {
				return err
			}

			_, checkouts, err := lifecycle.List(ctx, env)
			if err != nil {
				return err
			}

			switch {
			case jsonOutput:
				return out.JSON(checkouts)
			case yamlOutput:
				return out.YAML(checkouts)
			}

			out.Print(static.RenderCheckouts(checkouts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
