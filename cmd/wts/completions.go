package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/wts/internal/home"
)

// completeSiblings completes the sibling directory names of the current home.
func completeSiblings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	root, ok := home.Find(context.Background(), cwd)
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range home.SiblingNames(root) {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}
