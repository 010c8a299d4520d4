package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/wts/internal/config"
	"github.com/raphi011/wts/internal/git"
	"github.com/raphi011/wts/internal/lifecycle"
	"github.com/raphi011/wts/internal/log"
	"github.com/raphi011/wts/internal/output"
	"github.com/raphi011/wts/internal/ui/progress"
	"github.com/raphi011/wts/internal/ui/styles"
)

// app holds the state of a single invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// spinner is set when stderr is a terminal.
	spinner bool

	// Global flags
	verbose bool
	quiet   bool
}

// debugEnabled reports whether DEBUG or WTS_DEBUG is set.
func debugEnabled() bool {
	return os.Getenv("WTS_DEBUG") != "" || os.Getenv("DEBUG") != ""
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdout:  colorprofile.NewWriter(stdout, os.Environ()),
		stderr:  colorprofile.NewWriter(stderr, os.Environ()),
		spinner: progress.IsTerminal(stderr),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.stderr, styles.ErrorStyle.Render(err.Error()))
		fmt.Fprintln(a.stderr)
		fmt.Fprintln(a.stderr, "Run 'wts -h' for help")
		return 1
	}
	return 0
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wts",
		Short: "Manage a repository as a home of sibling worktrees",
		Long: `wts keeps one directory per branch next to each other under a
worktree home:

  acme.worktree/
    main/             main checkout (owns .git)
    feature__login/   sibling worktree on feature/login

Every command works from anywhere inside the home.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip git check for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}

			cmd.SetContext(a.setup(cmd.Context()))

			return git.CheckGit()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// -v is left free for the version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(a.newCloneCmd())
	rootCmd.AddCommand(a.newNewCmd())
	rootCmd.AddCommand(a.newDoneCmd())
	rootCmd.AddCommand(a.newListCmd())

	return rootCmd
}

// setup attaches the logger, printer and config resolver to ctx.
func (a *app) setup(ctx context.Context) context.Context {
	verbose := a.verbose || debugEnabled()

	// Create logger (stderr for diagnostics)
	logger := log.New(a.stderr, verbose, a.quiet)
	ctx = log.WithLogger(ctx, logger)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, a.stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("load config", err)
	}
	ctx = config.WithResolver(ctx, config.NewResolver(&cfg))

	if verbose || a.quiet {
		a.spinner = false
	}
	return ctx
}

// env returns the execution context for a lifecycle command rooted at the
// process working directory.
func (a *app) env() (*lifecycle.Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	env := lifecycle.NewEnv(cwd)
	if a.spinner {
		env.Progress = func(msg string) func() {
			s := progress.NewSpinner(msg, true)
			s.Start()
			return s.Stop
		}
	}
	return env, nil
}
