// Package cmd runs external commands on behalf of wts.
//
// Every git, installer, and shell invocation goes through [RunContext] or
// [OutputContext]. Both run the command in an explicit working directory,
// capture stdout and stderr, and log the command line with its duration when
// verbose logging is enabled.
//
// # Errors
//
// A non-zero exit returns [*Error]. Its message is the trimmed stderr of the
// command (falling back to the exit status), which keeps git's own wording
// intact when it is shown to the user:
//
//	out, err := cmd.OutputContext(ctx, repo, "git", "worktree", "list")
//	if err != nil {
//	    // err.Error() == "fatal: not a git repository ..."
//	}
//
// When the context is cancelled, the context error is returned instead so
// callers can tell an interrupt from a failed command.
//
// # Design Notes
//
// wts shells out to the git CLI rather than using a Go library for mutating
// operations. This keeps behavior identical to what users get in their shell
// (SSH keys, credential helpers, hooks).
package cmd
