// Package log provides context-aware logging for wts.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/raphi011/wts/internal/ui/styles"
)

type ctxKey struct{}

// Logger writes diagnostics (warnings, verbose command traces, debug output).
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger. Quiet suppresses all output and wins over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Warn reports a failed best-effort step.
func (l *Logger) Warn(step string, err error) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "%s %s: %v\n", styles.WarningStyle.Render("Warning:"), step, err)
}

// Success prints a confirmation line with a check mark.
func (l *Logger) Success(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", styles.SuccessStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Command logs an external command execution and returns a function that
// records its duration. Only prints when verbose.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s %s\n", line, styles.MutedStyle.Render("("+d.Round(time.Millisecond).String()+")"))
	}
}

// Debug prints a message with key=value pairs when verbose.
// A trailing key without value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, styles.MutedStyle.Render("debug: ")+b.String())
}

// IsVerbose returns true if verbose output is enabled and not silenced by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}
