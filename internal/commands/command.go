// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/tasks"
	"daytrack/internal/tracker"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes tracker state.
	// Commands like help, version and init return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths, settings).
	// trk is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int
}

// begin loads the checklist and applies any pending day rollover.
// Returns a non-zero exit code after printing the error.
func begin(ctx context.Context, trk *tracker.Tracker, errOut io.Writer) int {
	if err := trk.Start(ctx); err != nil {
		return reportError(errOut, err)
	}
	return exitcode.Success
}

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	if errors.Is(err, tasks.ErrTaskNotFound) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}
