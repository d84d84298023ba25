package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/output"
	"daytrack/internal/tracker"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `daytrack` (no args) and `daytrack list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Show the checklist and scores" }
func (c *ListCmd) Usage() string     { return "daytrack list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	snap, err := trk.Snapshot(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	if len(snap.Tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
	} else {
		output.FormatTaskList(out, snap.Tasks)
	}
	fmt.Fprintln(out, output.Separator)
	output.FormatScores(out, snap.Today, snap.Weekly)
	return exitcode.Success
}
