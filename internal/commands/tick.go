package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/tracker"
)

func init() {
	Register(&TickCmd{})
}

// TickCmd implements the tick command. It runs a single rollover check,
// the same one watch and tui run on every poll.
type TickCmd struct{}

func (c *TickCmd) Name() string      { return "tick" }
func (c *TickCmd) Aliases() []string { return nil }
func (c *TickCmd) Synopsis() string  { return "Reset the checklist if the day changed" }
func (c *TickCmd) Usage() string     { return "daytrack tick" }
func (c *TickCmd) NeedsStore() bool  { return true }

func (c *TickCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run skips begin so that the check it reports is the first one made.
func (c *TickCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	rolled, err := trk.Tick(ctx, trk.Now())
	if err != nil {
		return reportError(errOut, err)
	}

	if cfg.Quiet {
		return exitcode.Success
	}
	if rolled {
		fmt.Fprintln(out, "rolled over")
	} else {
		fmt.Fprintln(out, "same day")
	}
	return exitcode.Success
}
