package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/output"
	"daytrack/internal/score"
	"daytrack/internal/tracker"
)

func init() {
	Register(&HistoryCmd{})
}

// HistoryCmd implements the history command.
type HistoryCmd struct {
	week bool
}

// SetWeek limits output to the current week (for testing).
func (c *HistoryCmd) SetWeek(week bool) {
	c.week = week
}

func (c *HistoryCmd) Name() string      { return "history" }
func (c *HistoryCmd) Aliases() []string { return nil }
func (c *HistoryCmd) Synopsis() string  { return "Show recorded daily scores" }
func (c *HistoryCmd) Usage() string     { return "daytrack history [--week]" }
func (c *HistoryCmd) NeedsStore() bool  { return true }

func (c *HistoryCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.week, "week", false, "")
	fs.BoolVar(&c.week, "w", false, "")
}

func (c *HistoryCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	hist, err := trk.History(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	now := trk.Now()
	if c.week {
		hist = hist.Between(score.StartOfWeek(now, trk.Engine().WeekStart()), now)
	}

	if len(hist) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no history")
		}
		return exitcode.Success
	}

	for _, e := range hist.Entries(now.Location()) {
		output.FormatHistoryEntry(out, e)
	}
	return exitcode.Success
}
