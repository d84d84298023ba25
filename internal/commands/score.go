package commands

import (
	"context"
	"flag"
	"io"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/output"
	"daytrack/internal/tracker"
)

func init() {
	Register(&ScoreCmd{})
}

// ScoreCmd implements the score command.
type ScoreCmd struct{}

func (c *ScoreCmd) Name() string      { return "score" }
func (c *ScoreCmd) Aliases() []string { return nil }
func (c *ScoreCmd) Synopsis() string  { return "Show today's score and the weekly average" }
func (c *ScoreCmd) Usage() string     { return "daytrack score" }
func (c *ScoreCmd) NeedsStore() bool  { return true }

func (c *ScoreCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ScoreCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	snap, err := trk.Snapshot(ctx)
	if err != nil {
		return reportError(errOut, err)
	}
	output.FormatScores(out, snap.Today, snap.Weekly)
	return exitcode.Success
}
