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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "daytrack help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	WriteHelp(out, DefaultRegistry)
	return exitcode.Success
}

// WriteHelp prints usage for every command in r.
func WriteHelp(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %-33s %s\n", "daytrack", "Show the checklist and scores")
	for _, cmd := range r.All() {
		fmt.Fprintf(w, "  %-33s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(w, commonFlags)
}

const commonFlags = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
