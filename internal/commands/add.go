package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/tracker"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "daytrack add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	// Blank text is dropped without complaint.
	added, err := trk.OnAdd(ctx, strings.Join(args, " "))
	if err != nil {
		return reportError(errOut, err)
	}

	if added && !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
