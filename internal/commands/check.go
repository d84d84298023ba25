package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/tracker"
)

func init() {
	Register(&CheckCmd{})
	Register(&UncheckCmd{})
}

// CheckCmd implements the check command.
type CheckCmd struct{}

func (c *CheckCmd) Name() string      { return "check" }
func (c *CheckCmd) Aliases() []string { return []string{"done"} }
func (c *CheckCmd) Synopsis() string  { return "Mark tasks done" }
func (c *CheckCmd) Usage() string     { return "daytrack check <n...>" }
func (c *CheckCmd) NeedsStore() bool  { return true }

func (c *CheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CheckCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	return runToggle(ctx, cfg, trk, args, true, out, errOut)
}

// UncheckCmd implements the uncheck command.
type UncheckCmd struct{}

func (c *UncheckCmd) Name() string      { return "uncheck" }
func (c *UncheckCmd) Aliases() []string { return []string{"undo"} }
func (c *UncheckCmd) Synopsis() string  { return "Mark tasks not done" }
func (c *UncheckCmd) Usage() string     { return "daytrack uncheck <n...>" }
func (c *UncheckCmd) NeedsStore() bool  { return true }

func (c *UncheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UncheckCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	return runToggle(ctx, cfg, trk, args, false, out, errOut)
}

// runToggle is the shared implementation for check and uncheck.
// Every reference is validated against the current list before anything
// is written.
func runToggle(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, checked bool, out, errOut io.Writer) int {
	nums, err := ParseTaskNums(args)
	if err != nil {
		if errors.Is(err, ErrTaskRefRequired) {
			fmt.Fprintln(errOut, "error: task reference required")
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	snap, err := trk.Snapshot(ctx)
	if err != nil {
		return reportError(errOut, err)
	}
	for _, n := range nums {
		if n > len(snap.Tasks) {
			fmt.Fprintf(errOut, "error: task number out of range: %d\n", n)
			return exitcode.UserError
		}
	}

	indexes := make([]int, len(nums))
	if checked {
		indexes = checkIndexes(nums)
	} else {
		for i, n := range nums {
			indexes[i] = n - 1
		}
	}

	for _, idx := range indexes {
		if err := trk.OnToggle(ctx, idx, checked); err != nil {
			return reportError(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
