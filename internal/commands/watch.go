package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/output"
	"daytrack/internal/tracker"
	"daytrack/internal/watch"
)

func init() {
	Register(&WatchCmd{})
}

// WatchCmd implements the watch command. It prints the checklist, then
// prints it again whenever the day rolls over or another process changes it.
type WatchCmd struct {
	interval time.Duration
}

// SetInterval sets the poll interval (for testing).
func (c *WatchCmd) SetInterval(d time.Duration) {
	c.interval = d
}

func (c *WatchCmd) Name() string      { return "watch" }
func (c *WatchCmd) Aliases() []string { return nil }
func (c *WatchCmd) Synopsis() string  { return "Print the checklist on every change" }
func (c *WatchCmd) Usage() string     { return "daytrack watch [--interval <d>]" }
func (c *WatchCmd) NeedsStore() bool  { return true }

func (c *WatchCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.interval, "interval", 0, "")
}

func (c *WatchCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	interval, code := pollInterval(cfg, c.interval, errOut)
	if code != exitcode.Success {
		return code
	}

	trk.SetView(output.NewTextView(out, trk.Now))
	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	logger := trk.Logger()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return trk.Run(gctx, interval)
	})
	if w := newWatcher(cfg, logger); w != nil {
		g.Go(func() error {
			return w.Run(gctx, func() {
				if err := trk.Refresh(gctx); err != nil {
					logger.Warn("refresh failed", zap.Error(err))
				}
			})
		})
	}

	if err := g.Wait(); err != nil && !isShutdown(err) {
		return reportError(errOut, err)
	}
	return exitcode.Success
}

// isShutdown reports whether err only signals that ctx ended.
func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// pollInterval returns flagValue, or the configured interval when unset.
func pollInterval(cfg *config.Config, flagValue time.Duration, errOut io.Writer) (time.Duration, int) {
	if flagValue < 0 {
		fmt.Fprintf(errOut, "error: invalid interval: %s\n", flagValue)
		return 0, exitcode.UserError
	}
	if flagValue > 0 {
		return flagValue, exitcode.Success
	}
	if cfg.Settings.PollInterval > 0 {
		return cfg.Settings.PollInterval, exitcode.Success
	}
	return tracker.DefaultPollInterval, exitcode.Success
}

// newWatcher watches the state database. Change notification is optional,
// so a failure is logged and nil returned.
func newWatcher(cfg *config.Config, logger *zap.Logger) *watch.Watcher {
	w, err := watch.New(cfg.DatabasePath(), watch.WithLogger(logger))
	if err != nil {
		logger.Warn("not watching for external changes", zap.Error(err))
		return nil
	}
	return w
}
