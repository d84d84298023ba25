package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/tracker"
	"daytrack/internal/tui"
)

func init() {
	Register(&TUICmd{})
}

// TUICmd implements the tui command.
type TUICmd struct {
	interval time.Duration
}

func (c *TUICmd) Name() string      { return "tui" }
func (c *TUICmd) Aliases() []string { return []string{"ui"} }
func (c *TUICmd) Synopsis() string  { return "Open the interactive checklist" }
func (c *TUICmd) Usage() string     { return "daytrack tui [--interval <d>]" }
func (c *TUICmd) NeedsStore() bool  { return true }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.interval, "interval", 0, "")
}

func (c *TUICmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	interval, code := pollInterval(cfg, c.interval, errOut)
	if code != exitcode.Success {
		return code
	}

	model := tui.New(ctx, trk, interval)
	if code := begin(ctx, trk, errOut); code != exitcode.Success {
		return code
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(out))

	g, gctx := errgroup.WithContext(ctx)
	if w := newWatcher(cfg, trk.Logger()); w != nil {
		g.Go(func() error {
			return w.Run(gctx, func() { p.Send(tui.RefreshMsg{}) })
		})
	}
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	err := g.Wait()
	if err != nil && !isShutdown(err) && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
