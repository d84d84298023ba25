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
	Register(&InitCmd{})
}

// InitCmd implements the init command.
type InitCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *InitCmd) SetForce(force bool) {
	c.force = force
}

func (c *InitCmd) Name() string      { return "init" }
func (c *InitCmd) Aliases() []string { return nil }
func (c *InitCmd) Synopsis() string  { return "Write a settings file with the defaults" }
func (c *InitCmd) Usage() string     { return "daytrack init [--force]" }
func (c *InitCmd) NeedsStore() bool  { return false }

func (c *InitCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *InitCmd) Run(ctx context.Context, cfg *config.Config, trk *tracker.Tracker, args []string, out, errOut io.Writer) int {
	if cfg.HasSettings() && !c.force {
		fmt.Fprintf(errOut, "error: settings file already exists: %s (use --force to overwrite)\n", cfg.SettingsPath())
		return exitcode.UserError
	}

	if err := config.DefaultSettings().Save(cfg.SettingsPath()); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s\n", cfg.SettingsPath())
	}
	return exitcode.Success
}
