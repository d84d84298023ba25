// Package config handles the XDG configuration directory, file paths and
// user settings.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "daytrack"

	// DatabaseFile is the SQLite state database filename.
	DatabaseFile = "daytrack.db"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "settings.yaml"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Settings are the user settings loaded from SettingsFile.
	Settings Settings
}

// New creates a new Config with the default or specified config directory
// and loads settings from it.
// If configDir is empty, uses XDG_CONFIG_HOME/daytrack or $HOME/.config/daytrack.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	settings, err := LoadSettings(cfg.SettingsPath())
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DatabasePath returns the path to the state database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, DatabaseFile)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSettings checks if the settings file exists.
func (c *Config) HasSettings() bool {
	_, err := os.Stat(c.SettingsPath())
	return err == nil
}
