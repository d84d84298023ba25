package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"daytrack/internal/score"
	"daytrack/internal/tasks"
	"daytrack/internal/tracker"
)

// Settings are the user-tunable parameters read from settings.yaml.
type Settings struct {
	// Weight is the points awarded per checked task.
	Weight int `yaml:"weight"`

	// WeekStart names the first day of the averaging week (e.g. "sunday").
	WeekStart string `yaml:"week_start"`

	// PollInterval is how often watch and tui check for day rollover.
	PollInterval time.Duration `yaml:"poll_interval"`

	// SeedTasks replace the default checklist created on a new day.
	SeedTasks []string `yaml:"seed_tasks"`
}

// DefaultSettings returns Settings with defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Weight:       score.DefaultWeight,
		WeekStart:    "sunday",
		PollInterval: tracker.DefaultPollInterval,
		SeedTasks:    append([]string(nil), tasks.DefaultSeeds...),
	}
}

// LoadSettings reads settings from path over the defaults.
// A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings file: %w", err)
	}
	return settings, nil
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if _, err := score.ParseWeekday(s.WeekStart); err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	for i, text := range s.SeedTasks {
		if _, ok := tasks.NormalizeText(text); !ok {
			return fmt.Errorf("seed_tasks[%d] is blank", i)
		}
	}
	return nil
}

// WeekStartDay returns the parsed week start, Sunday if unparseable.
func (s Settings) WeekStartDay() time.Weekday {
	day, err := score.ParseWeekday(s.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return day
}

// Save writes the settings to path, creating the parent directory.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
