package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daytrack/internal/config"
)

func TestNew_ExplicitDirWithoutSettings(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "daytrack.db"), cfg.DatabasePath())
	assert.Equal(t, config.DefaultSettings(), cfg.Settings)
	assert.False(t, cfg.HasSettings())
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "daytrack"), config.DefaultConfigDir())
}

func TestLoadSettings_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFile)
	yml := `weight: 10
week_start: monday
poll_interval: 15m
seed_tasks:
  - Read
  - Run
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Weight)
	assert.Equal(t, time.Monday, s.WeekStartDay())
	assert.Equal(t, 15*time.Minute, s.PollInterval)
	assert.Equal(t, []string{"Read", "Run"}, s.SeedTasks)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("weight: 5\n"), 0600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Weight)
	assert.Equal(t, time.Sunday, s.WeekStartDay())
	assert.Equal(t, time.Hour, s.PollInterval)
	assert.Len(t, s.SeedTasks, 5)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "weight: [",
		"zero weight":   "weight: 0\n",
		"bad weekday":   "week_start: someday\n",
		"bad duration":  "poll_interval: soon\n",
		"blank seed":    "seed_tasks: ['ok', '  ']\n",
		"negative poll": "poll_interval: -1m\n",
	}
	for name, yml := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.SettingsFile)
			require.NoError(t, os.WriteFile(path, []byte(yml), 0600))

			_, err := config.LoadSettings(path)
			assert.Error(t, err)
		})
	}
}

func TestNew_InvalidSettingsFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("weight: -3\n"), 0600))

	_, err := config.New(dir)
	assert.Error(t, err)
}

func TestSettingsSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", config.SettingsFile)
	want := config.DefaultSettings()
	want.WeekStart = "monday"
	want.PollInterval = 30 * time.Minute

	require.NoError(t, want.Save(path))

	got, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
