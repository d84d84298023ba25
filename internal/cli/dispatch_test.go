package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"daytrack/internal/backend/sqlitestore"
	"daytrack/internal/cli"
	"daytrack/internal/commands"
	"daytrack/internal/config"
	"daytrack/internal/exitcode"
	"daytrack/internal/storage"
	"daytrack/internal/testutil"
)

// Thursday 2026-10-15.
var thursday = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

// testFactory creates a store factory that returns the given MemStore.
func testFactory(kv *testutil.MemStore) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
		return kv, nil
	}
}

func newDispatcher(kv *testutil.MemStore) *cli.Dispatcher {
	return cli.NewDispatcher(commands.DefaultRegistry, testFactory(kv),
		cli.WithClock(func() time.Time { return thursday }))
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	args = append(args, "--config", t.TempDir())
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewMemStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewMemStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, newDispatcher(testutil.NewMemStore()), "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, newDispatcher(testutil.NewMemStore()), "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "daytrack 0.1.0\n" {
		t.Errorf("expected 'daytrack 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewMemStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewMemStore())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsListsTasks(t *testing.T) {
	kv := testutil.NewMemStore()
	dispatcher := newDispatcher(kv)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "   1  [ ] Do squats every hour\n") {
		t.Errorf("expected default seed tasks, got %q", stdout.String())
	}
}

func TestDispatcher_SettingsApplied(t *testing.T) {
	dir := t.TempDir()
	settings := "weight: 10\nweek_start: monday\nseed_tasks:\n  - Stretch\n  - Write\n"
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(settings), 0600); err != nil {
		t.Fatal(err)
	}

	kv := testutil.NewMemStore()
	dispatcher := newDispatcher(kv)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"check", "--config", dir, "--quiet", "1"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr.String())
	}

	stdout.Reset()
	code = dispatcher.Run(context.Background(), []string{"list", "--config", dir}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ] Write\n   2  [x] Stretch\n------------\ntoday: 10\nweek:  10\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestDispatcher_InvalidSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("weight: -1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := newDispatcher(testutil.NewMemStore()).Run(context.Background(), []string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: config error: ") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
		return nil, errors.New("database is locked")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	stdout, stderr, code := run(t, dispatcher, "list")

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: storage error: database is locked\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestDispatcher_StoreNotOpenedForHelp(t *testing.T) {
	opened := false
	factory := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
		opened = true
		return testutil.NewMemStore(), nil
	}

	_, _, code := run(t, cli.NewDispatcher(commands.DefaultRegistry, factory), "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if opened {
		t.Error("version should not open the store")
	}
}

func TestDispatcher_SQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	factory := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
		return sqlitestore.Open(ctx, cfg.DatabasePath(), logger)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory,
		cli.WithClock(func() time.Time { return thursday }))

	var stdout, stderr bytes.Buffer
	for _, args := range [][]string{
		{"add", "--config", dir, "--quiet", "Stretch"},
		{"check", "--config", dir, "--quiet", "6"},
	} {
		if code := dispatcher.Run(context.Background(), args, &stdout, &stderr); code != exitcode.Success {
			t.Fatalf("%v: expected exit code %d, got %d (%s)", args, exitcode.Success, code, stderr.String())
		}
	}

	code := dispatcher.Run(context.Background(), []string{"history", "--config", dir}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "2026-10-15    20\n" {
		t.Errorf("unexpected history: %q", stdout.String())
	}
}
