// Package watch notices writes to the state database made by any process,
// so a long-running view can re-render when another daytrack command
// changes the checklist.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits after the last write before
// reporting a change. A single SQLite commit touches the database and its
// WAL file several times.
const DefaultDebounce = 200 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watcher watches the directory holding a database file.
type Watcher struct {
	fw       *fsnotify.Watcher
	base     string
	debounce time.Duration
	logger   *zap.Logger
}

// New starts watching the directory of dbPath. Only events on dbPath and
// its -wal/-journal siblings are reported.
func New(dbPath string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fw:       fw,
		base:     filepath.Base(dbPath),
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named("watch")
	w.logger.Debug("watching", zap.String("dir", dir), zap.String("file", w.base))
	return w, nil
}

// Run calls onChange once per burst of writes until ctx is cancelled, then
// releases the watcher. It returns ctx.Err().
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("database changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			timer.Reset(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	name := filepath.Base(ev.Name)
	switch strings.TrimPrefix(name, w.base) {
	case "", "-wal", "-journal":
		return strings.HasPrefix(name, w.base)
	}
	return false
}
