// Package score derives daily scores from the checklist, keeps the per-day
// score history and detects day rollover.
package score

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"daytrack/internal/storage"
	"daytrack/internal/tasks"
)

// Engine computes and persists scores.
type Engine struct {
	kv        storage.Store
	tasks     *tasks.Store
	weight    int
	weekStart time.Weekday
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeight sets the points per checked task.
func WithWeight(weight int) Option {
	return func(e *Engine) { e.weight = weight }
}

// WithWeekStart sets the first day of the averaging week.
func WithWeekStart(day time.Weekday) Option {
	return func(e *Engine) { e.weekStart = day }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine reading task snapshots from taskStore.
// Defaults: DefaultWeight, Sunday week start, no-op logger.
func NewEngine(kv storage.Store, taskStore *tasks.Store, opts ...Option) *Engine {
	e := &Engine{
		kv:        kv,
		tasks:     taskStore,
		weight:    DefaultWeight,
		weekStart: time.Sunday,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("score")
	return e
}

// Weight returns the points per checked task.
func (e *Engine) Weight() int {
	return e.weight
}

// WeekStart returns the first day of the averaging week.
func (e *Engine) WeekStart() time.Weekday {
	return e.weekStart
}

// Score returns the score of a snapshot.
func (e *Engine) Score(list []tasks.Task) int {
	return ComputeScore(list, e.weight)
}

// History returns the persisted score history.
// Malformed history is logged and treated as empty.
func (e *Engine) History(ctx context.Context) (History, error) {
	raw, ok, err := e.kv.Get(ctx, storage.KeyDailyScores)
	if err != nil {
		return nil, fmt.Errorf("failed to load score history: %w", err)
	}
	h := History{}
	if !ok {
		return h, nil
	}
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		e.logger.Warn("discarding malformed score history", zap.Error(err))
		return History{}, nil
	}
	if h == nil {
		h = History{}
	}
	return h, nil
}

// RecordDailyScore computes today's score from the current checklist,
// overwrites history[today] and stamps the last-update marker.
func (e *Engine) RecordDailyScore(ctx context.Context, today time.Time) (int, error) {
	list, err := e.tasks.Load(ctx)
	if err != nil {
		return 0, err
	}
	score := e.Score(list)

	h, err := e.History(ctx)
	if err != nil {
		return 0, err
	}
	key := DateKey(today)
	h[key] = score

	data, err := json.Marshal(h)
	if err != nil {
		return 0, fmt.Errorf("failed to encode score history: %w", err)
	}
	if err := e.kv.Set(ctx, storage.KeyDailyScores, string(data)); err != nil {
		return 0, fmt.Errorf("failed to save score history: %w", err)
	}
	if err := e.MarkUpdated(ctx, today); err != nil {
		return 0, err
	}

	e.logger.Debug("recorded daily score", zap.String("date", key), zap.Int("score", score))
	return score, nil
}

// WeeklyAverage averages the history entries in [StartOfWeek(ref), ref].
func (e *Engine) WeeklyAverage(ctx context.Context, ref time.Time) (int, error) {
	h, err := e.History(ctx)
	if err != nil {
		return 0, err
	}
	total, count, invalid := h.Sum(StartOfWeek(ref, e.weekStart), ref)
	if len(invalid) > 0 {
		e.logger.Warn("skipping unparseable history keys", zap.Strings("keys", invalid))
	}
	return average(total, count), nil
}

// LastUpdate returns the last-update marker.
func (e *Engine) LastUpdate(ctx context.Context) (string, bool, error) {
	v, ok, err := e.kv.Get(ctx, storage.KeyLastUpdate)
	if err != nil {
		return "", false, fmt.Errorf("failed to load last update: %w", err)
	}
	return v, ok, nil
}

// MarkUpdated sets the last-update marker to day.
func (e *Engine) MarkUpdated(ctx context.Context, day time.Time) error {
	if err := e.kv.Set(ctx, storage.KeyLastUpdate, DateKey(day)); err != nil {
		return fmt.Errorf("failed to save last update: %w", err)
	}
	return nil
}

// CheckRollover reports whether now falls on a different day than the
// last-update marker. On a new day the checklist is cleared and re-seeded
// and the marker is moved to today. A missing marker is stamped without
// clearing anything.
func (e *Engine) CheckRollover(ctx context.Context, now time.Time) (bool, error) {
	last, ok, err := e.LastUpdate(ctx)
	if err != nil {
		return false, err
	}

	today := DateKey(now)
	if !ok {
		e.logger.Debug("no last-update marker, stamping", zap.String("date", today))
		return false, e.MarkUpdated(ctx, now)
	}
	if last == today {
		return false, nil
	}
	if d, err := ParseDateKey(last, now.Location()); err == nil && d.Equal(Midnight(now)) {
		return false, nil
	}

	if err := e.tasks.Clear(ctx); err != nil {
		return false, err
	}
	if _, err := e.tasks.Load(ctx); err != nil {
		return false, err
	}
	if err := e.MarkUpdated(ctx, now); err != nil {
		return false, err
	}

	e.logger.Info("day rolled over", zap.String("from", last), zap.String("to", today))
	return true, nil
}
