// Package tracker ties the task store and score engine together behind one
// owner. Every read and mutation of tracker state goes through a Tracker,
// which serialises them with a mutex so the polling loop and user commands
// can run concurrently.
package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"daytrack/internal/score"
	"daytrack/internal/storage"
	"daytrack/internal/tasks"
)

// DefaultPollInterval is how often Run checks for day rollover.
const DefaultPollInterval = time.Hour

// Options configures a Tracker. Zero values select defaults.
type Options struct {
	Weight    int
	WeekStart time.Weekday
	Seeds     []string
	Logger    *zap.Logger
	Clock     func() time.Time
	View      View
}

// Snapshot is the state shown to the user.
type Snapshot struct {
	Tasks  []tasks.Task
	Today  int
	Weekly int
}

// Tracker is the application context.
type Tracker struct {
	mu     sync.Mutex
	tasks  *tasks.Store
	engine *score.Engine
	view   View
	clock  func() time.Time
	logger *zap.Logger
}

// New creates a Tracker over kv.
func New(kv storage.Store, opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	weight := opts.Weight
	if weight <= 0 {
		weight = score.DefaultWeight
	}
	view := opts.View
	if view == nil {
		view = NopView{}
	}

	ts := tasks.NewStore(kv, opts.Seeds, logger)
	return &Tracker{
		tasks: ts,
		engine: score.NewEngine(kv, ts,
			score.WithWeight(weight),
			score.WithWeekStart(opts.WeekStart),
			score.WithLogger(logger),
		),
		view:   view,
		clock:  clock,
		logger: logger.Named("tracker"),
	}
}

// Now returns the current instant from the tracker's clock.
func (t *Tracker) Now() time.Time {
	return t.clock()
}

// Logger returns the tracker's logger.
func (t *Tracker) Logger() *zap.Logger {
	return t.logger
}

// Engine returns the score engine.
func (t *Tracker) Engine() *score.Engine {
	return t.engine
}

// SetView replaces the view. A nil view disables rendering.
func (t *Tracker) SetView(v View) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v == nil {
		v = NopView{}
	}
	t.view = v
}

// Start loads the checklist, runs a rollover check for the current instant
// and renders.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.tasks.Load(ctx); err != nil {
		return err
	}
	if _, err := t.engine.CheckRollover(ctx, t.clock()); err != nil {
		return err
	}
	return t.refreshLocked(ctx)
}

// OnToggle sets the completion flag of the task at index (0-based), records
// today's score and renders.
func (t *Tracker) OnToggle(ctx context.Context, index int, checked bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.tasks.Toggle(ctx, index, checked); err != nil {
		return err
	}
	if _, err := t.engine.RecordDailyScore(ctx, t.clock()); err != nil {
		return err
	}
	t.logger.Debug("task toggled", zap.Int("index", index), zap.Bool("checked", checked))
	return t.refreshLocked(ctx)
}

// OnAdd appends a task. Blank text is ignored and reported as not added.
func (t *Tracker) OnAdd(ctx context.Context, text string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, added, err := t.tasks.Add(ctx, text)
	if err != nil || !added {
		return false, err
	}
	if _, err := t.engine.RecordDailyScore(ctx, t.clock()); err != nil {
		return false, err
	}
	t.logger.Debug("task added")
	return true, t.refreshLocked(ctx)
}

// Tick runs the rollover check for now and renders when the day changed.
func (t *Tracker) Tick(ctx context.Context, now time.Time) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rolled, err := t.engine.CheckRollover(ctx, now)
	if err != nil || !rolled {
		return false, err
	}
	return true, t.refreshLocked(ctx)
}

// Refresh re-reads persisted state and renders it.
func (t *Tracker) Refresh(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refreshLocked(ctx)
}

// Snapshot returns the checklist, today's score and the weekly average.
func (t *Tracker) Snapshot(ctx context.Context) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(ctx)
}

// History returns the score history.
func (t *Tracker) History(ctx context.Context) (score.History, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.History(ctx)
}

func (t *Tracker) snapshotLocked(ctx context.Context) (Snapshot, error) {
	list, err := t.tasks.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	weekly, err := t.engine.WeeklyAverage(ctx, t.clock())
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Tasks:  list,
		Today:  t.engine.Score(list),
		Weekly: weekly,
	}, nil
}

func (t *Tracker) refreshLocked(ctx context.Context) error {
	snap, err := t.snapshotLocked(ctx)
	if err != nil {
		return err
	}
	t.view.RenderTaskList(snap.Tasks)
	t.view.DisplayTodayScore(snap.Today)
	t.view.DisplayWeeklyAverage(snap.Weekly)
	return nil
}
