package tracker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"daytrack/internal/storage"
	"daytrack/internal/tasks"
	"daytrack/internal/testutil"
	"daytrack/internal/tracker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingView captures the last values rendered.
type recordingView struct {
	mu      sync.Mutex
	renders int
	tasks   []tasks.Task
	today   int
	weekly  int
}

func (v *recordingView) RenderTaskList(list []tasks.Task) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renders++
	v.tasks = list
}

func (v *recordingView) DisplayTodayScore(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.today = n
}

func (v *recordingView) DisplayWeeklyAverage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.weekly = n
}

func (v *recordingView) Renders() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renders
}

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Thursday 2026-10-15.
var thursday = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func newTracker(t *testing.T, kv *testutil.MemStore) (*tracker.Tracker, *recordingView, *fakeClock) {
	t.Helper()
	view := &recordingView{}
	clock := &fakeClock{now: thursday}
	trk := tracker.New(kv, tracker.Options{
		Logger: zaptest.NewLogger(t),
		Clock:  clock.Now,
		View:   view,
	})
	return trk, view, clock
}

func TestStart_SeedsAndRenders(t *testing.T) {
	kv := testutil.NewMemStore()
	trk, view, _ := newTracker(t, kv)

	require.NoError(t, trk.Start(context.Background()))

	assert.Equal(t, 1, view.Renders())
	assert.Len(t, view.tasks, 5)
	assert.Zero(t, view.today)
	assert.Zero(t, view.weekly)

	marker, _ := kv.Raw(storage.KeyLastUpdate)
	assert.Equal(t, "2026-10-15", marker)
}

func TestStart_RollsOverStaleChecklist(t *testing.T) {
	kv := testutil.NewMemStore()
	kv.Put(storage.KeyLastUpdate, "2026-10-14")
	kv.Put(storage.KeyTasks, `[{"text":"yesterday","checked":true}]`)
	trk, view, _ := newTracker(t, kv)

	require.NoError(t, trk.Start(context.Background()))
	assert.Equal(t, tasks.Seed(tasks.DefaultSeeds), view.tasks)
}

func TestOnToggle_RecordsScore(t *testing.T) {
	kv := testutil.NewMemStore()
	kv.Put(storage.KeyDailyScores, `{"2026-10-12":60}`)
	trk, view, _ := newTracker(t, kv)
	ctx := context.Background()
	require.NoError(t, trk.Start(ctx))

	require.NoError(t, trk.OnToggle(ctx, 1, true))

	assert.Equal(t, 20, view.today)
	assert.Equal(t, 40, view.weekly) // (60 + 20) / 2
	assert.Equal(t, tasks.Task{Text: "Study general AI", Checked: true}, view.tasks[4])

	raw, _ := kv.Raw(storage.KeyDailyScores)
	assert.JSONEq(t, `{"2026-10-12":60,"2026-10-15":20}`, raw)
}

func TestOnToggle_OutOfRange(t *testing.T) {
	trk, view, _ := newTracker(t, testutil.NewMemStore())

	err := trk.OnToggle(context.Background(), 9, true)
	assert.ErrorIs(t, err, tasks.ErrTaskNotFound)
	assert.Zero(t, view.Renders())
}

func TestOnAdd(t *testing.T) {
	kv := testutil.NewMemStore()
	trk, view, _ := newTracker(t, kv)
	ctx := context.Background()

	added, err := trk.OnAdd(ctx, "  Stretch  ")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, tasks.Task{Text: "Stretch"}, view.tasks[len(view.tasks)-1])

	raw, ok := kv.Raw(storage.KeyDailyScores)
	require.True(t, ok)
	assert.JSONEq(t, `{"2026-10-15":0}`, raw)
}

func TestOnAdd_BlankIsIgnored(t *testing.T) {
	kv := testutil.NewMemStore()
	trk, view, _ := newTracker(t, kv)

	added, err := trk.OnAdd(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Zero(t, view.Renders())

	_, ok := kv.Raw(storage.KeyDailyScores)
	assert.False(t, ok)
}

func TestTick(t *testing.T) {
	kv := testutil.NewMemStore()
	trk, view, clock := newTracker(t, kv)
	ctx := context.Background()
	require.NoError(t, trk.Start(ctx))
	require.NoError(t, trk.OnToggle(ctx, 0, true))
	renders := view.Renders()

	rolled, err := trk.Tick(ctx, clock.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, rolled)
	assert.Equal(t, renders, view.Renders())

	friday := thursday.Add(24 * time.Hour)
	clock.Set(friday)
	rolled, err = trk.Tick(ctx, friday)
	require.NoError(t, err)
	assert.True(t, rolled)
	assert.Equal(t, renders+1, view.Renders())
	assert.Zero(t, view.today)
	assert.Equal(t, 20, view.weekly, "thursday's score still counts this week")
}

func TestTick_StorageError(t *testing.T) {
	kv := testutil.NewMemStore()
	boom := errors.New("unavailable")
	kv.GetErr[storage.KeyLastUpdate] = boom
	trk, _, _ := newTracker(t, kv)

	_, err := trk.Tick(context.Background(), thursday)
	assert.ErrorIs(t, err, boom)
}

func TestSnapshot(t *testing.T) {
	kv := testutil.NewMemStore()
	kv.Put(storage.KeyTasks, `[{"text":"a","checked":true},{"text":"b","checked":true},{"text":"c","checked":false}]`)
	kv.Put(storage.KeyDailyScores, `{"2026-10-13":20,"2026-10-15":40}`)
	trk, _, _ := newTracker(t, kv)

	snap, err := trk.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Tasks, 3)
	assert.Equal(t, 40, snap.Today)
	assert.Equal(t, 30, snap.Weekly)
}

func TestNew_CustomWeightAndSeeds(t *testing.T) {
	kv := testutil.NewMemStore()
	trk := tracker.New(kv, tracker.Options{
		Weight: 25,
		Seeds:  []string{"one", "two"},
		Clock:  func() time.Time { return thursday },
	})
	ctx := context.Background()

	require.NoError(t, trk.OnToggle(ctx, 0, true))
	snap, err := trk.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []tasks.Task{{Text: "two"}, {Text: "one", Checked: true}}, snap.Tasks)
	assert.Equal(t, 25, snap.Today)
	assert.Equal(t, 25, trk.Engine().Weight())
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	kv := testutil.NewMemStore()
	kv.Put(storage.KeyLastUpdate, "2026-10-14")
	kv.Put(storage.KeyTasks, `[{"text":"stale","checked":true}]`)
	trk, view, _ := newTracker(t, kv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- trk.Run(ctx, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return view.Renders() > 0 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	marker, _ := kv.Raw(storage.KeyLastUpdate)
	assert.Equal(t, "2026-10-15", marker)
}

func TestRun_ConcurrentCommands(t *testing.T) {
	kv := testutil.NewMemStore()
	trk, _, _ := newTracker(t, kv)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, trk.Start(ctx))

	done := make(chan error, 1)
	go func() { done <- trk.Run(ctx, time.Millisecond) }()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = trk.OnAdd(ctx, "task")
		}()
	}
	wg.Wait()
	cancel()
	<-done

	snap, err := trk.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Tasks, 15)
}
