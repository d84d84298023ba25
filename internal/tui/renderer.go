package tui

import (
	"sync"

	"daytrack/internal/tasks"
	"daytrack/internal/tracker"
)

// Renderer is the tracker view used by the terminal UI. It keeps the most
// recent state pushed by the tracker; the model reads it after every
// tracker call.
type Renderer struct {
	mu   sync.Mutex
	snap tracker.Snapshot
}

// RenderTaskList stores a copy of the checklist.
func (r *Renderer) RenderTaskList(list []tasks.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Tasks = append([]tasks.Task(nil), list...)
}

// DisplayTodayScore stores today's score.
func (r *Renderer) DisplayTodayScore(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Today = n
}

// DisplayWeeklyAverage stores the weekly average.
func (r *Renderer) DisplayWeeklyAverage(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Weekly = n
}

// Latest returns the last rendered state.
func (r *Renderer) Latest() tracker.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.snap
	snap.Tasks = append([]tasks.Task(nil), r.snap.Tasks...)
	return snap
}
