package tracker

import "daytrack/internal/tasks"

// View receives rendered state from the Tracker.
// Implementations must not call back into the Tracker.
type View interface {
	RenderTaskList(list []tasks.Task)
	DisplayTodayScore(n int)
	DisplayWeeklyAverage(n int)
}

// NopView discards everything.
type NopView struct{}

func (NopView) RenderTaskList([]tasks.Task) {}
func (NopView) DisplayTodayScore(int)       {}
func (NopView) DisplayWeeklyAverage(int)    {}
