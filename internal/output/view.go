package output

import (
	"fmt"
	"io"
	"time"

	"daytrack/internal/tasks"
)

// TextView renders tracker updates as plain text, one block per update.
// It is used by watch mode.
type TextView struct {
	w     io.Writer
	clock func() time.Time
}

// NewTextView creates a TextView writing to w. clock stamps each block.
func NewTextView(w io.Writer, clock func() time.Time) *TextView {
	if clock == nil {
		clock = time.Now
	}
	return &TextView{w: w, clock: clock}
}

// RenderTaskList prints a timestamp header and the checklist.
func (v *TextView) RenderTaskList(list []tasks.Task) {
	fmt.Fprintln(v.w, Separator)
	fmt.Fprintln(v.w, v.clock().Format("2006-01-02 15:04"))
	fmt.Fprintln(v.w, Separator)
	FormatTaskList(v.w, list)
}

// DisplayTodayScore prints today's score.
func (v *TextView) DisplayTodayScore(n int) {
	fmt.Fprintf(v.w, "today: %d\n", n)
}

// DisplayWeeklyAverage prints the weekly average.
func (v *TextView) DisplayWeeklyAverage(n int) {
	fmt.Fprintf(v.w, "week:  %d\n", n)
}
