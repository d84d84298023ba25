package score

import (
	"math"
	"sort"
	"time"

	"daytrack/internal/tasks"
)

// DefaultWeight is the points awarded per checked task.
const DefaultWeight = 20

// History maps a date key to that day's score.
type History map[string]int

// Entry is one day of history.
type Entry struct {
	Date  string
	Score int
}

// ComputeScore returns weight times the number of checked tasks.
func ComputeScore(list []tasks.Task, weight int) int {
	return weight * tasks.CountChecked(list)
}

// Sum totals the entries whose date falls in [from, to] at day granularity.
// Keys that cannot be parsed are returned in invalid and otherwise ignored.
func (h History) Sum(from, to time.Time) (total, count int, invalid []string) {
	from, to = Midnight(from), Midnight(to)
	for key, score := range h {
		d, err := ParseDateKey(key, from.Location())
		if err != nil {
			invalid = append(invalid, key)
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		total += score
		count++
	}
	sort.Strings(invalid)
	return total, count, invalid
}

// Between returns the entries whose date falls in [from, to].
func (h History) Between(from, to time.Time) History {
	from, to = Midnight(from), Midnight(to)
	out := make(History)
	for key, score := range h {
		d, err := ParseDateKey(key, from.Location())
		if err != nil || d.Before(from) || d.After(to) {
			continue
		}
		out[key] = score
	}
	return out
}

// Average returns round(total/count) over [from, to], or 0 when no entries match.
// Rounding is half away from zero.
func (h History) Average(from, to time.Time) int {
	total, count, _ := h.Sum(from, to)
	return average(total, count)
}

func average(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}

// Entries returns the history sorted newest first.
// Unparseable keys sort after every valid date.
func (h History) Entries(loc *time.Location) []Entry {
	out := make([]Entry, 0, len(h))
	for key, score := range h {
		out = append(out, Entry{Date: key, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		di, erri := ParseDateKey(out[i].Date, loc)
		dj, errj := ParseDateKey(out[j].Date, loc)
		switch {
		case erri != nil && errj != nil:
			return out[i].Date < out[j].Date
		case erri != nil:
			return false
		case errj != nil:
			return true
		case di.Equal(dj):
			return out[i].Date < out[j].Date
		}
		return di.After(dj)
	})
	return out
}
