// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"daytrack/internal/score"
	"daytrack/internal/tasks"
)

const (
	// Separator is the rule printed between the checklist and the scores.
	Separator = "------------"
)

// FormatTask formats a checklist line.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces, box, text)
func FormatTask(w io.Writer, num int, task tasks.Task) {
	box := "[ ]"
	if task.Checked {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, normalizeText(task.Text))
}

// FormatTaskList formats every task numbered from 1.
func FormatTaskList(w io.Writer, list []tasks.Task) {
	for i, t := range list {
		FormatTask(w, i+1, t)
	}
}

// FormatScores formats today's score and the weekly average.
func FormatScores(w io.Writer, today, weekly int) {
	fmt.Fprintf(w, "today: %d\n", today)
	fmt.Fprintf(w, "week:  %d\n", weekly)
}

// FormatHistoryEntry formats one day of history.
// Format: "{DATE:<10}  {SCORE:>4}\n"
func FormatHistoryEntry(w io.Writer, e score.Entry) {
	fmt.Fprintf(w, "%-10s  %4d\n", e.Date, e.Score)
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
