// Package tasks holds the daily checklist and its persistence.
package tasks

import (
	"errors"
	"fmt"
	"strings"
)

// Task is a single checklist item.
type Task struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// ErrTaskNotFound is returned when a task index is out of range.
var ErrTaskNotFound = errors.New("task not found")

// DefaultSeeds are the tasks a fresh or rolled-over checklist starts with.
var DefaultSeeds = []string{
	"Do squats every hour",
	"Study general AI",
	"Study app development",
	"Cook a meal",
	"Jump rope 50 times at sunset",
}

// Seed builds an unchecked task list from texts.
func Seed(texts []string) []Task {
	out := make([]Task, 0, len(texts))
	for _, text := range texts {
		out = append(out, Task{Text: text})
	}
	return out
}

// Toggle returns a copy of list with the task at index set to checked.
// A task that becomes checked moves to the end; unchecking leaves it in place.
// The relative order of every other task is preserved.
func Toggle(list []Task, index int, checked bool) ([]Task, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrTaskNotFound, index, len(list))
	}

	out := make([]Task, 0, len(list))
	t := list[index]
	t.Checked = checked

	if !checked {
		out = append(out, list...)
		out[index] = t
		return out, nil
	}

	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return append(out, t), nil
}

// NormalizeText trims text and reports whether anything is left.
func NormalizeText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	return text, text != ""
}

// CountChecked returns the number of checked tasks.
func CountChecked(list []Task) int {
	n := 0
	for _, t := range list {
		if t.Checked {
			n++
		}
	}
	return n
}
