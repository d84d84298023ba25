package tasks

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(list []Task) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Text
		if t.Checked {
			out[i] += "*"
		}
	}
	return out
}

func TestToggle(t *testing.T) {
	base := []Task{{Text: "a"}, {Text: "b"}, {Text: "c", Checked: true}, {Text: "d"}}

	tests := []struct {
		name    string
		index   int
		checked bool
		want    []string
	}{
		{"check first moves to end", 0, true, []string{"b", "c*", "d", "a*"}},
		{"check last stays last", 3, true, []string{"a", "b", "c*", "d*"}},
		{"uncheck stays in place", 2, false, []string{"a", "b", "c", "d"}},
		{"recheck checked moves to end", 2, true, []string{"a", "b", "d", "c*"}},
		{"uncheck unchecked is a no-op", 1, false, []string{"a", "b", "c*", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Toggle(base, tt.index, tt.checked)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if diff := cmp.Diff([]string{"a", "b", "c*", "d"}, names(base)); diff != "" {
		t.Errorf("input was mutated (-want +got):\n%s", diff)
	}
}

func TestToggle_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 2, 10} {
		_, err := Toggle([]Task{{Text: "a"}, {Text: "b"}}, index, true)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("index %d: expected ErrTaskNotFound, got %v", index, err)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	if got, ok := NormalizeText("  hi  "); !ok || got != "hi" {
		t.Errorf("expected (hi, true), got (%q, %v)", got, ok)
	}
	if _, ok := NormalizeText(" \t "); ok {
		t.Error("expected blank text to be rejected")
	}
}

func TestCountChecked(t *testing.T) {
	list := []Task{{Text: "a", Checked: true}, {Text: "b"}, {Text: "c", Checked: true}}
	if n := CountChecked(list); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}
