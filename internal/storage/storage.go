// Package storage defines the backend-agnostic key-value interface that
// persists tracker state.
package storage

import (
	"context"
	"errors"
)

// Keys under which the tracker persists its state.
const (
	// KeyTasks holds the current checklist as a JSON array.
	KeyTasks = "tasks"

	// KeyDailyScores holds the score history as a JSON object.
	KeyDailyScores = "dailyScores"

	// KeyLastUpdate holds the date string of the most recent score save.
	KeyLastUpdate = "lastUpdate"
)

// ErrClosed is returned by stores that have been closed.
var ErrClosed = errors.New("store closed")

// Store is a durable, string-keyed store.
// All tracker persistence goes through this interface.
// Core packages never import a database driver directly.
type Store interface {
	// Get returns the value stored under key.
	// ok is false if the key has never been set or was deleted.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
