package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"daytrack/internal/storage"
)

// Store persists the ordered checklist under storage.KeyTasks.
type Store struct {
	kv     storage.Store
	seeds  []string
	logger *zap.Logger
}

// NewStore creates a task store. Empty seeds fall back to DefaultSeeds.
func NewStore(kv storage.Store, seeds []string, logger *zap.Logger) *Store {
	if len(seeds) == 0 {
		seeds = DefaultSeeds
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		seeds:  append([]string(nil), seeds...),
		logger: logger.Named("tasks"),
	}
}

// Load returns the persisted checklist.
// When nothing usable is persisted (missing key, JSON null or undecodable
// data) the seed tasks are persisted and returned.
func (s *Store) Load(ctx context.Context) ([]Task, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeyTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	if ok {
		var list []Task
		switch err := json.Unmarshal([]byte(raw), &list); {
		case err != nil:
			s.logger.Warn("discarding malformed task list", zap.Error(err))
		case list == nil && raw == "null":
			// null is treated the same as a missing key
		default:
			if list == nil {
				list = []Task{}
			}
			return list, nil
		}
	}

	list := Seed(s.seeds)
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	s.logger.Debug("seeded task list", zap.Int("count", len(list)))
	return list, nil
}

// Save overwrites the persisted checklist.
func (s *Store) Save(ctx context.Context, list []Task) error {
	if list == nil {
		list = []Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyTasks, string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// Toggle sets the completion flag of the task at index and saves.
// See the package-level Toggle for ordering rules.
func (s *Store) Toggle(ctx context.Context, index int, checked bool) ([]Task, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	list, err = Toggle(list, index, checked)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Add appends an unchecked task. Text that is empty after trimming is
// ignored: added is false and nothing is written.
func (s *Store) Add(ctx context.Context, text string) (list []Task, added bool, err error) {
	list, err = s.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	text, ok := NormalizeText(text)
	if !ok {
		return list, false, nil
	}

	list = append(list, Task{Text: text})
	if err := s.Save(ctx, list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// Clear removes the persisted checklist.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyTasks); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	return nil
}
