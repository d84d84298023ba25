// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sort"
	"sync"

	"daytrack/internal/storage"
)

// MemStore is an in-memory implementation of storage.Store for testing.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
	writes int

	// Error injection for testing
	GetErr    map[string]error // key -> error
	SetErr    map[string]error // key -> error
	DeleteErr error
}

var _ storage.Store = (*MemStore)(nil)

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		values: make(map[string]string),
		GetErr: make(map[string]error),
		SetErr: make(map[string]error),
	}
}

// Put seeds a raw value without counting it as a write.
func (m *MemStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Raw returns the stored value for key, bypassing error injection.
func (m *MemStore) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (m *MemStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Writes returns the number of successful Set and Delete calls.
func (m *MemStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Get implements storage.Store.
func (m *MemStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err, ok := m.GetErr[key]; ok && err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements storage.Store.
func (m *MemStore) Set(ctx context.Context, key, value string) error {
	if err, ok := m.SetErr[key]; ok && err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// Delete implements storage.Store.
func (m *MemStore) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.writes++
	return nil
}
