package persistence

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-memory map
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get returns the value stored for key
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Copy so callers can't mutate the stored value
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Close releases store resources
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}
