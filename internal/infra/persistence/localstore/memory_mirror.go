package localstore

import (
	"context"
	"sync"
)

// memoryMirror implements Mirror on a plain map. It backs tests and the
// ":memory:"-style throwaway runs where durability is not wanted.
type memoryMirror struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryMirror returns an empty in-process Mirror.
func NewMemoryMirror() Mirror {
	return &memoryMirror{values: make(map[string][]byte)}
}

// Load returns the value stored under key, or (nil, nil) when absent.
func (m *memoryMirror) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, nil
	}

	copied := make([]byte, len(value))
	copy(copied, value)

	return copied, nil
}

// Save overwrites the value stored under key.
func (m *memoryMirror) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied

	return nil
}

// Delete removes key and its value.
func (m *memoryMirror) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}
