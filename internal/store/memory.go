package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory keeps collections in process memory. Used by tests and by the
// "memory" backend for throwaway runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(_ context.Context, key string, v any) error {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Corrupt payload reads as empty collection.
		return nil
	}
	return nil
}

func (m *Memory) Write(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
