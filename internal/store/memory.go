package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store, used in tests and as a reference
// implementation of the Store contract.
type Memory struct {
	mu    sync.Mutex
	value string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *Memory) Set(ctx context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}
