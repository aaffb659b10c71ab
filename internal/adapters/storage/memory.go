package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-process KV used by tests and throwaway runs. It is not
// durable across restarts. Error injection hooks let tests exercise the
// read-fallback and write-failure paths of the record layer.
type MemoryKV struct {
	mu       sync.RWMutex
	data     map[string]string
	readErr  error
	writeErr error
	closed   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// FailReads makes every subsequent Get return err. Pass nil to heal.
func (m *MemoryKV) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FailWrites makes every subsequent Set/Remove return err. Pass nil to heal.
func (m *MemoryKV) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// Get returns the value at key, or ErrNotFound.
func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", ErrClosed
	}
	if m.readErr != nil {
		return "", m.readErr
	}
	value, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set writes value at key.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[key] = value
	return nil
}

// Remove deletes the given keys.
func (m *MemoryKV) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.writeErr != nil {
		return m.writeErr
	}
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

// Close marks the store closed.
func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
