package store

import (
	"context"
	"sync"
)

// Memory defines a public type used by authkit APIs.
//
// Memory keeps the refresh credential in process memory only. It satisfies
// [TokenStore] for tests and for sessions where the user declined the
// persist option.
type Memory struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save stores token, replacing any previous value.
func (m *Memory) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

// Load returns the stored token, reporting absence when nothing was saved.
func (m *Memory) Load(_ context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.set, nil
}

// Clear removes the stored token.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
