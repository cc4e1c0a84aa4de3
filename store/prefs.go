package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Prefs defines a public type used by authkit APIs.
//
// Prefs is the general (non-secret) device storage for small boolean
// settings such as [KeyPersist] and [KeyDarkMode]. Values are JSON-encoded
// into a single file; every write rewrites the file atomically. Secrets
// never go here — the refresh credential has its own encrypted store.
type Prefs struct {
	mu   sync.Mutex
	path string
}

// NewPrefs returns a preference store rooted at path.
func NewPrefs(path string) *Prefs {
	return &Prefs{path: path}
}

// SetBool stores value under key.
func (p *Prefs) SetBool(_ context.Context, key string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefs, err := p.read()
	if err != nil {
		return err
	}
	prefs[key] = value
	return p.write(prefs)
}

// Bool returns the value stored under key, reporting absence when the key
// was never set.
func (p *Prefs) Bool(_ context.Context, key string) (bool, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefs, err := p.read()
	if err != nil {
		return false, false, err
	}
	value, ok := prefs[key]
	return value, ok, nil
}

func (p *Prefs) read() (map[string]bool, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}

	prefs := map[string]bool{}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	return prefs, nil
}

func (p *Prefs) write(prefs map[string]bool) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("create prefs directory: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit prefs: %w", err)
	}
	return nil
}
