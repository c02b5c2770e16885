// Package tokenfile persists the single auth-token slot as a file on disk,
// the only client-side persistence the application has. One token per login,
// overwritten by the next login, removed on logout.
package tokenfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"lastmile/internal/pkg/errs"
)

const fileMode = 0o600

// Store is a file-backed ports.TokenStore. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store persisting at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	return &Store{path: path}, nil
}

// Load returns the stored token, or an empty string when the slot is empty.
func (s *Store) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// Save overwrites the slot with token.
func (s *Store) Save(_ context.Context, token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(token), fileMode)
}

// Clear empties the slot. Clearing an already empty slot is not an error.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Memory is an in-memory ports.TokenStore used by tests and short-lived
// sessions that should not touch the filesystem.
type Memory struct {
	mu    sync.Mutex
	token string
}

// NewMemory creates an empty in-memory slot.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the stored token, empty when none is stored.
func (m *Memory) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// Save overwrites the slot.
func (m *Memory) Save(_ context.Context, token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear empties the slot.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
