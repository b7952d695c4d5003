// Package credstore persists the bearer token for the current session.
package credstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds at most one opaque token per installation.
// Get returns "" with a nil error when no token is stored; callers that
// cannot act on a read error are expected to treat it like "absent".
type Store interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// File stores the token in a single file created with mode 0600.
// Concurrent reads are safe; writes are serialized.
type File struct {
	mu   sync.RWMutex
	path string
}

// NewFile creates a file-backed store at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get returns the stored token, or "" when none is stored.
func (f *File) Get() (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes the token, creating the parent directory if needed.
func (f *File) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0600)
}

// Delete removes the stored token. Deleting an absent token succeeds.
func (f *File) Delete() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
