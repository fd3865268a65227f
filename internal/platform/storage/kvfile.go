// Package storage provides a small file-backed key-value store used to
// persist settings and the signed-in user across restarts.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrKeyNotFound is returned by Get for keys that have never been set.
var ErrKeyNotFound = errors.New("key not found")

// FileStore is a JSON-file-backed key-value store. Values are raw JSON
// documents keyed by string. All operations are safe for concurrent use.
//
// Writes go through a temp file followed by a rename so a crash mid-write
// never leaves a truncated store on disk.
type FileStore struct {
	path string

	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewFileStore opens the store at path, creating parent directories as
// needed. A missing file yields an empty store; a corrupt file is an error.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	s := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return nil, fmt.Errorf("read store file: %w", err)
	}

	if len(raw) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}

	return s, nil
}

// Get unmarshals the value stored under key into dst.
// Returns ErrKeyNotFound if the key has never been set.
func (s *FileStore) Get(key string, dst any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal value for %s: %w", key, err)
	}

	return nil
}

// Set stores value under key and flushes the store to disk.
func (s *FileStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw

	return s.flushLocked()
}

// Delete removes key and flushes the store to disk.
// Deleting an absent key is not an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}

	delete(s.data, key)

	return s.flushLocked()
}

// Has reports whether key is present.
func (s *FileStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]

	return ok
}

// flushLocked writes the full store to disk. Callers must hold mu.
func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write store temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}
