// Package cache persists analysis reports keyed by source content, so
// re-running the analyzer on an unchanged file skips recomputation.
package cache

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrKeyNotFound is returned when a key is not present in the store.
var ErrKeyNotFound = errors.New("key not found")

// Store is an in-memory key/value store with msgpack disk persistence.
// Values are msgpack-encoded on Set and decoded on Get, so callers can
// store any encodable type.
type Store struct {
	mu      sync.RWMutex
	path    string
	entries map[string][]byte
}

// Key derives a cache key for a source file from its path and content.
// Editing the file changes the key, so stale entries are never served.
func Key(path string, content []byte) string {
	h := fnv.New64a()
	h.Write(content)
	return fmt.Sprintf("%s#%016x", path, h.Sum64())
}

// Open loads the store persisted at path, or returns an empty store when
// the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: make(map[string][]byte)}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	defer f.Close()

	if err := s.load(f); err != nil {
		return nil, fmt.Errorf("loading cache %s: %w", path, err)
	}
	return s, nil
}

// Get decodes the value stored under key into v.
func (s *Store) Get(key string, v interface{}) error {
	s.mu.RLock()
	data, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding cache entry %s: %w", key, err)
	}
	return nil
}

// Set encodes v and stores it under key.
func (s *Store) Set(key string, v interface{}) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}

	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Save persists the store to its backing file, creating parent
// directories as needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating cache %s: %w", s.path, err)
	}
	defer f.Close()

	return s.save(f)
}

func (s *Store) save(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return msgpack.NewEncoder(w).Encode(s.entries)
}

func (s *Store) load(r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return msgpack.NewDecoder(r).Decode(&s.entries)
}
