// Package prefs persists small user preferences as a JSON key/value file.
// The landing page only stores one key (the theme choice), but the store is
// generic over string pairs.
package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ThemeKey is the preference key holding "light" or "dark".
const ThemeKey = "theme"

// Store reads and writes preferences under a single JSON file. All methods
// are safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the given file path. The file and its parent
// directory are created lazily on the first Set.
func New(path string) *Store {
	return &Store{path: strings.TrimSpace(path)}
}

// Get returns the stored value for key. A missing file, unreadable payload,
// or absent key all report "not found"; preference reads degrade silently
// rather than failing startup.
func (s *Store) Get(key string) (string, bool) {
	if s == nil || s.path == "" || key == "" {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readLocked()
	if err != nil {
		return "", false
	}
	value, ok := values[key]
	return value, ok
}

// Set writes the key/value pair, preserving other stored keys.
func (s *Store) Set(key, value string) error {
	if s == nil || s.path == "" {
		return errors.New("prefs: store path is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("prefs: key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readLocked()
	if err != nil {
		values = make(map[string]string)
	}
	values[key] = value

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o644)
}

func (s *Store) readLocked() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
