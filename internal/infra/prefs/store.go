// Package prefs is a small file-backed key/value store standing in for
// browser localStorage: theme preference and similar cosmetic state, nothing
// authoritative.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"artify/config"

	"github.com/pkg/errors"
)

// ThemeKey is the single preference key the theme switcher persists under.
const ThemeKey = "artify-theme"

const prefsFile = "prefs.json"

// Store persists preferences as one JSON file under the configured path.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// NewStore is the constructor for the preference store. The backing file is
// loaded lazily; a missing file is an empty store.
func NewStore(cfg *config.Config) *Store {
	path := ".artify"
	if cfg.Prefs != nil && cfg.Prefs.Path != "" {
		path = cfg.Prefs.Path
	}

	return &Store{path: path}
}

// Get returns the stored value for key, or empty when unset.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", err
	}

	return s.values[key], nil
}

// Set stores the value and writes the file through.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	s.values[key] = value

	return s.flush()
}

// load reads the backing file once. Caller holds the mutex.
func (s *Store) load() error {
	if s.values != nil {
		return nil
	}

	s.values = make(map[string]string)
	raw, err := os.ReadFile(filepath.Join(s.path, prefsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrap(err, "failed to read preference file")
	}

	if err := json.Unmarshal(raw, &s.values); err != nil {
		return errors.Wrap(err, "preference file is corrupt")
	}

	return nil
}

// flush writes the preference map back. Caller holds the mutex.
func (s *Store) flush() error {
	if err := os.MkdirAll(s.path, 0o755); err != nil {
		return errors.Wrap(err, "failed to create preference directory")
	}

	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal preferences")
	}

	if err := os.WriteFile(filepath.Join(s.path, prefsFile), raw, 0o644); err != nil {
		return errors.Wrap(err, "failed to write preference file")
	}

	return nil
}
