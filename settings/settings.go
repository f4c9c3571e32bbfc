// Package settings holds the process-wide configuration, including the
// draft-generation API key persisted on disk. It is loaded once at startup
// and passed by reference; the key can be updated at runtime and the change
// is written back.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Config is the on-disk shape. An absent file means all defaults; a missing
// API key only disables draft-generation features.
type Config struct {
	APIKey      string `json:"api_key,omitempty"`
	Model       string `json:"model,omitempty"`
	BaseURL     string `json:"base_url,omitempty"`
	GitHubToken string `json:"github_token,omitempty"`
	ServerAddr  string `json:"server_addr,omitempty"`
}

// Store guards the live configuration and knows how to persist it.
type Store struct {
	mu   sync.RWMutex
	path string
	cfg  Config
}

// Load reads the config file at path. A missing file yields an empty
// config, not an error.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// HasAPIKey reports whether a draft-generation key is configured.
func (s *Store) HasAPIKey() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.APIKey != ""
}

// UpdateAPIKey replaces (or, with an empty key, removes) the stored
// draft-generation API key and persists the config.
func (s *Store) UpdateAPIKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.APIKey = key
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o600)
}
