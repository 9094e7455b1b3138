// Package store persists small string values between runs.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/acm19/clippics/internal/logger"
	"github.com/spf13/viper"
)

// Store is a persisted string key/value store.
type Store interface {
	// Get returns the value of key, or "" if it is not set.
	Get(key string) string
	// Set stores value under key and writes the file.
	Set(key, value string) error
}

// fileStore keeps values in a JSON file.
type fileStore struct {
	path string
	v    *viper.Viper
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading state file %s: %w", path, err)
		}
		logger.Debug("State file not found, starting empty", "path", path)
	}
	return &fileStore{path: path, v: v}, nil
}

func (s *fileStore) Get(key string) string {
	return s.v.GetString(key)
}

func (s *fileStore) Set(key, value string) error {
	s.v.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}
	logger.Debug("Stored value", "key", key, "value", value)
	return nil
}
