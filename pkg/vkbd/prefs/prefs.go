// Package prefs persists small key/value preferences such as the keyboard language.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var (
	ErrUnknownBackend = errors.New("unknown preference backend")
	ErrEmptyKey       = errors.New("preference key cannot be empty")
)

// Backend names a store implementation.
type Backend string

const (
	BackendTOML   Backend = "toml"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Store is a string key/value preference store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the store for backend at path. Memory stores ignore path.
func Open(ctx context.Context, backend Backend, path string, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch Backend(strings.ToLower(string(backend))) {
	case BackendTOML, "":
		store, err := NewFileStore(path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// OpenOrMemory is Open for sessions that must start anyway. When the store cannot be opened it
// logs a warning and returns a MemoryStore together with the open error.
func OpenOrMemory(ctx context.Context, backend Backend, path string, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := Open(ctx, backend, path, logger)
	if err != nil {
		logger.Warn("Preferences unavailable, keeping them in memory for this session",
			"backend", backend, "path", path, "error", err)
		return NewMemoryStore(), err
	}
	return store, nil
}

// MemoryStore keeps preferences for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
