package memory

import (
	"context"
	"sync"

	"supportbot/internal/model/settings"
)

// SettingsStore holds the configuration record in process memory.
type SettingsStore struct {
	mu      sync.RWMutex
	current *settings.Settings
}

// NewSettingsStore returns a store preloaded with the supplied record, or an
// empty one when nil is passed (reads then report settings.ErrNotFound).
func NewSettingsStore(seed *settings.Settings) *SettingsStore {
	s := &SettingsStore{}
	if seed != nil {
		copied := *seed
		s.current = &copied
	}
	return s
}

// Get returns the stored record or settings.ErrNotFound.
func (s *SettingsStore) Get(_ context.Context) (settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return settings.Settings{}, settings.ErrNotFound
	}
	return *s.current, nil
}

// Update overwrites the record's mutable fields.
func (s *SettingsStore) Update(_ context.Context, cfg settings.Settings) (settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg.ID = 1
	s.current = &cfg
	return cfg, nil
}
