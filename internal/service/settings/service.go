package settings

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"supportbot/internal/cache"
	settingsmodel "supportbot/internal/model/settings"
)

const cacheKey = "supportbot:settings"

// Cache is the subset of the redis client the service uses. A miss is
// reported as cache.ErrCacheMiss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Service reads and updates the bot configuration. With a cache client it
// behaves as a read-through cache invalidated on update; without one it is
// a plain pass-through. The chat endpoint reads settings on every turn, so
// the cache saves one store round-trip per message.
type Service struct {
	store settingsmodel.Store
	cache Cache
	ttl   time.Duration
}

// NewService wires the settings service. cacheClient may be nil.
func NewService(store settingsmodel.Store, cacheClient Cache, ttl time.Duration) *Service {
	return &Service{
		store: store,
		cache: cacheClient,
		ttl:   ttl,
	}
}

// Get returns the current settings record. Cache failures degrade to a
// direct store read.
func (s *Service) Get(ctx context.Context) (settingsmodel.Settings, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var cfg settingsmodel.Settings
			if err := json.Unmarshal([]byte(raw), &cfg); err == nil {
				return cfg, nil
			}
			log.Printf("[settings] dropping undecodable cache entry: %v", err)
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("[settings] cache read failed: %v", err)
		}
	}

	cfg, err := s.store.Get(ctx)
	if err != nil {
		return settingsmodel.Settings{}, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(cfg); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
				log.Printf("[settings] cache write failed: %v", err)
			}
		}
	}
	return cfg, nil
}

// Update overwrites the record and invalidates the cached copy.
func (s *Service) Update(ctx context.Context, cfg settingsmodel.Settings) (settingsmodel.Settings, error) {
	updated, err := s.store.Update(ctx, cfg)
	if err != nil {
		return settingsmodel.Settings{}, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, cacheKey); err != nil {
			log.Printf("[settings] cache invalidation failed: %v", err)
		}
	}
	return updated, nil
}
