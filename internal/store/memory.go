package store

import (
	"errors"
	"sync"
	"time"

	"github.com/moveguider/moveguider/internal/wellness"
)

// ErrNotFound is returned when no fresh forecast is cached for a city.
var ErrNotFound = errors.New("no cached forecast for city")

type entry struct {
	city    wellness.CityContext
	fetched time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of resolved city
// contexts, keyed by the requested city name. Entries expire after maxAge so
// a dashboard request never renders stale forecasts; maxEntries bounds memory
// by evicting the oldest entry.
type MemoryStore struct {
	mu sync.RWMutex

	data       map[string]entry
	maxEntries int           // 0 = unlimited
	maxAge     time.Duration // 0 = never expires
}

// NewMemoryStore creates a MemoryStore with optional limits.
func NewMemoryStore(maxEntries int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// Save caches a resolved city context under the requested name.
func (s *MemoryStore) Save(name string, city wellness.CityContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[name] = entry{city: city, fetched: time.Now()}

	if s.maxEntries > 0 && len(s.data) > s.maxEntries {
		var oldestKey string
		var oldest time.Time
		for k, e := range s.data {
			if oldestKey == "" || e.fetched.Before(oldest) {
				oldestKey, oldest = k, e.fetched
			}
		}
		delete(s.data, oldestKey)
	}
}

// Get returns the cached context for a city name if it is still fresh.
func (s *MemoryStore) Get(name string) (wellness.CityContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[name]
	if !ok {
		return wellness.CityContext{}, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(e.fetched) > s.maxAge {
		return wellness.CityContext{}, ErrNotFound
	}
	return e.city, nil
}
