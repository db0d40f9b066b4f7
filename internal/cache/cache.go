// Package cache provides the rendered-page cache: a keyed store of response
// bodies with timed expiry, injected into the router rather than held as
// ambient global state.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCacheDisabled is returned when cache operations are attempted but the
// backing store is not available.
var ErrCacheDisabled = errors.New("cache is disabled")

// Entry is one cached rendered response.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Store persists rendered pages under canonical request-path keys.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-process Store with timed expiry. It backs the page
// cache when Redis is not configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable so expiry can be tested without sleeping
	now func() time.Time
}

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the entry for key if it exists and has not expired
func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, bool, error) {
	s.mu.RLock()
	stored, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if s.now().After(stored.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}

	entry := stored.entry
	return &entry, true, nil
}

// Set stores an entry under key for ttl
func (s *MemoryStore) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		entry:     *entry,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Delete removes an entry
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
