package cache

import (
	"context"
	"sync"
	"time"
)

// InMemorySummaryStore implements the dashboard summary cache in process
// memory. Used for single-instance deployments and tests; entries expire
// lazily on read.
type InMemorySummaryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewInMemorySummaryStore creates an empty in-memory store
func NewInMemorySummaryStore() *InMemorySummaryStore {
	return &InMemorySummaryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached value and whether a live entry was present
func (s *InMemorySummaryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores the value with a TTL
func (s *InMemorySummaryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
