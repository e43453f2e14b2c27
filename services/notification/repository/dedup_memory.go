package repository

import (
	"context"
	"sync"
	"time"

	"github.com/schoolroute/bustrack/services/notification"
)

// MemoryDedupStore implements DedupStore with an in-process TTL map.
// Used in tests and single-instance deployments without Redis. The
// mutex spans the whole check-then-set, so concurrent evaluations of
// the same key serialize here.
type MemoryDedupStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

// NewMemoryDedupStore creates an in-memory dedup store
func NewMemoryDedupStore() *MemoryDedupStore {
	return &MemoryDedupStore{
		expires: make(map[string]time.Time),
	}
}

// Acquire atomically claims the cooldown window for the key
func (s *MemoryDedupStore) Acquire(_ context.Context, recipientID, vehicleID, kind string, cooldown time.Duration, now time.Time) (bool, error) {
	key := cooldownKey(recipientID, vehicleID, kind)

	s.mu.Lock()
	defer s.mu.Unlock()

	if expiry, held := s.expires[key]; held && now.Before(expiry) {
		return false, nil
	}
	s.expires[key] = now.Add(cooldown)
	return true, nil
}

// Release drops the cooldown hold for the key
func (s *MemoryDedupStore) Release(_ context.Context, recipientID, vehicleID, kind string) error {
	key := cooldownKey(recipientID, vehicleID, kind)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.expires, key)
	return nil
}

var _ notification.DedupStore = (*MemoryDedupStore)(nil)
