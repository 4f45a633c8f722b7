package store

import (
	"context"
	"sync"
	"time"

	"assessment_checkout/internal/usecase/interfaces"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps checkout state in process memory. Expiry is evaluated
// lazily against the injected clock.
type MemoryStore struct {
	mu      sync.RWMutex
	clock   interfaces.IClock
	entries map[string]memoryEntry
}

var _ interfaces.IKeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore(clock interfaces.IClock) *MemoryStore {
	return &MemoryStore{clock: clock, entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k, err := scopedKey(ctx, key)
	if err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.entries[k]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, k)
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := scopedKey(ctx, key)
	if err != nil {
		return err
	}
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.clock.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[k] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		k, err := scopedKey(ctx, key)
		if err != nil {
			return err
		}
		delete(s.entries, k)
	}
	return nil
}

// Sweep drops expired entries; callers may run it periodically.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, e := range s.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}
