// Package session keeps pending rolls between the initial roll and its push.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

var ErrNotFound = errors.New("roll not found")

// Store persists roll snapshots by id.
type Store interface {
	Put(ctx context.Context, id string, snap dice.Snapshot) error
	Get(ctx context.Context, id string) (dice.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

type entry struct {
	snap    dice.Snapshot
	expires time.Time
}

// MemoryStore is an in-process Store with per-entry expiry.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore creates a store whose entries expire after ttl (<=0 => never).
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *MemoryStore) Put(_ context.Context, id string, snap dice.Snapshot) error {
	e := entry{snap: snap}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = e
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (dice.Snapshot, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || s.expired(e) {
		return dice.Snapshot{}, ErrNotFound
	}
	return e.snap, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

func (s *MemoryStore) expired(e entry) bool {
	return !e.expires.IsZero() && !s.now().Before(e.expires)
}
