package otp

import (
	"context"
	"sync"
	"time"
)

// UpdateFunc receives the stored challenge (nil when absent) and returns the
// value to keep. Returning nil deletes the entry; returning current unchanged
// leaves the store untouched. It may run more than once for stores that retry
// on conflict, so it must not have side effects beyond its own closure.
type UpdateFunc func(current *Challenge) *Challenge

// Store maps identity to its live challenge.
type Store interface {
	Set(ctx context.Context, identity string, ch Challenge) error
	Get(ctx context.Context, identity string) (Challenge, bool, error)
	Delete(ctx context.Context, identity string) error
	// Update runs fn and applies its result atomically with respect to every
	// other operation on the same identity.
	Update(ctx context.Context, identity string, fn UpdateFunc) error
}

// MemoryStore keeps challenges in process memory. Every instance of the
// process has its own MemoryStore, so it is only correct for single-instance
// deployments.
type MemoryStore struct {
	mu         sync.Mutex
	challenges map[string]Challenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{challenges: make(map[string]Challenge)}
}

func (s *MemoryStore) Set(_ context.Context, identity string, ch Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[identity] = ch
	return nil
}

func (s *MemoryStore) Get(_ context.Context, identity string) (Challenge, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[identity]
	return ch, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, identity)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, identity string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *Challenge
	if ch, ok := s.challenges[identity]; ok {
		current = &ch
	}

	next := fn(current)
	switch {
	case next == current:
	case next == nil:
		delete(s.challenges, identity)
	default:
		s.challenges[identity] = *next
	}
	return nil
}

// Sweep removes every challenge expired at now and returns how many were
// removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for identity, ch := range s.challenges {
		if ch.Expired(now) {
			delete(s.challenges, identity)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored challenges, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.challenges)
}
