// Package storage defines the persistence collaborator for the single
// piece of cross-call state the client keeps: the currently authenticated
// user id. Implementations decide durability; the client only talks to
// the interface.
package storage

import (
	"context"
	"sync"
)

// UserStore persists the current user id across calls.
type UserStore interface {
	// UserID returns the stored id and whether one is set.
	UserID(ctx context.Context) (int64, bool, error)
	SetUserID(ctx context.Context, id int64) error
	ClearUserID(ctx context.Context) error
}

// MemoryStore is a process-local UserStore. It is mutex-guarded so
// concurrent logins resolve to a clean last-writer-wins.
type MemoryStore struct {
	mu  sync.RWMutex
	id  int64
	set bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) UserID(_ context.Context) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id, s.set, nil
}

func (s *MemoryStore) SetUserID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	s.set = true
	return nil
}

func (s *MemoryStore) ClearUserID(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = 0
	s.set = false
	return nil
}
