package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the default backend: a mutex-guarded in-process map.
// Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Snapshot)}
}

func (s *MemoryStore) Create(_ context.Context, snap Snapshot) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = snap
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (Snapshot, bool, error) {
	s.mu.RLock()
	snap, ok := s.sessions[token]
	s.mu.RUnlock()
	return snap, ok, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
