package storage

import (
	"context"
	"sync"
)

// MemoryStore backs tests and the memory-only fallback mode. State
// does not survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string]string

	// FailSaves forces Save errors for exercising degraded mode.
	FailSaves error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string]string{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, found := s.blobs[key]
	return value, found, nil
}

func (s *MemoryStore) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.blobs[key] = value
	return nil
}

var _ BlobStore = (*MemoryStore)(nil)
