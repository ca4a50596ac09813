package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/desertthunder/encore/internal/shared"
)

// MemoryStore implements [KVStore] in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrKeyNotFound, key)
	}
	return slices.Clone(value), nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = slices.Clone(value)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
