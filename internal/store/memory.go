package store

import (
	"context"
	"sync"

	"github.com/youriscent/storefront/pkg/errors"
)

// MemoryStore is a map-backed Store used in tests and in-process demos.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "key", ID: key}
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
