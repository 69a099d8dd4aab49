package storage

import "sync"

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) SetMany(updates map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range updates {
		s.values[k] = v
	}
	return nil
}

func (s *MemoryStore) DeleteMany(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}
