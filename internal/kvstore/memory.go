package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store for tests and ephemeral runs. Reads and
// writes can be forced to fail so callers' error paths are reachable without
// a bespoke fake.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	getErr error
	setErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// FailReads makes every subsequent Get return err; nil restores reads.
func (s *MemoryStore) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailWrites makes every subsequent Set return err; nil restores writes.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
