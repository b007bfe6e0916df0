package inmemkv

import (
	"sync"

	"classtrack/core"
)

// Store is a volatile in-memory KVStore; used by tests and the `inmem`
// storage engine.
type Store struct {
	mu    sync.RWMutex
	table map[string][]byte
}

var _ core.KVStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{table: make(map[string][]byte)}
}

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.table[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return append([]byte(nil), val...), nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error { return nil }
