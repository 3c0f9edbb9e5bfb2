// internal/store/memory.go
package store

import "sync"

// MemoryStore keeps collections in a plain map. Used in tests and for
// throwaway single-process runs.
type MemoryStore struct {
    mu   sync.RWMutex
    data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
    return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()

    v, ok := s.data[key]
    if !ok {
        return nil, false, nil
    }
    // Copy so callers cannot mutate the stored blob.
    out := make([]byte, len(v))
    copy(out, v)
    return out, true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
    s.mu.Lock()
    defer s.mu.Unlock()

    v := make([]byte, len(value))
    copy(v, value)
    s.data[key] = v
    return nil
}

var _ KV = (*MemoryStore)(nil)
