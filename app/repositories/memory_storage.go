package repositories

import (
	"net/http"
	"sync"
)

type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]map[string]string)}
}

func (m *MemoryStorage) Open(_ http.ResponseWriter, _ *http.Request, visitorID string) (KeyValueStore, error) {
	return m.Scope(visitorID), nil
}

func (m *MemoryStorage) Scope(namespace string) KeyValueStore {
	return &memoryScope{parent: m, namespace: namespace}
}

type memoryScope struct {
	parent    *MemoryStorage
	namespace string
}

func (s *memoryScope) GetItem(key string) (string, bool, error) {
	s.parent.mu.RLock()
	defer s.parent.mu.RUnlock()

	value, ok := s.parent.entries[s.namespace][key]
	return value, ok, nil
}

func (s *memoryScope) SetItem(key, value string) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()

	ns, ok := s.parent.entries[s.namespace]
	if !ok {
		ns = make(map[string]string)
		s.parent.entries[s.namespace] = ns
	}
	ns[key] = value
	return nil
}

func (s *memoryScope) RemoveItem(key string) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()

	delete(s.parent.entries[s.namespace], key)
	return nil
}
