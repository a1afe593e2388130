package favorites

import (
	"context"
	"sync"
)

// MemoryStore keeps the encoded sets in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) ([]string, error) {
	m.mu.RLock()
	raw, ok := m.data[Key(sessionID)]
	m.mu.RUnlock()
	if !ok {
		return []string{}, nil
	}
	return decode(raw)
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, ids []string) error {
	raw, err := encode(ids)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[Key(sessionID)] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.data, Key(sessionID))
	m.mu.Unlock()
	return nil
}

// Put stores a raw value, bypassing encoding.
func (m *MemoryStore) Put(sessionID string, raw []byte) {
	m.mu.Lock()
	m.data[Key(sessionID)] = raw
	m.mu.Unlock()
}
