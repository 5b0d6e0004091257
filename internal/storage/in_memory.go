package storage

import "sync"

// inMemory implements Slots using an in-memory map.
type inMemory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewInMemorySlots creates a new instance of Slots backed by a map.
func NewInMemorySlots() Slots {
	return &inMemory{
		slots: make(map[string][]byte),
	}
}

// Get returns the value stored under key.
func (s *inMemory) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

// Set stores the value under key.
func (s *inMemory) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.slots[key] = cp
	return nil
}

// Delete removes the value stored under key.
func (s *inMemory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
