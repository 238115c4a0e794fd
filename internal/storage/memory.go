// ABOUTME: In-memory slot store backed by go-cache; nothing survives the process
// ABOUTME: Used for --storage memory and in tests

package storage

import (
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps slots in a non-expiring go-cache.
type MemoryStore struct {
	c *cache.Cache
}

// NewMemory returns an empty store.
func NewMemory() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

// Get returns the slot value or ErrNotFound.
func (s *MemoryStore) Get(slot string) (string, error) {
	v, ok := s.c.Get(slot)
	if !ok {
		return "", ErrNotFound
	}
	return v.(string), nil
}

// Set stores the slot.
func (s *MemoryStore) Set(slot, value string) error {
	s.c.Set(slot, value, cache.NoExpiration)
	return nil
}

// Delete removes the slot.
func (s *MemoryStore) Delete(slot string) error {
	s.c.Delete(slot)
	return nil
}

// Clear removes every slot.
func (s *MemoryStore) Clear() error {
	s.c.Flush()
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
