package memorystore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/zatekoja/servicemarket/internal/domain/storage"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// Store implements the storage.Store interface in process memory.
// Values are kept in a map with a sorted key slice alongside so List
// enumerates in ascending key order. The mutex keeps the adapter safe
// when embedded in a concurrent process; operations themselves are
// single-step.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	keys   []string
}

// NewStore creates a new empty in-memory store
func NewStore() *Store {
	return &Store{
		values: make(map[string][]byte),
	}
}

// Put persists value under key, replacing any existing value
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		i := sort.SearchStrings(s.keys, key)
		s.keys = append(s.keys, "")
		copy(s.keys[i+1:], s.keys[i:])
		s.keys[i] = key
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Get returns the value stored under key
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("record with id %s not found", key))
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Delete removes the value stored under key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("record with id %s not found", key))
	}

	delete(s.values, key)
	i := sort.SearchStrings(s.keys, key)
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	return nil
}

// List returns all values in ascending key order
func (s *Store) List(_ context.Context) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]byte, 0, len(s.keys))
	for _, key := range s.keys {
		value := s.values[key]
		copied := make([]byte, len(value))
		copy(copied, value)
		out = append(out, copied)
	}
	return out, nil
}

var _ storage.Store = (*Store)(nil)
