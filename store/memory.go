package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/reoring/contractkit"
)

// Memory is an in-memory Repository. It is safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	schemas  map[contractkit.Identity]*contractkit.Schema
	fixtures map[contractkit.Identity]*contractkit.Fixture
}

// NewMemory returns a Memory store holding schemas.
func NewMemory(schemas ...*contractkit.Schema) *Memory {
	m := &Memory{
		schemas:  map[contractkit.Identity]*contractkit.Schema{},
		fixtures: map[contractkit.Identity]*contractkit.Fixture{},
	}
	for _, s := range schemas {
		m.schemas[s.Identity] = s
	}
	return m
}

// PutSchema stores s, replacing any schema with the same identity.
func (m *Memory) PutSchema(s *contractkit.Schema) {
	m.mu.Lock()
	m.schemas[s.Identity] = s
	m.mu.Unlock()
}

// PutFixture stores f, replacing any fixture with the same identity.
func (m *Memory) PutFixture(f *contractkit.Fixture) {
	m.mu.Lock()
	m.fixtures[f.Identity] = f
	m.mu.Unlock()
}

func (m *Memory) Load(_ context.Context, id contractkit.Identity) (*contractkit.Schema, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schemas[id]
	if !ok {
		return nil, fmt.Errorf("store: schema %s: %w", id, contractkit.ErrNotFound)
	}
	return s, nil
}

func (m *Memory) List(context.Context) ([]contractkit.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.schemas), nil
}

func (m *Memory) LoadFixture(_ context.Context, id contractkit.Identity) (*contractkit.Fixture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.fixtures[id]
	if !ok {
		return nil, fmt.Errorf("store: fixture %s: %w", id, contractkit.ErrNotFound)
	}
	return f, nil
}

func (m *Memory) ListFixtures(context.Context) ([]contractkit.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.fixtures), nil
}

func (m *Memory) CreateSchema(_ context.Context, s *contractkit.Schema) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schemas[s.Identity]; ok {
		return fmt.Errorf("store: schema %s: %w", s.Identity, contractkit.ErrExists)
	}
	m.schemas[s.Identity] = s
	return nil
}

func sortedKeys[V any](m map[contractkit.Identity]V) []contractkit.Identity {
	ids := make([]contractkit.Identity, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, k int) bool { return ids[i].String() < ids[k].String() })
	return ids
}
