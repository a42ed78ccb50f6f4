package engine

import (
	"sync"

	"github.com/lixenwraith/vi-colony/core"
)

// AnyStore is the type-erased view World needs to strip a destroyed entity
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore is an AnyStore that can list its entities for intersection
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}

const storeInitialCap = 64

// Store keeps one component type packed in parallel slices
// index[e] is e's slot in ents and vals; removal moves the last slot into the hole
type Store[T any] struct {
	mu    sync.RWMutex
	index map[core.Entity]int
	ents  []core.Entity
	vals  []T
}

func NewStore[T any]() *Store[T] {
	s := &Store[T]{}
	s.reset()
	return s
}

func (s *Store[T]) reset() {
	s.index = make(map[core.Entity]int, storeInitialCap)
	s.ents = make([]core.Entity, 0, storeInitialCap)
	s.vals = make([]T, 0, storeInitialCap)
}

// Set attaches val to e, overwriting in place if e already has one
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.vals[i] = val
		return
	}
	s.index[e] = len(s.ents)
	s.ents = append(s.ents, e)
	s.vals = append(s.vals, val)
}

// Get returns a copy of e's component
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.vals[i], true
}

func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.ents) - 1
	if i != last {
		moved := s.ents[last]
		s.ents[i] = moved
		s.vals[i] = s.vals[last]
		s.index[moved] = i
	}
	var zero T
	s.vals[last] = zero
	s.ents = s.ents[:last]
	s.vals = s.vals[:last]
	delete(s.index, e)
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All snapshots the holders in slot order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Entity(nil), s.ents...)
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ents)
}

func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}
