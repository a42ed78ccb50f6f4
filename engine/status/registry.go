package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Metric keys written by the engine and systems
const (
	EngineTicks    = "engine.ticks"
	ActorMoves     = "actor.moves"
	ActorBlocked   = "actor.blocked"
	ActorArrived   = "actor.arrived"
	SelectionCount = "selection.count"
	TasksAssigned  = "task.assigned"
	GridPassable   = "grid.passable"
	GridSkipped    = "grid.skipped"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// IntSnapshot reads every counter, keys sorted
func (r *Registry) IntSnapshot() []IntSample {
	var out []IntSample
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, IntSample{Key: key, Value: v.Load()})
	})
	return out
}

// IntSample is one counter reading
type IntSample struct {
	Key   string
	Value int64
}

// MetricMap is a thread-safe registry for metrics of type T
// Registration uses mutex; cached pointer access is lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the metric pointer for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	if ptr, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
