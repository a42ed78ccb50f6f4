package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/vi-colony/core"
)

// World owns the entity arena, the typed component stores, the injected resources and the system pipeline
type World struct {
	mu          sync.RWMutex
	generations []uint32 // per-slot live generation, index 0 unused
	free        []uint32
	alive       int

	Resource   *Resource
	Components ComponentStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world around the given resources
func NewWorld(res *Resource) *World {
	return &World{
		generations: make([]uint32, 1, 64),
		Resource:    res,
		Components:  newComponentStore(),
		systems:     make([]System, 0),
	}
}

// CreateEntity issues a new handle, reusing freed slots with a bumped generation
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.alive++
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		return core.NewEntity(idx, w.generations[idx])
	}

	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 1)
	return core.NewEntity(idx, 1)
}

// Alive reports whether the handle still refers to a live entity, O(1)
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aliveLocked(e)
}

func (w *World) aliveLocked(e core.Entity) bool {
	idx := e.Index()
	if !e.Valid() || idx == 0 || int(idx) >= len(w.generations) {
		return false
	}
	return w.generations[idx] == e.Generation()
}

// DestroyEntity strips all components and invalidates every outstanding handle to the slot
// Stale or unknown handles are ignored
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.aliveLocked(e) {
		return
	}
	for _, store := range w.Components.all() {
		store.Remove(e)
	}

	idx := e.Index()
	w.generations[idx]++
	if w.generations[idx] == 0 {
		// Wrapped; zero generation is reserved for the invalid handle
		w.generations[idx] = 1
	}
	w.free = append(w.free, idx)
	w.alive--
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.alive
}

// AddSystem registers a system, keeping the pipeline ordered by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the ordered pipeline
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Validate checks the pipeline's read-after-write contract
func (w *World) Validate() error {
	return ValidatePipeline(w.Systems())
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems once under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}
