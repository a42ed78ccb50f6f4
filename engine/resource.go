package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/engine/status"
	"github.com/lixenwraith/vi-colony/event"
	"github.com/lixenwraith/vi-colony/input"
)

// Terrain is the static walkability source the spatial grid is built from
type Terrain interface {
	Rows() int
	Cols() int
	Walkable(row, col int) bool
}

// Resource holds the per-world singletons, injected once and shared by all systems
// Replaces process globals; every field is set by NewResource
type Resource struct {
	Time      *TimeResource
	Terrain   Terrain
	Grid      *SpatialGrid
	Selection *SelectionResource
	Input     *input.Mailbox
	Events    *event.Queue
	Status    *status.Registry
	Rand      *rand.Rand
	Log       *zap.Logger
}

// NewResource wires a resource set for terrain; nil logger or rng get safe defaults
func NewResource(terrain Terrain, log *zap.Logger, rng *rand.Rand) *Resource {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resource{
		Time:      &TimeResource{},
		Terrain:   terrain,
		Grid:      NewSpatialGrid(terrain.Rows(), terrain.Cols()),
		Selection: &SelectionResource{},
		Input:     input.NewMailbox(),
		Events:    event.NewQueue(),
		Status:    status.NewRegistry(),
		Rand:      rng,
		Log:       log,
	}
}

// TimeResource is stamped by the clock scheduler at the start of every tick
type TimeResource struct {
	// Now is the reference time for every deadline check within the tick
	Now time.Time

	// Tick is the number of the tick being processed, starting at 1
	Tick uint64
}

// Update modifies TimeResource in place; caller holds the update lock
func (tr *TimeResource) Update(now time.Time, tick uint64) {
	tr.Now = now
	tr.Tick = tick
}

// SelectionResource is the derived "anything selected" state gating task assignment
type SelectionResource struct {
	AnySelected bool
	Count       int
}
