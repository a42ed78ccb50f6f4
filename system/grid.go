package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/constant"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/engine/status"
)

// GridSystem rebuilds the walkability snapshot from terrain and current occupancy once per tick
type GridSystem struct {
	world *engine.World
	log   *zap.Logger

	statPassable *atomic.Int64
	statSkipped  *atomic.Int64
}

// NewGridSystem creates the grid rebuild step
func NewGridSystem(world *engine.World) *GridSystem {
	return &GridSystem{
		world:        world,
		log:          world.Resource.Log.Named("grid"),
		statPassable: world.Resource.Status.Ints.Get(status.GridPassable),
		statSkipped:  world.Resource.Status.Ints.Get(status.GridSkipped),
	}
}

func (s *GridSystem) Name() string {
	return "grid"
}

func (s *GridSystem) Priority() int {
	return constant.PriorityGrid
}

func (s *GridSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.ResTerrain | engine.ResPositions,
		Writes: engine.ResGrid,
	}
}

func (s *GridSystem) Update() {
	res := s.world.Resource
	positions := s.world.Components.Position

	skipped := res.Grid.Rebuild(res.Terrain, positions)
	for _, e := range skipped {
		// Position invariant broken upstream; grid shape is kept, the entity just does not block
		pos, _ := positions.Get(e)
		s.log.Warn("position out of range",
			zap.Stringer("entity", e),
			zap.Int("row", pos.Row),
			zap.Int("col", pos.Col),
		)
	}

	s.statSkipped.Add(int64(len(skipped)))
	s.statPassable.Store(int64(res.Grid.PassableCount()))
}
