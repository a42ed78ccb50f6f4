package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/constant"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/engine/status"
	"github.com/lixenwraith/vi-colony/event"
	"github.com/lixenwraith/vi-colony/input"
)

// SelectionSystem applies box-select events to selectable positioned entities
// It is the only writer of SelectableComponent and of the any-selected flag
type SelectionSystem struct {
	world *engine.World
	log   *zap.Logger

	statCount *atomic.Int64
}

// NewSelectionSystem creates the selection step
func NewSelectionSystem(world *engine.World) *SelectionSystem {
	return &SelectionSystem{
		world:     world,
		log:       world.Resource.Log.Named("selection"),
		statCount: world.Resource.Status.Ints.Get(status.SelectionCount),
	}
}

func (s *SelectionSystem) Name() string {
	return "selection"
}

func (s *SelectionSystem) Priority() int {
	return constant.PrioritySelection
}

func (s *SelectionSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.ResInput | engine.ResPositions,
		Writes: engine.ResInput | engine.ResSelection | engine.ResEvents,
	}
}

func (s *SelectionSystem) Update() {
	mailbox := s.world.Resource.Input
	ev, seq := mailbox.Peek()
	if ev.Kind != input.EventBoxSelect {
		return
	}

	count := s.ApplyBoxSelect(ev.Row, ev.Col, ev.Width, ev.Height)
	mailbox.Clear(seq)

	s.log.Debug("box select",
		zap.Stringer("event", ev),
		zap.Int("selected", count),
	)
}

// ApplyBoxSelect selects exactly the entities with row in [row, row+width] and col in [col, col+height]
// Every other selectable is deselected; the any-selected flag is recomputed from scratch
// Returns the number of selected entities
func (s *SelectionSystem) ApplyBoxSelect(row, col, width, height int) int {
	positions := s.world.Components.Position
	selectables := s.world.Components.Selectable

	entities := s.world.Query().
		With(positions).
		With(selectables).
		Execute()

	count := 0
	for _, e := range entities {
		pos, _ := positions.Get(e)
		// row+width may overflow, compare offsets
		inside := pos.Row >= row && pos.Row-row <= width &&
			pos.Col >= col && pos.Col-col <= height

		sel, _ := selectables.Get(e)
		sel.Selected = inside
		selectables.Set(e, sel)
		if inside {
			count++
		}
	}

	res := s.world.Resource
	res.Selection.AnySelected = count > 0
	res.Selection.Count = count
	s.statCount.Store(int64(count))

	res.Events.Push(event.GameEvent{
		Type:  event.EventSelectionChanged,
		Tick:  res.Time.Tick,
		Count: count,
	})
	return count
}
