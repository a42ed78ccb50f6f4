package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/constant"
	"github.com/lixenwraith/vi-colony/core"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/engine/status"
	"github.com/lixenwraith/vi-colony/event"
)

// ActorSystem completes due actions against the fresh walkability snapshot
// Per entity: idle slot -> pending action -> idle again on arrival, completion or a blocked step
type ActorSystem struct {
	world *engine.World
	log   *zap.Logger

	statMoves   *atomic.Int64
	statBlocked *atomic.Int64
	statArrived *atomic.Int64
}

// NewActorSystem creates the action scheduler step
func NewActorSystem(world *engine.World) *ActorSystem {
	reg := world.Resource.Status
	return &ActorSystem{
		world:       world,
		log:         world.Resource.Log.Named("actor"),
		statMoves:   reg.Ints.Get(status.ActorMoves),
		statBlocked: reg.Ints.Get(status.ActorBlocked),
		statArrived: reg.Ints.Get(status.ActorArrived),
	}
}

func (s *ActorSystem) Name() string {
	return "actor"
}

func (s *ActorSystem) Priority() int {
	return constant.PriorityActor
}

func (s *ActorSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.ResActions | engine.ResGrid | engine.ResPositions | engine.ResTerrain,
		Writes: engine.ResActions | engine.ResPositions | engine.ResGrid | engine.ResEvents,
		Fresh:  engine.ResGrid | engine.ResActions,
	}
}

func (s *ActorSystem) Update() {
	actors := s.world.Components.Actor
	positions := s.world.Components.Position
	now := s.world.Resource.Time.Now

	entities := s.world.Query().
		With(actors).
		With(positions).
		Execute()

	for _, e := range entities {
		actor, _ := actors.Get(e)
		if !actor.Due(now) {
			continue
		}
		pos, _ := positions.Get(e)
		action := *actor.Action

		switch action.Kind {
		case component.ActionMove:
			if s.step(e, &pos, pos.Row+action.DRow, pos.Col+action.DCol) {
				s.completed(e, pos, true)
			}
			actor.Clear()

		case component.ActionMoveTo:
			dRow, dCol := sign(action.Row-pos.Row), sign(action.Col-pos.Col)
			if dRow == 0 && dCol == 0 {
				// Already on the destination
				actor.Clear()
				s.statArrived.Add(1)
				break
			}
			if !s.step(e, &pos, pos.Row+dRow, pos.Col+dCol) {
				actor.Clear()
				break
			}
			// Either coordinate matching ends the action, not both
			arrived := pos.Row == action.Row || pos.Col == action.Col
			if arrived {
				actor.Clear()
				s.statArrived.Add(1)
			} else {
				actor.Extend(now)
			}
			s.completed(e, pos, arrived)
		}

		actors.Set(e, actor)
	}
}

// step moves e into (row, col) if the snapshot allows it and keeps the snapshot in sync
// Out-of-bounds candidates, including negative ones at the edges, count as blocked
func (s *ActorSystem) step(e core.Entity, pos *component.PositionComponent, row, col int) bool {
	res := s.world.Resource
	if !res.Grid.Passable(row, col) {
		s.statBlocked.Add(1)
		res.Events.Push(event.GameEvent{
			Type:   event.EventActionBlocked,
			Tick:   res.Time.Tick,
			Entity: e,
			Row:    pos.Row,
			Col:    pos.Col,
		})
		return false
	}

	res.Grid.Vacate(res.Terrain, pos.Row, pos.Col)
	res.Grid.Occupy(row, col)
	pos.Row, pos.Col = row, col
	s.world.Components.Position.Set(e, *pos)
	s.statMoves.Add(1)
	return true
}

func (s *ActorSystem) completed(e core.Entity, pos component.PositionComponent, arrived bool) {
	res := s.world.Resource
	res.Events.Push(event.GameEvent{
		Type:    event.EventActionCompleted,
		Tick:    res.Time.Tick,
		Entity:  e,
		Row:     pos.Row,
		Col:     pos.Col,
		Arrived: arrived,
	})
	s.log.Debug("step",
		zap.Stringer("entity", e),
		zap.Int("row", pos.Row),
		zap.Int("col", pos.Col),
		zap.Bool("arrived", arrived),
	)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
