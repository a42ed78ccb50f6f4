package system

import (
	"math/rand"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/constant"
	"github.com/lixenwraith/vi-colony/engine"
)

// WorkerSystem turns each idle worker's task into one timed action request per tick
type WorkerSystem struct {
	world *engine.World
}

// NewWorkerSystem creates the decision step
func NewWorkerSystem(world *engine.World) *WorkerSystem {
	return &WorkerSystem{world: world}
}

func (s *WorkerSystem) Name() string {
	return "worker"
}

func (s *WorkerSystem) Priority() int {
	return constant.PriorityWorker
}

func (s *WorkerSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.ResTasks | engine.ResActions | engine.ResPositions,
		Writes: engine.ResActions,
	}
}

func (s *WorkerSystem) Update() {
	workers := s.world.Components.Worker
	actors := s.world.Components.Actor
	now := s.world.Resource.Time.Now

	entities := s.world.Query().
		With(workers).
		With(actors).
		Execute()

	for _, e := range entities {
		actor, _ := actors.Get(e)
		if actor.IsBusy() {
			continue
		}

		worker, _ := workers.Get(e)
		action, ok := s.decide(worker.Task)
		if !ok {
			continue
		}
		if actor.NewAction(action, now) {
			actors.Set(e, actor)
		}
	}
}

// decide maps a task to the action it wants now; false means nothing to do this tick
func (s *WorkerSystem) decide(task component.Task) (component.Action, bool) {
	switch task.Kind {
	case component.TaskIdle:
		dRow, dCol := RandomDirection(s.world.Resource.Rand)
		return component.MoveAction(dRow, dCol), true

	case component.TaskMine:
		// Stale handle or target without a position: skip, the task stays and is retried next tick
		if !s.world.Alive(task.Target) {
			return component.Action{}, false
		}
		pos, ok := s.world.Components.Position.Get(task.Target)
		if !ok {
			return component.Action{}, false
		}
		return component.MoveToAction(pos.Row, pos.Col), true

	case component.TaskMoveTo:
		return component.MoveToAction(task.Row, task.Col), true
	}
	return component.Action{}, false
}

// RandomDirection picks north, south, east or west with equal probability
func RandomDirection(rng *rand.Rand) (dRow, dCol int) {
	switch rng.Intn(4) {
	case 0:
		return -1, 0
	case 1:
		return 1, 0
	case 2:
		return 0, 1
	case 3:
		return 0, -1
	}
	panic("unreachable: Intn(4) out of range")
}
