package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/constant"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/engine/status"
	"github.com/lixenwraith/vi-colony/event"
	"github.com/lixenwraith/vi-colony/input"
)

// TaskSystem routes activate and move-to events into the tasks of selected workers
// Does nothing, and leaves the mailbox untouched, while nothing is selected
type TaskSystem struct {
	world *engine.World
	log   *zap.Logger

	statAssigned *atomic.Int64
}

// NewTaskSystem creates the task assignment step
func NewTaskSystem(world *engine.World) *TaskSystem {
	return &TaskSystem{
		world:        world,
		log:          world.Resource.Log.Named("task"),
		statAssigned: world.Resource.Status.Ints.Get(status.TasksAssigned),
	}
}

func (s *TaskSystem) Name() string {
	return "task"
}

func (s *TaskSystem) Priority() int {
	return constant.PriorityTask
}

func (s *TaskSystem) Access() engine.Access {
	return engine.Access{
		Reads:  engine.ResInput | engine.ResSelection,
		Writes: engine.ResInput | engine.ResTasks | engine.ResEvents,
		Fresh:  engine.ResSelection,
	}
}

func (s *TaskSystem) Update() {
	res := s.world.Resource
	if !res.Selection.AnySelected {
		return
	}

	ev, seq := res.Input.Peek()
	var task component.Task
	switch ev.Kind {
	case input.EventActivate:
		task = component.MineTask(ev.Target)
	case input.EventMoveTo:
		task = component.MoveToTask(ev.Row, ev.Col)
	default:
		return
	}

	n := s.Assign(task)
	// Consumed once; left in place it would be reapplied every tick
	res.Input.Clear(seq)

	s.log.Debug("task assigned",
		zap.Stringer("event", ev),
		zap.Stringer("task", task),
		zap.Int("workers", n),
	)
}

// Assign writes task to every selected worker and returns how many were updated
func (s *TaskSystem) Assign(task component.Task) int {
	workers := s.world.Components.Worker
	selectables := s.world.Components.Selectable
	res := s.world.Resource

	entities := s.world.Query().
		With(workers).
		With(selectables).
		Execute()

	n := 0
	for _, e := range entities {
		sel, _ := selectables.Get(e)
		if !sel.Selected {
			continue
		}
		workers.Set(e, component.WorkerComponent{Task: task})
		n++

		res.Events.Push(event.GameEvent{
			Type:   event.EventTaskAssigned,
			Tick:   res.Time.Tick,
			Entity: e,
			Task:   task,
		})
	}
	s.statAssigned.Add(int64(n))
	return n
}
