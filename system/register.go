package system

import (
	"fmt"

	"github.com/lixenwraith/vi-colony/engine"
)

// Pipeline is the full tick pipeline in execution order
type Pipeline struct {
	Selection *SelectionSystem
	Task      *TaskSystem
	Grid      *GridSystem
	Worker    *WorkerSystem
	Actor     *ActorSystem
}

// Register adds every simulation system to world and validates the resulting order
func Register(world *engine.World) (*Pipeline, error) {
	p := &Pipeline{
		Selection: NewSelectionSystem(world),
		Task:      NewTaskSystem(world),
		Grid:      NewGridSystem(world),
		Worker:    NewWorkerSystem(world),
		Actor:     NewActorSystem(world),
	}
	world.AddSystem(p.Selection)
	world.AddSystem(p.Task)
	world.AddSystem(p.Grid)
	world.AddSystem(p.Worker)
	world.AddSystem(p.Actor)

	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("register systems: %w", err)
	}
	return p, nil
}
