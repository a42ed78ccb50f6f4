package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/core"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/event"
)

type fixture struct {
	world   *engine.World
	terrain *engine.OpenTerrain
	clock   *engine.MockTimeProvider
}

func newFixture(t *testing.T, rows, cols int) *fixture {
	t.Helper()
	w, terrain, clock := engine.NewTestWorld(rows, cols, 42)
	return &fixture{world: w, terrain: terrain, clock: clock}
}

// worker spawns a selectable idle worker actor
func (f *fixture) worker(row, col, speed int) core.Entity {
	e := f.world.CreateEntity()
	c := f.world.Components
	c.Position.Set(e, component.PositionComponent{Row: row, Col: col})
	c.Selectable.Set(e, component.SelectableComponent{})
	c.Worker.Set(e, component.WorkerComponent{Task: component.IdleTask()})
	c.Actor.Set(e, component.NewActor(speed))
	return e
}

// ore spawns a positioned non-worker target
func (f *fixture) ore(row, col int) core.Entity {
	e := f.world.CreateEntity()
	f.world.Components.Position.Set(e, component.PositionComponent{Row: row, Col: col})
	f.world.Components.Ore.Set(e, component.OreComponent{Kind: component.OreGold, Amount: 1})
	return e
}

func (f *fixture) pos(e core.Entity) component.PositionComponent {
	p, _ := f.world.Components.Position.Get(e)
	return p
}

func (f *fixture) actor(e core.Entity) component.ActorComponent {
	a, _ := f.world.Components.Actor.Get(e)
	return a
}

func (f *fixture) setTask(e core.Entity, task component.Task) {
	f.world.Components.Worker.Set(e, component.WorkerComponent{Task: task})
}

// request occupies e's slot at the current resource time
func (f *fixture) request(t *testing.T, e core.Entity, action component.Action) {
	t.Helper()
	a := f.actor(e)
	require.True(t, a.NewAction(action, f.world.Resource.Time.Now))
	f.world.Components.Actor.Set(e, a)
}

// advance moves both the mock clock and the tick time resource
func (f *fixture) advance(d int64) {
	f.clock.Advance(durationMs(d))
	f.world.Resource.Time.Update(f.clock.Now(), f.world.Resource.Time.Tick+1)
}

func (f *fixture) rebuild() {
	f.world.Resource.Grid.Rebuild(f.terrain, f.world.Components.Position)
}

func (f *fixture) drain(kind event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range f.world.Resource.Events.Consume() {
		if ev.Type == kind {
			out = append(out, ev)
		}
	}
	return out
}
