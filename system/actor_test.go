package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/event"
)

func TestActorNotDueKeepsPending(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(5, 5, 1)
	f.request(t, e, component.MoveAction(0, 1))
	f.advance(999)
	f.rebuild()

	NewActorSystem(f.world).Update()

	assert.Equal(t, component.PositionComponent{Row: 5, Col: 5}, f.pos(e))
	assert.True(t, f.actor(e).IsBusy())
}

func TestActorMoveCommits(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(5, 5, 1)
	f.request(t, e, component.MoveAction(0, 1))
	f.advance(1000)
	f.rebuild()

	NewActorSystem(f.world).Update()

	assert.Equal(t, component.PositionComponent{Row: 5, Col: 6}, f.pos(e))
	assert.False(t, f.actor(e).IsBusy())
	assert.True(t, f.world.Resource.Grid.Passable(5, 5), "source cell released")
	assert.False(t, f.world.Resource.Grid.Passable(5, 6), "destination cell occupied")
	assert.Len(t, f.drain(event.EventActionCompleted), 1)
}

func TestActorMoveOffEdgeBlocked(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(0, 0, 1)
	f.request(t, e, component.MoveAction(-1, 0))
	f.advance(1000)
	f.rebuild()

	NewActorSystem(f.world).Update()

	assert.Equal(t, component.PositionComponent{Row: 0, Col: 0}, f.pos(e))
	assert.False(t, f.actor(e).IsBusy(), "blocked action still frees the slot")
	assert.Len(t, f.drain(event.EventActionBlocked), 1)
}

func TestActorMoveIntoWallBlocked(t *testing.T) {
	f := newFixture(t, 10, 10)
	f.terrain.Block(3, 4)
	e := f.worker(3, 3, 1)
	f.request(t, e, component.MoveAction(0, 1))
	f.advance(1000)
	f.rebuild()

	NewActorSystem(f.world).Update()

	assert.Equal(t, component.PositionComponent{Row: 3, Col: 3}, f.pos(e))
	assert.False(t, f.actor(e).IsBusy())
}

func TestActorRandomWalkNeverLeavesWalkable(t *testing.T) {
	f := newFixture(t, 6, 6)
	f.terrain.Block(2, 2)
	f.terrain.Block(2, 3)
	a := f.worker(0, 0, 4)
	b := f.worker(5, 5, 4)
	workers := NewWorkerSystem(f.world)
	actors := NewActorSystem(f.world)

	for i := 0; i < 400; i++ {
		f.advance(250)
		f.rebuild()
		workers.Update()
		actors.Update()

		pa, pb := f.pos(a), f.pos(b)
		require.True(t, f.terrain.Walkable(pa.Row, pa.Col))
		require.True(t, f.terrain.Walkable(pb.Row, pb.Col))
		require.NotEqual(t, pa, pb)
	}
}

func TestActorMoveToConvergesMonotonically(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(0, 0, 1)
	f.request(t, e, component.MoveToAction(5, 5))
	actors := NewActorSystem(f.world)

	dist := chebyshev(0, 0, 5, 5)
	steps := 0
	for f.actor(e).IsBusy() {
		require.Less(t, steps, 10, "move-to never terminated")
		f.advance(1000)
		f.rebuild()
		actors.Update()

		p := f.pos(e)
		d := chebyshev(p.Row, p.Col, 5, 5)
		assert.Less(t, d, dist)
		dist = d
		steps++
	}

	assert.Equal(t, component.PositionComponent{Row: 5, Col: 5}, f.pos(e))
	assert.Equal(t, 5, steps)
}

func TestActorMoveToStopsOnEitherAxis(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(0, 0, 1)
	f.request(t, e, component.MoveToAction(5, 3))
	actors := NewActorSystem(f.world)

	for i := 0; i < 10 && f.actor(e).IsBusy(); i++ {
		f.advance(1000)
		f.rebuild()
		actors.Update()
	}

	// Column matched first, row still short of the target
	assert.False(t, f.actor(e).IsBusy())
	assert.Equal(t, component.PositionComponent{Row: 3, Col: 3}, f.pos(e))

	completed := f.drain(event.EventActionCompleted)
	require.Len(t, completed, 3)
	assert.False(t, completed[0].Arrived)
	assert.True(t, completed[2].Arrived)
}

func TestActorMoveToAlreadyThere(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(4, 4, 1)
	f.request(t, e, component.MoveToAction(4, 4))
	f.advance(1000)
	f.rebuild()

	NewActorSystem(f.world).Update()

	assert.False(t, f.actor(e).IsBusy())
	assert.Equal(t, component.PositionComponent{Row: 4, Col: 4}, f.pos(e))
}

func TestActorMoveToBlockedClears(t *testing.T) {
	f := newFixture(t, 10, 10)
	f.terrain.Block(1, 1)
	e := f.worker(0, 0, 1)
	f.request(t, e, component.MoveToAction(5, 5))
	f.advance(1000)
	f.rebuild()

	NewActorSystem(f.world).Update()

	assert.False(t, f.actor(e).IsBusy())
	assert.Equal(t, component.PositionComponent{Row: 0, Col: 0}, f.pos(e))
}

func TestActorMoveToExtendsDeadline(t *testing.T) {
	f := newFixture(t, 10, 10)
	e := f.worker(0, 0, 2)
	f.request(t, e, component.MoveToAction(5, 5))
	f.advance(500)
	f.rebuild()

	NewActorSystem(f.world).Update()

	a := f.actor(e)
	require.True(t, a.IsBusy())
	assert.Equal(t, f.world.Resource.Time.Now.Add(a.Interval()), a.Action.Deadline)
}

func TestActorSameTickContention(t *testing.T) {
	f := newFixture(t, 5, 5)
	left := f.worker(0, 0, 1)
	right := f.worker(0, 2, 1)
	f.request(t, left, component.MoveAction(0, 1))
	f.request(t, right, component.MoveAction(0, -1))
	f.advance(1000)
	f.rebuild()

	NewActorSystem(f.world).Update()

	pl, pr := f.pos(left), f.pos(right)
	assert.NotEqual(t, pl, pr)

	middle := component.PositionComponent{Row: 0, Col: 1}
	moved := 0
	if pl == middle {
		moved++
	}
	if pr == middle {
		moved++
	}
	assert.Equal(t, 1, moved, "exactly one entity takes the contested cell")
	assert.Len(t, f.drain(event.EventActionBlocked), 1)
}
