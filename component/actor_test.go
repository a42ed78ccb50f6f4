package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorSpeedClamp(t *testing.T) {
	a := NewActor(0)
	assert.Equal(t, MinSpeed, a.Speed)
	assert.Equal(t, time.Second, a.Interval())

	a = NewActor(4)
	assert.Equal(t, 250*time.Millisecond, a.Interval())

	// Zero value actor must not divide by zero
	var zero ActorComponent
	assert.Equal(t, time.Second, zero.Interval())
}

func TestActorSingleSlot(t *testing.T) {
	now := time.Unix(1000, 0)
	a := NewActor(2)

	require.True(t, a.NewAction(MoveAction(1, 0), now))
	assert.True(t, a.IsBusy())
	assert.Equal(t, now.Add(500*time.Millisecond), a.Action.Deadline)

	// Second request must not replace the pending one
	assert.False(t, a.NewAction(MoveToAction(9, 9), now.Add(time.Second)))
	assert.Equal(t, ActionMove, a.Action.Kind)
	assert.Equal(t, now.Add(500*time.Millisecond), a.Action.Deadline)

	a.Clear()
	assert.False(t, a.IsBusy())
	assert.True(t, a.NewAction(MoveToAction(9, 9), now))
}

func TestActorDue(t *testing.T) {
	now := time.Unix(1000, 0)
	a := NewActor(1)
	assert.False(t, a.Due(now))

	a.NewAction(MoveAction(0, 1), now)
	assert.False(t, a.Due(now.Add(999*time.Millisecond)))
	assert.True(t, a.Due(now.Add(time.Second)))

	a.Extend(now.Add(time.Second))
	assert.False(t, a.Due(now.Add(1500*time.Millisecond)))
	assert.True(t, a.Due(now.Add(2*time.Second)))
}

func TestActorQueriesOnStoredCopy(t *testing.T) {
	now := time.Unix(1000, 0)
	stored := func() ActorComponent {
		a := NewActor(4)
		a.NewAction(MoveAction(1, 1), now)
		return a
	}

	// Read-only queries work on the value a store Get returns
	assert.True(t, stored().IsBusy())
	assert.Equal(t, 250*time.Millisecond, stored().Interval())
	assert.True(t, stored().Due(now.Add(250*time.Millisecond)))
	assert.False(t, stored().Due(now))
}

func TestTaskString(t *testing.T) {
	assert.Equal(t, "idle", IdleTask().String())
	assert.Equal(t, "move_to(3,4)", MoveToTask(3, 4).String())
	assert.Equal(t, TaskMine, MineTask(0).Kind)
}
