package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-colony/engine/status"
)

func TestTickStampsTimeAndCounts(t *testing.T) {
	w, _, clock := NewTestWorld(5, 5, 1)
	var calls []string
	var stamped []time.Time
	w.AddSystem(stubSystem{name: "probe", calls: &calls})

	cs := NewClockScheduler(w, clock, time.Second)
	cs.Tick()
	stamped = append(stamped, w.Resource.Time.Now)
	clock.Advance(time.Second)
	cs.Tick()
	stamped = append(stamped, w.Resource.Time.Now)

	assert.Equal(t, []string{"probe", "probe"}, calls)
	assert.Equal(t, uint64(2), cs.TickCount())
	assert.Equal(t, uint64(2), w.Resource.Time.Tick)
	assert.Equal(t, TestEpoch, stamped[0])
	assert.Equal(t, TestEpoch.Add(time.Second), stamped[1])
	assert.Equal(t, int64(2), w.Resource.Status.Ints.Get(status.EngineTicks).Load())
}

func TestTickSignalNeverBlocks(t *testing.T) {
	w, _, clock := NewTestWorld(5, 5, 1)
	w.AddSystem(stubSystem{name: "probe", calls: new([]string)})
	cs := NewClockScheduler(w, clock, time.Second)

	for i := 0; i < 5; i++ {
		cs.Tick()
	}
	select {
	case <-cs.UpdateDone():
	default:
		t.Fatal("expected a pending update signal")
	}
}

func TestRunRejectsInvalidPipeline(t *testing.T) {
	w, _, clock := NewTestWorld(5, 5, 1)
	cs := NewClockScheduler(w, clock, time.Millisecond)

	err := cs.Run(context.Background())
	assert.ErrorIs(t, err, ErrEmptyPipeline)
}

func TestRunTicksUntilCancelled(t *testing.T) {
	w, _, _ := NewTestWorld(5, 5, 1)
	w.AddSystem(stubSystem{name: "probe", calls: new([]string)})
	cs := NewClockScheduler(w, NewTimeProvider(), 2*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, cs.Run(ctx))
	assert.Greater(t, cs.TickCount(), uint64(0))
}

func TestNonPositiveIntervalFallsBack(t *testing.T) {
	w, _, clock := NewTestWorld(5, 5, 1)
	cs := NewClockScheduler(w, clock, 0)
	assert.Equal(t, DefaultTickInterval, cs.interval)
}
