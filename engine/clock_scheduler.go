package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/engine/status"
)

// ClockScheduler drives the world pipeline on a fixed tick
// All systems run inside one tick under the world update lock, in pipeline order
type ClockScheduler struct {
	world    *World
	clock    Clock
	interval time.Duration
	log      *zap.Logger

	tickCount atomic.Uint64
	running   atomic.Bool

	// Signals the renderer that a tick finished; never blocks the scheduler
	updateDone chan struct{}

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler ticking world every interval on clock
func NewClockScheduler(world *World, clock Clock, interval time.Duration) *ClockScheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &ClockScheduler{
		world:      world,
		clock:      clock,
		interval:   interval,
		log:        world.Resource.Log.Named("scheduler"),
		updateDone: make(chan struct{}, 1),
		statTicks:  world.Resource.Status.Ints.Get(status.EngineTicks),
	}
}

// DefaultTickInterval is used when a non-positive interval is configured
const DefaultTickInterval = 50 * time.Millisecond

// UpdateDone delivers at most one pending signal per finished tick
func (cs *ClockScheduler) UpdateDone() <-chan struct{} {
	return cs.updateDone
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Tick runs exactly one pipeline pass stamped with the clock's current time
func (cs *ClockScheduler) Tick() {
	cs.world.RunSafe(func() {
		tick := cs.tickCount.Load() + 1
		cs.world.Resource.Time.Update(cs.clock.Now(), tick)
		cs.world.UpdateLocked()
	})

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// Run validates the pipeline then ticks until ctx is done
// Returns nil on cancellation, an error if the pipeline is invalid or Run is already active
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if err := cs.world.Validate(); err != nil {
		return fmt.Errorf("scheduler start: %w", err)
	}
	if !cs.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler start: already running")
	}
	defer cs.running.Store(false)

	cs.log.Info("scheduler started",
		zap.Duration("interval", cs.interval),
		zap.Int("systems", len(cs.world.Systems())),
	)

	timer := time.NewTimer(cs.interval)
	defer timer.Stop()

	nextDeadline := time.Now().Add(cs.interval)
	for {
		select {
		case <-ctx.Done():
			cs.log.Info("scheduler stopped", zap.Uint64("ticks", cs.TickCount()))
			return nil
		case <-timer.C:
		}

		cs.Tick()

		// Drift correction: keep cadence, but never try to catch up more than two ticks
		now := time.Now()
		nextDeadline = nextDeadline.Add(cs.interval)
		if now.Sub(nextDeadline) > cs.interval*2 {
			nextDeadline = now.Add(cs.interval)
		}
		sleep := nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
