package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/core"
)

func TestCreateEntityDistinctHandles(t *testing.T) {
	w, _, _ := NewTestWorld(5, 5, 1)

	seen := make(map[core.Entity]struct{})
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		require.True(t, e.Valid())
		require.True(t, w.Alive(e))
		seen[e] = struct{}{}
	}
	assert.Len(t, seen, 100)
	assert.Equal(t, 100, w.EntityCount())
}

func TestDestroyEntityInvalidatesHandle(t *testing.T) {
	w, _, _ := NewTestWorld(5, 5, 1)

	e := w.CreateEntity()
	w.Components.Position.Set(e, component.PositionComponent{Row: 1, Col: 1})
	w.Components.Worker.Set(e, component.WorkerComponent{})

	w.DestroyEntity(e)
	assert.False(t, w.Alive(e))
	assert.False(t, w.Components.Position.Has(e))
	assert.False(t, w.Components.Worker.Has(e))
	assert.Equal(t, 0, w.EntityCount())

	reused := w.CreateEntity()
	assert.Equal(t, e.Index(), reused.Index())
	assert.NotEqual(t, e.Generation(), reused.Generation())
	assert.True(t, w.Alive(reused))
	assert.False(t, w.Alive(e), "old handle stays stale after slot reuse")

	// Destroying a stale handle must not touch the new occupant
	w.DestroyEntity(e)
	assert.True(t, w.Alive(reused))
}

func TestAliveRejectsForeignHandles(t *testing.T) {
	w, _, _ := NewTestWorld(5, 5, 1)
	assert.False(t, w.Alive(0))
	assert.False(t, w.Alive(core.NewEntity(99, 1)))
}

type stubSystem struct {
	name     string
	priority int
	access   Access
	calls    *[]string
}

func (s stubSystem) Name() string   { return s.name }
func (s stubSystem) Priority() int  { return s.priority }
func (s stubSystem) Access() Access { return s.access }
func (s stubSystem) Update()        { *s.calls = append(*s.calls, s.name) }

func TestAddSystemOrdersByPriority(t *testing.T) {
	w, _, _ := NewTestWorld(5, 5, 1)
	var calls []string

	w.AddSystem(stubSystem{name: "late", priority: 50, calls: &calls})
	w.AddSystem(stubSystem{name: "early", priority: 10, calls: &calls})
	w.AddSystem(stubSystem{name: "tie", priority: 50, calls: &calls})

	w.Update()
	assert.Equal(t, []string{"early", "late", "tie"}, calls)
}
