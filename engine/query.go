package engine

import (
	"github.com/lixenwraith/vi-colony/core"
)

// Query intersects component stores
//
//	workers := world.Query().
//	    With(world.Components.Worker).
//	    With(world.Components.Actor).
//	    Execute()
type Query struct {
	stores []QueryableStore
	done   bool
	result []core.Entity
}

func (w *World) Query() *Query {
	return &Query{stores: make([]QueryableStore, 0, 4)}
}

// With requires membership in store; calling it after Execute panics
func (q *Query) With(store QueryableStore) *Query {
	if q.done {
		panic("engine: Query.With after Execute")
	}
	q.stores = append(q.stores, store)
	return q
}

// Execute lists entities held by every store, ordered as in the smallest one
// Ties go to the store added first; the result is computed once and reused
func (q *Query) Execute() []core.Entity {
	if q.done {
		return q.result
	}
	q.done = true

	if len(q.stores) == 0 {
		q.result = []core.Entity{}
		return q.result
	}

	driver := 0
	for i, st := range q.stores {
		if st.Count() < q.stores[driver].Count() {
			driver = i
		}
	}

	out := q.stores[driver].All()
	n := 0
next:
	for _, e := range out {
		for i, st := range q.stores {
			if i != driver && !st.Has(e) {
				continue next
			}
		}
		out[n] = e
		n++
	}
	q.result = out[:n]
	return q.result
}

// EntityAt finds an entity of store standing on (row, col)
func (w *World) EntityAt(store QueryableStore, row, col int) (core.Entity, bool) {
	positions := w.Components.Position
	for _, e := range w.Query().With(store).With(positions).Execute() {
		if pos, ok := positions.Get(e); ok && pos.Row == row && pos.Col == col {
			return e, true
		}
	}
	return 0, false
}
