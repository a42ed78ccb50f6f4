package engine

import (
	"github.com/lixenwraith/vi-colony/component"
)

// ComponentStore groups the typed stores of the world
// Systems hold the struct by value; the store pointers stay valid for the world lifetime
type ComponentStore struct {
	Position   *Store[component.PositionComponent]
	Selectable *Store[component.SelectableComponent]
	Worker     *Store[component.WorkerComponent]
	Actor      *Store[component.ActorComponent]
	Glyph      *Store[component.GlyphComponent]
	Name       *Store[component.NameComponent]
	Ore        *Store[component.OreComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Position:   NewStore[component.PositionComponent](),
		Selectable: NewStore[component.SelectableComponent](),
		Worker:     NewStore[component.WorkerComponent](),
		Actor:      NewStore[component.ActorComponent](),
		Glyph:      NewStore[component.GlyphComponent](),
		Name:       NewStore[component.NameComponent](),
		Ore:        NewStore[component.OreComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Position,
		c.Selectable,
		c.Worker,
		c.Actor,
		c.Glyph,
		c.Name,
		c.Ore,
	}
}
