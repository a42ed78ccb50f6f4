package engine

import "github.com/lixenwraith/vi-colony/core"

// EntityBuilder assembles an entity's components before handing back its handle
//
//	e := With(
//	    With(world.NewEntity(), world.Components.Position, pos),
//	    world.Components.Glyph, glyph,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity allocates a handle and starts a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With sets a component of type T on the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// Build seals the builder and returns the entity
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
