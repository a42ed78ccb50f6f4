package core

import "fmt"

// Entity is a generation-checked handle into the world's entity arena
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Zero value is never issued and means "no entity"
type Entity uint64

// NewEntity packs slot index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot of the entity
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the generation the handle was issued with
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether the handle was ever issued; it says nothing about liveness
func (e Entity) Valid() bool {
	return e.Generation() != 0
}

func (e Entity) String() string {
	if !e.Valid() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
