package event

import (
	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/core"
)

// EventType is the kind of a simulation notification
type EventType uint8

const (
	// EventSelectionChanged follows every applied box select
	// Count holds the number of selected entities
	EventSelectionChanged EventType = iota

	// EventTaskAssigned reports a task written to a selected worker
	// Entity is the worker, Task the new task
	EventTaskAssigned

	// EventActionCompleted reports a committed step
	// Entity moved to Row/Col; Arrived is set when the slot was cleared by it
	EventActionCompleted

	// EventActionBlocked reports an action abandoned because its next cell was not passable
	// Entity stays at Row/Col
	EventActionBlocked
)

func (t EventType) String() string {
	switch t {
	case EventSelectionChanged:
		return "selection_changed"
	case EventTaskAssigned:
		return "task_assigned"
	case EventActionCompleted:
		return "action_completed"
	case EventActionBlocked:
		return "action_blocked"
	default:
		return "unknown"
	}
}

// GameEvent is one notification; unused fields are zero
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Entity  core.Entity
	Row     int
	Col     int
	Count   int
	Arrived bool
	Task    component.Task
}
