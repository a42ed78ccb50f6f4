package component

import (
	"fmt"
	"time"
)

// ActionKind is the variant tag of a timed action
type ActionKind uint8

const (
	// ActionMove steps by a relative delta
	ActionMove ActionKind = iota
	// ActionMoveTo steps greedily toward an absolute cell, one leg per interval
	ActionMoveTo
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionMoveTo:
		return "move_to"
	default:
		return "unknown"
	}
}

// Action is a single in-flight timed request
// DRow/DCol are used by ActionMove, Row/Col by ActionMoveTo
type Action struct {
	Kind     ActionKind
	DRow     int
	DCol     int
	Row      int
	Col      int
	Deadline time.Time
}

// MoveAction builds a relative step request; deadline is stamped by NewAction
func MoveAction(dRow, dCol int) Action {
	return Action{Kind: ActionMove, DRow: dRow, DCol: dCol}
}

// MoveToAction builds an absolute destination request; deadline is stamped by NewAction
func MoveToAction(row, col int) Action {
	return Action{Kind: ActionMoveTo, Row: row, Col: col}
}

func (a Action) String() string {
	if a.Kind == ActionMove {
		return fmt.Sprintf("move(%d,%d)", a.DRow, a.DCol)
	}
	return fmt.Sprintf("move_to(%d,%d)", a.Row, a.Col)
}

// MinSpeed is the floor applied to actor speed
const MinSpeed = 1

// ActorComponent owns the single action slot of an entity
// Speed is actions per second; a nil Action means the slot is free
type ActorComponent struct {
	Speed  int
	Action *Action
}

// NewActor returns an idle actor, clamping speed to MinSpeed
func NewActor(speed int) ActorComponent {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	return ActorComponent{Speed: speed}
}

// Interval is the time one action takes at the actor's speed
func (a ActorComponent) Interval() time.Duration {
	speed := a.Speed
	if speed < MinSpeed {
		speed = MinSpeed
	}
	return time.Second / time.Duration(speed)
}

// IsBusy reports whether an action is pending
func (a ActorComponent) IsBusy() bool {
	return a.Action != nil
}

// NewAction occupies the slot with action due at now+Interval
// Returns false and leaves the slot untouched when already busy
func (a *ActorComponent) NewAction(action Action, now time.Time) bool {
	if a.Action != nil {
		return false
	}
	action.Deadline = now.Add(a.Interval())
	a.Action = &action
	return true
}

// Due reports whether the pending action's deadline has been reached
func (a ActorComponent) Due(now time.Time) bool {
	return a.Action != nil && !now.Before(a.Action.Deadline)
}

// Extend pushes the pending action's deadline to now+Interval for the next leg
func (a *ActorComponent) Extend(now time.Time) {
	if a.Action != nil {
		a.Action.Deadline = now.Add(a.Interval())
	}
}

// Clear frees the slot
func (a *ActorComponent) Clear() {
	a.Action = nil
}
