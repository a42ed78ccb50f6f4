package input

import (
	"fmt"

	"github.com/lixenwraith/vi-colony/core"
)

// EventKind discriminates mailbox events
type EventKind uint8

const (
	EventEmpty EventKind = iota
	EventBoxSelect
	EventMoveTo
	EventActivate
)

func (k EventKind) String() string {
	switch k {
	case EventEmpty:
		return "empty"
	case EventBoxSelect:
		return "box_select"
	case EventMoveTo:
		return "move_to"
	case EventActivate:
		return "activate"
	default:
		return "unknown"
	}
}

// Event is a translated pointer command
// BoxSelect covers rows [Row, Row+Width] and cols [Col, Col+Height], both ends inclusive
type Event struct {
	Kind   EventKind
	Row    int
	Col    int
	Width  int
	Height int
	Target core.Entity
}

// Empty is the idle mailbox content
func Empty() Event {
	return Event{Kind: EventEmpty}
}

// BoxSelect selects every selectable entity inside the inclusive rectangle
func BoxSelect(row, col, width, height int) Event {
	return Event{Kind: EventBoxSelect, Row: row, Col: col, Width: width, Height: height}
}

// MoveTo orders selected workers to a cell
func MoveTo(row, col int) Event {
	return Event{Kind: EventMoveTo, Row: row, Col: col}
}

// Activate orders selected workers to mine target
func Activate(target core.Entity) Event {
	return Event{Kind: EventActivate, Target: target}
}

func (e Event) String() string {
	switch e.Kind {
	case EventBoxSelect:
		return fmt.Sprintf("box_select(%d,%d,%d,%d)", e.Row, e.Col, e.Width, e.Height)
	case EventMoveTo:
		return fmt.Sprintf("move_to(%d,%d)", e.Row, e.Col)
	case EventActivate:
		return fmt.Sprintf("activate(%s)", e.Target)
	default:
		return e.Kind.String()
	}
}
