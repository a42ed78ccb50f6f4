package component

import (
	"fmt"

	"github.com/lixenwraith/vi-colony/core"
)

// TaskKind is the variant tag of a worker task
type TaskKind uint8

const (
	TaskIdle TaskKind = iota
	TaskMine
	TaskMoveTo
)

func (k TaskKind) String() string {
	switch k {
	case TaskIdle:
		return "idle"
	case TaskMine:
		return "mine"
	case TaskMoveTo:
		return "move_to"
	default:
		return "unknown"
	}
}

// Task is a worker's standing intent
// Target is meaningful for TaskMine only, Row/Col for TaskMoveTo only
type Task struct {
	Kind   TaskKind
	Target core.Entity
	Row    int
	Col    int
}

// IdleTask wanders randomly
func IdleTask() Task {
	return Task{Kind: TaskIdle}
}

// MineTask heads for the live position of target; the reference may go stale
func MineTask(target core.Entity) Task {
	return Task{Kind: TaskMine, Target: target}
}

// MoveToTask heads for a fixed cell
func MoveToTask(row, col int) Task {
	return Task{Kind: TaskMoveTo, Row: row, Col: col}
}

func (t Task) String() string {
	switch t.Kind {
	case TaskMine:
		return fmt.Sprintf("mine(%s)", t.Target)
	case TaskMoveTo:
		return fmt.Sprintf("move_to(%d,%d)", t.Row, t.Col)
	default:
		return t.Kind.String()
	}
}

// WorkerComponent holds the task written by task assignment and read by the decision system
type WorkerComponent struct {
	Task Task
}
