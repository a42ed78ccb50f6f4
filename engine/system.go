package engine

import "strings"

// ResourceMask names shared state a system touches within a tick
type ResourceMask uint16

const (
	ResInput ResourceMask = 1 << iota
	ResSelection
	ResTasks
	ResTerrain
	ResGrid
	ResActions
	ResPositions
	ResEvents
)

var resourceNames = []string{
	"input",
	"selection",
	"tasks",
	"terrain",
	"grid",
	"actions",
	"positions",
	"events",
}

func (m ResourceMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for i, name := range resourceNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit of other is set
func (m ResourceMask) Has(other ResourceMask) bool {
	return m&other == other
}

// Access is a system's declared read/write set
// Fresh lists reads that must have been written earlier in the same tick
type Access struct {
	Reads  ResourceMask
	Writes ResourceMask
	Fresh  ResourceMask
}

// System is one step of the tick pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Access() Access
	Update()
}
