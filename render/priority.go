package render

// RenderPriority determines layer order. Lower values render first
type RenderPriority int

const (
	PriorityTerrain RenderPriority = iota
	PriorityGrid
	PriorityEntities
	PriorityUI
)
