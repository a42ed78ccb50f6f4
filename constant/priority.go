package constant

// System Execution Priorities (lower runs first)
// Order within a tick: input consumers, grid rebuild, decisions, then action completion
const (
	PrioritySelection = 10
	PriorityTask      = 20 // After selection, gated by its flag
	PriorityGrid      = 30 // Before anything that reads walkability
	PriorityWorker    = 40
	PriorityActor     = 50 // Last writer of positions
)
