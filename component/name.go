package component

// NameComponent is a display name for workers
type NameComponent struct {
	Name string
}
