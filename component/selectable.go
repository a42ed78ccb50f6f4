package component

// SelectableComponent marks an entity as box-selectable
type SelectableComponent struct {
	Selected bool
}
