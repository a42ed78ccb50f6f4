package component

// PositionComponent is the grid cell an entity occupies
// Row in [0,rows), Col in [0,cols); written only by the action scheduler after setup
type PositionComponent struct {
	Row int
	Col int
}
