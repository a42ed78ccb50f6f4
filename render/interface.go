package render

import "github.com/gdamore/tcell/v2"

// Layer draws one aspect of a frame onto the screen
type Layer interface {
	Render(frame *Frame, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
