package component

import "github.com/gdamore/tcell/v2"

// GlyphComponent is the display character and color of an entity
type GlyphComponent struct {
	Rune  rune
	Style tcell.Style
}
