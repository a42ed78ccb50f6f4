package render

import (
	"fmt"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-colony/engine/status"
	"github.com/lixenwraith/vi-colony/terrain"
)

// Tiles is the static map the terrain layer draws
type Tiles interface {
	Rows() int
	Cols() int
	At(row, col int) terrain.Tile
}

// TerrainLayer draws the static tile map
type TerrainLayer struct {
	tiles Tiles
}

func NewTerrainLayer(tiles Tiles) *TerrainLayer {
	return &TerrainLayer{tiles: tiles}
}

func (l *TerrainLayer) Render(_ *Frame, screen tcell.Screen) {
	for r := 0; r < l.tiles.Rows(); r++ {
		for c := 0; c < l.tiles.Cols(); c++ {
			t := l.tiles.At(r, c)
			screen.SetContent(c, r, t.Rune, nil, t.Style)
		}
	}
}

var blockedStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Background(tcell.ColorBlack)

// GridLayer overlays impassable cells of the walkability snapshot; hidden by default
type GridLayer struct {
	visible atomic.Bool
}

func NewGridLayer() *GridLayer {
	return &GridLayer{}
}

// Toggle flips overlay visibility and returns the new state
func (l *GridLayer) Toggle() bool {
	for {
		old := l.visible.Load()
		if l.visible.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (l *GridLayer) IsVisible() bool {
	return l.visible.Load()
}

func (l *GridLayer) Render(frame *Frame, screen tcell.Screen) {
	for r, row := range frame.Passable {
		for c, passable := range row {
			if !passable {
				screen.SetContent(c, r, 'x', nil, blockedStyle)
			}
		}
	}
}

// EntityLayer draws every sprite; selected ones are shown reversed
type EntityLayer struct{}

func NewEntityLayer() *EntityLayer {
	return &EntityLayer{}
}

func (l *EntityLayer) Render(frame *Frame, screen tcell.Screen) {
	for _, s := range frame.Sprites {
		style := s.Style
		if s.Selected {
			style = style.Reverse(true)
		}
		screen.SetContent(s.Col, s.Row, s.Rune, nil, style)
	}
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)

// StatusLayer writes the counter line directly under the map
type StatusLayer struct{}

func NewStatusLayer() *StatusLayer {
	return &StatusLayer{}
}

func (l *StatusLayer) Render(frame *Frame, screen tcell.Screen) {
	drawText(screen, 0, frame.Rows, StatusLine(frame), statusStyle)
}

// StatusLine formats the counters shown under the map
func StatusLine(frame *Frame) string {
	c := frame.Counters
	return fmt.Sprintf("tick %s | moves %s | blocked %s | arrived %s | selected %d",
		humanize.Comma(c[status.EngineTicks]),
		humanize.Comma(c[status.ActorMoves]),
		humanize.Comma(c[status.ActorBlocked]),
		humanize.Comma(c[status.ActorArrived]),
		c[status.SelectionCount],
	)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
