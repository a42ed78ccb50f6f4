package terrain

import (
	"github.com/gdamore/tcell/v2"
)

// Kind classifies a tile
type Kind uint8

const (
	KindFloor Kind = iota
	KindRock
	KindGold
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindRock:
		return "rock"
	case KindGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Tile is one static map cell with its display glyph
type Tile struct {
	Kind     Kind
	Rune     rune
	Style    tcell.Style
	Walkable bool
}

var (
	floorTile = Tile{
		Kind:     KindFloor,
		Rune:     '.',
		Style:    tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
		Walkable: true,
	}
	rockTile = Tile{
		Kind:  KindRock,
		Rune:  '#',
		Style: tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown).Background(tcell.ColorBlack),
	}
	goldTile = Tile{
		Kind:     KindGold,
		Rune:     '*',
		Style:    tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorBlack),
		Walkable: true,
	}
)

// TileOf returns the canonical tile for kind
func TileOf(kind Kind) Tile {
	switch kind {
	case KindRock:
		return rockTile
	case KindGold:
		return goldTile
	default:
		return floorTile
	}
}

// Map is a dense row-major tile grid; it satisfies engine.Terrain
type Map struct {
	rows, cols int
	tiles      []Tile
}

// NewMap creates a map of floor tiles
func NewMap(rows, cols int) *Map {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	tiles := make([]Tile, rows*cols)
	for i := range tiles {
		tiles[i] = floorTile
	}
	return &Map{rows: rows, cols: cols, tiles: tiles}
}

func (m *Map) Rows() int { return m.rows }
func (m *Map) Cols() int { return m.cols }

// InBounds reports whether (row, col) lies on the map
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Walkable reports terrain walkability; out of bounds is never walkable
func (m *Map) Walkable(row, col int) bool {
	if !m.InBounds(row, col) {
		return false
	}
	return m.tiles[row*m.cols+col].Walkable
}

// At returns the tile at (row, col); out of bounds yields a rock tile
func (m *Map) At(row, col int) Tile {
	if !m.InBounds(row, col) {
		return rockTile
	}
	return m.tiles[row*m.cols+col]
}

// Set replaces the tile at (row, col); out of bounds is ignored
func (m *Map) Set(row, col int, kind Kind) {
	if m.InBounds(row, col) {
		m.tiles[row*m.cols+col] = TileOf(kind)
	}
}

// Cells returns the coordinates of every tile of kind, row-major
func (m *Map) Cells(kind Kind) [][2]int {
	var out [][2]int
	for i, t := range m.tiles {
		if t.Kind == kind {
			out = append(out, [2]int{i / m.cols, i % m.cols})
		}
	}
	return out
}

// Count returns the number of tiles of kind
func (m *Map) Count(kind Kind) int {
	n := 0
	for _, t := range m.tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
