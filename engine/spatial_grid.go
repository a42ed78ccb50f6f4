package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/vi-colony/component"
	"github.com/lixenwraith/vi-colony/core"
)

const (
	cellBlocked  byte = 0
	cellPassable byte = 1
)

// SpatialGrid is the per-tick walkability snapshot: terrain walkable AND unoccupied
// Dense row-major layout, index = row*Cols + col
type SpatialGrid struct {
	Rows  int
	Cols  int
	cells []byte
}

// NewSpatialGrid creates an all-blocked grid of the given shape
func NewSpatialGrid(rows, cols int) *SpatialGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &SpatialGrid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]byte, rows*cols),
	}
}

// InBounds reports whether (row, col) lies on the grid
func (g *SpatialGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Passable reports whether a move into (row, col) is allowed; out of bounds is never passable
func (g *SpatialGrid) Passable(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.Cols+col] == cellPassable
}

// Rebuild recomputes every cell from terrain and current positions
// Reshapes to the terrain if dimensions differ; out-of-range positions are skipped and returned
func (g *SpatialGrid) Rebuild(terrain Terrain, positions *Store[component.PositionComponent]) []core.Entity {
	rows, cols := terrain.Rows(), terrain.Cols()
	if rows != g.Rows || cols != g.Cols {
		g.Rows = rows
		g.Cols = cols
		g.cells = make([]byte, rows*cols)
	}

	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			if terrain.Walkable(r, c) {
				g.cells[base+c] = cellPassable
			} else {
				g.cells[base+c] = cellBlocked
			}
		}
	}

	var outOfRange []core.Entity
	for _, e := range positions.All() {
		pos, ok := positions.Get(e)
		if !ok {
			continue
		}
		if !g.InBounds(pos.Row, pos.Col) {
			outOfRange = append(outOfRange, e)
			continue
		}
		g.cells[pos.Row*g.Cols+pos.Col] = cellBlocked
	}
	return outOfRange
}

// Occupy marks a cell blocked after a committed move
func (g *SpatialGrid) Occupy(row, col int) {
	if g.InBounds(row, col) {
		g.cells[row*g.Cols+col] = cellBlocked
	}
}

// Vacate restores a cell to its terrain walkability after its occupant left
func (g *SpatialGrid) Vacate(terrain Terrain, row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	if terrain.Walkable(row, col) {
		g.cells[row*g.Cols+col] = cellPassable
	} else {
		g.cells[row*g.Cols+col] = cellBlocked
	}
}

// Fingerprint hashes the snapshot; equal grids of equal shape hash equally
func (g *SpatialGrid) Fingerprint() uint64 {
	d := xxhash.New()
	var shape [16]byte
	binary.LittleEndian.PutUint64(shape[:8], uint64(g.Rows))
	binary.LittleEndian.PutUint64(shape[8:], uint64(g.Cols))
	_, _ = d.Write(shape[:])
	_, _ = d.Write(g.cells)
	return d.Sum64()
}

// Snapshot returns a row-major copy for debug overlays
func (g *SpatialGrid) Snapshot() [][]bool {
	out := make([][]bool, g.Rows)
	for r := range out {
		row := make([]bool, g.Cols)
		base := r * g.Cols
		for c := range row {
			row[c] = g.cells[base+c] == cellPassable
		}
		out[r] = row
	}
	return out
}

// PassableCount returns the number of passable cells
func (g *SpatialGrid) PassableCount() int {
	n := 0
	for _, c := range g.cells {
		if c == cellPassable {
			n++
		}
	}
	return n
}
