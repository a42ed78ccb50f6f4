package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// OpenTerrain is a rectangular terrain, walkable everywhere except explicitly blocked cells
// Used by tests and as the fallback map
type OpenTerrain struct {
	rows, cols int
	blocked    map[[2]int]struct{}
}

// NewOpenTerrain creates an all-walkable terrain
func NewOpenTerrain(rows, cols int) *OpenTerrain {
	return &OpenTerrain{rows: rows, cols: cols, blocked: make(map[[2]int]struct{})}
}

// Block marks a cell unwalkable
func (t *OpenTerrain) Block(row, col int) {
	t.blocked[[2]int{row, col}] = struct{}{}
}

func (t *OpenTerrain) Rows() int { return t.rows }
func (t *OpenTerrain) Cols() int { return t.cols }

func (t *OpenTerrain) Walkable(row, col int) bool {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return false
	}
	_, blocked := t.blocked[[2]int{row, col}]
	return !blocked
}

// TestEpoch is the fixed start time of test clocks
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestWorld creates a world over open terrain with a seeded rng and a mock clock at TestEpoch
func NewTestWorld(rows, cols int, seed int64) (*World, *OpenTerrain, *MockTimeProvider) {
	terrain := NewOpenTerrain(rows, cols)
	res := NewResource(terrain, zap.NewNop(), rand.New(rand.NewSource(seed)))
	clock := NewMockTimeProvider(TestEpoch)
	res.Time.Update(clock.Now(), 0)
	return NewWorld(res), terrain, clock
}
