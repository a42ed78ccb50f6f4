package constant

import "time"

// Worker defaults
const (
	// DefaultWorkerSpeed is actions per second
	DefaultWorkerSpeed = 4
	DefaultWorkerCount = 4

	WorkerRune = '@'
	OreRune    = '$'
)

// WorkerNames cycle through spawned workers
var WorkerNames = []string{"Karen", "Loren", "Charlie", "Justin"}

// Tick pacing
const (
	DefaultTickInterval = 50 * time.Millisecond
)

// Map defaults
const (
	DefaultMapRows   = 50
	DefaultMapCols   = 80
	DefaultGoldCount = 64
	DefaultGoldSize  = 6
	DefaultWallLevel = 0.68
)
