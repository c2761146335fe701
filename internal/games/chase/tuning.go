package chase

import "time"

// World geometry. Cell (i, j) starts at x = i*CellWidth - 7.5, y = j*CellDepth - 10.
const (
	GridSize  = 10
	CellWidth = 1.5
	CellDepth = 2.0

	originX = -7.5
	originY = -10.0
)

// Player movement bounds and steps.
const (
	MinX = -7.5
	MaxX = 7.0
	MinY = -10.0
	MaxY = 9.5

	SlowStep     = 0.1
	FastStep     = 0.2
	JumpDistance = 3.0

	// A jump only fires while the player has not passed these thresholds.
	jumpUpBelow     = 6.0
	jumpDownAbove   = -6.0
	jumpRightBelow  = 4.0
	jumpLeftAbove   = -4.0
	FloorElevation  = 6.5
	SinkRate        = 0.1
	wallCenterDX    = 0.75
	wallCenterDY    = 0.1
	wallHalfX       = 1.25 // horizontal push-back half extent
	wallHalfY       = 1.5  // vertical push-back half extent
	wallReachNarrow = 1.0  // lateral tolerance for vertical push-back
)

// Hazard timing.
const (
	PitPeriod     = 7 * time.Second
	WallStep      = 0.02
	WallMaxHeight = 4.0
)

// Goal placement.
const (
	GoalX      = 6.5
	GoalY      = 9.0
	goalReachX = 6.0
	goalReachY = 8.0
	GoalSpin   = 5.0 // degrees per tick while the rotation display is on
)

// Start position: centre of cell (0, 0) on top of the floor.
const (
	StartX = -6.75
	StartY = -9.0
)
