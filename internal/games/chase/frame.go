package chase

import (
	"time"

	"github.com/vovakirdan/queenchase/internal/core"
)

// CellView describes one board cell for presentation.
type CellView struct {
	Cell Cell
	// Pos is the cell's minimum corner; Z is the wall height offset.
	Pos     core.Vec3
	Visible bool // false while the cell is a pit
	Wall    bool
}

// GoalView describes the goal marker.
type GoalView struct {
	Pos      core.Vec3
	Visible  bool
	Spinning bool
	Spin     float64 // degrees
}

// Frame is everything a presentation layer needs to draw one tick.
type Frame struct {
	Cells  [GridSize][GridSize]CellView
	Player Player
	Goal   GoalView
	Camera Camera

	// HUD
	Speed      int
	Fast       bool
	Elapsed    time.Duration
	NextPits   time.Duration
	WallStride int
	WallHeight float64
	WallPhase  WallPhase
	Outcome    Outcome
	Paused     bool
}

// BuildFrame projects the simulation state into a Frame.
func BuildFrame(st *SimulationState, stride int, paused bool) Frame {
	f := Frame{
		Player: st.Player,
		Goal: GoalView{
			Pos:      core.V3(GoalX, GoalY, FloorElevation),
			Visible:  st.WinTicks == 0,
			Spinning: st.Rotating,
			Spin:     st.GoalSpin,
		},
		Camera:     st.Camera,
		Speed:      st.Intent.Speed,
		Fast:       st.Intent.Fast(),
		Elapsed:    st.Clock,
		WallStride: stride,
		WallHeight: st.WallHeight,
		WallPhase:  st.WallPhase,
		Outcome:    st.Outcome,
		Paused:     paused,
	}

	if left := PitPeriod - (st.Clock - st.LastPitRegen); left > 0 {
		f.NextPits = left
	}

	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			c := Cell{I: i, J: j}
			x, y := c.Origin()
			v := CellView{Cell: c, Pos: core.V3(x, y, 0), Visible: !st.Pits.Has(c)}
			if st.Walls.Has(c) {
				v.Wall = true
				v.Pos.Z = st.WallHeight
			}
			f.Cells[i][j] = v
		}
	}
	return f
}
