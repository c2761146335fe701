package chase

import (
	"time"

	"github.com/vovakirdan/queenchase/internal/core"
)

// Snapshot is a comparable copy of the simulation state, used to check that
// equal seeds and inputs produce equal episodes.
type Snapshot struct {
	Tick       uint64
	Clock      time.Duration
	PX, PY, PZ float64
	State      PlayerState
	Outcome    Outcome
	WinTicks   int
	Pits       Mask
	Walls      Mask
	WallHeight float64
	WallPhase  WallPhase
	Dir        Direction
	Speed      int
	Paused     bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	if g.st == nil {
		g.Reset(core.DefaultConfig())
	}
	st := g.st
	return Snapshot{
		Tick:       st.Tick,
		Clock:      st.Clock,
		PX:         st.Player.Pos.X,
		PY:         st.Player.Pos.Y,
		PZ:         st.Player.Pos.Z,
		State:      st.Player.State,
		Outcome:    st.Outcome,
		WinTicks:   st.WinTicks,
		Pits:       st.Pits,
		Walls:      st.Walls,
		WallHeight: st.WallHeight,
		WallPhase:  st.WallPhase,
		Dir:        st.Intent.Dir,
		Speed:      st.Intent.Speed,
		Paused:     g.paused,
	}
}
