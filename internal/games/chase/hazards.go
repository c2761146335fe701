package chase

import (
	"time"

	"github.com/vovakirdan/queenchase/internal/core"
)

// Scheduler advances the pit timer and the wall height cycle and
// regenerates hazard layouts when they are due.
type Scheduler struct {
	stride int
	draws  drawer
}

// NewScheduler creates a scheduler raising wall candidates every stride rows.
func NewScheduler(stride int, d drawer) *Scheduler {
	if stride < 1 {
		stride = 1
	}
	return &Scheduler{stride: stride, draws: d}
}

// Stride returns the wall row stride.
func (s *Scheduler) Stride() int {
	return s.stride
}

// Tick runs one scheduler step. st.Clock must already include this tick's
// elapsed time; now is the wall-clock time used by clock-seeded draws.
func (s *Scheduler) Tick(st *SimulationState, now time.Time) []core.Event {
	var events []core.Event

	if st.Clock-st.LastPitRegen > PitPeriod {
		n := s.RegeneratePits(st, now)
		st.LastPitRegen = st.Clock
		events = append(events, core.Event{Kind: core.EventPitsRegenerated, Count: n})
	}

	switch {
	case st.WallHeight >= WallMaxHeight:
		st.WallPhase = WallFalling
	case st.WallHeight <= 0:
		st.WallPhase = WallRising
		n := s.RegenerateWalls(st, now)
		events = append(events, core.Event{Kind: core.EventWallsRegenerated, Count: n})
	}

	if st.WallPhase == WallRising {
		st.WallHeight += WallStep
	} else {
		st.WallHeight -= WallStep
	}
	st.WallHeight = core.ClampF(st.WallHeight, 0, WallMaxHeight)

	return events
}

// RegeneratePits clears the pit mask and places at most one pit per row.
// Returns the number of pits placed.
func (s *Scheduler) RegeneratePits(st *SimulationState, now time.Time) int {
	st.Pits.Clear()
	player, onBoard := st.Player.Cell()

	for i := 0; i < GridSize; i++ {
		d := s.draws.draw(now)
		c := Cell{I: i, J: (d * i * i * i) % GridSize}
		if c.Reserved() || st.Walls.Has(c) || (onBoard && c == player) {
			continue
		}
		st.Pits.Set(c)
	}
	return st.Pits.Count()
}

// RegenerateWalls clears the wall mask and places at most one wall in every
// stride-th row. Returns the number of walls placed.
func (s *Scheduler) RegenerateWalls(st *SimulationState, now time.Time) int {
	st.Walls.Clear()

	for i := 0; i < GridSize; i += s.stride {
		d := s.draws.draw(now)
		c := Cell{I: i, J: (d * i) % GridSize}
		if c.Reserved() || st.Pits.Has(c) {
			continue
		}
		st.Walls.Set(c)
	}
	return st.Walls.Count()
}
