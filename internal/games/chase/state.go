package chase

import (
	"time"

	"github.com/vovakirdan/queenchase/internal/core"
)

// PlayerState is the player's life cycle: Alive -> Falling -> (reset) -> Alive.
type PlayerState int

const (
	Alive PlayerState = iota
	Falling
)

func (s PlayerState) String() string {
	if s == Falling {
		return "falling"
	}
	return "alive"
}

// Outcome is the episode result. Won is terminal within an episode.
type Outcome int

const (
	Playing Outcome = iota
	Won
)

func (o Outcome) String() string {
	if o == Won {
		return "won"
	}
	return "playing"
}

// WallPhase is the direction the shared wall height is moving in.
type WallPhase int

const (
	WallRising WallPhase = iota
	WallFalling
)

func (p WallPhase) String() string {
	if p == WallFalling {
		return "falling"
	}
	return "rising"
}

// Player is the avatar's world position and life state.
type Player struct {
	Pos   core.Vec3
	State PlayerState
}

// Cell returns the board cell under the player.
func (p Player) Cell() (Cell, bool) {
	return CellAt(p.Pos.X, p.Pos.Y)
}

func startPlayer() Player {
	return Player{Pos: core.V3(StartX, StartY, FloorElevation), State: Alive}
}

// SimulationState holds everything one episode mutates.
// Scheduler, controller and resolver all operate on it by reference.
type SimulationState struct {
	Tick  uint64
	Clock time.Duration // unpaused wall-clock time since the episode began

	// Hazards
	Pits         Mask
	Walls        Mask
	WallHeight   float64
	WallPhase    WallPhase
	LastPitRegen time.Duration

	Player  Player
	Intent  Intent
	Outcome Outcome
	// WinTicks counts ticks spent past the goal threshold.
	WinTicks int

	// Cosmetic
	Camera   Camera
	Rotating bool
	GoalSpin float64
}

// NewSimulationState returns the state at the start of an episode.
func NewSimulationState() *SimulationState {
	st := &SimulationState{Player: startPlayer()}
	st.Camera = CameraFor(CameraAngled, st.Player.Pos)
	return st
}
