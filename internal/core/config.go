package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Won    bool // Goal reached; terminal for the episode
	Down   bool // Player fell into a pit and waits for a reset
	Paused bool // Whether the game is paused
}

// EventKind identifies a notable simulation event.
type EventKind int

const (
	EventWon EventKind = iota
	EventFell
	EventRevived
	EventPitsRegenerated
	EventWallsRegenerated
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWon:
		return "won"
	case EventFell:
		return "fell"
	case EventRevived:
		return "revived"
	case EventPitsRegenerated:
		return "pits_regenerated"
	case EventWallsRegenerated:
		return "walls_regenerated"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the platform to observe (logging, notifications).
type Event struct {
	Kind  EventKind
	Count int // Kind-specific payload, e.g. number of cells regenerated
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
