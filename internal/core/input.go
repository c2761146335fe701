package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // Up arrow, k - move toward the far edge
	ActionDown                  // Down arrow, j - move toward the near edge
	ActionLeft                  // Left arrow, h
	ActionRight                 // Right arrow, l
	ActionJump                  // Space - jump modifier, combined with a held direction
	ActionReset                 // r - revive and return to the start cell
	ActionNewGame               // n - start a fresh episode
	ActionCameraAngled          // a
	ActionCameraTop             // t
	ActionCameraPlayer          // p
	ActionCameraBehind          // b
	ActionFaster                // f - speed counter +1
	ActionSlower                // s - speed counter -1
	ActionToggleRotation        // c - goal spin display
	ActionPause                 // Esc - pause/unpause
	ActionQuit                  // q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionReset:
		return "Reset"
	case ActionNewGame:
		return "NewGame"
	case ActionCameraAngled:
		return "CameraAngled"
	case ActionCameraTop:
		return "CameraTop"
	case ActionCameraPlayer:
		return "CameraPlayer"
	case ActionCameraBehind:
		return "CameraBehind"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionToggleRotation:
		return "ToggleRotation"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// KeyEvent is a single press or release of an action key.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// InputFrame represents the input delivered to the simulation for one tick.
// Events keep their arrival order so the latest event wins.
type InputFrame struct {
	// Time is the wall-clock timestamp of the tick consuming this frame.
	Time time.Time

	events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key press.
func (f *InputFrame) Press(a Action) {
	f.events = append(f.events, KeyEvent{Action: a, Pressed: true})
}

// Release records a key release.
func (f *InputFrame) Release(a Action) {
	f.events = append(f.events, KeyEvent{Action: a, Pressed: false})
}

// Events returns the recorded key events in arrival order.
func (f InputFrame) Events() []KeyEvent {
	return f.events
}

// Clear resets all events for the next frame. The timestamp is kept.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Time: f.Time}
	clone.events = append([]KeyEvent(nil), f.events...)
	return clone
}
