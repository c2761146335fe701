package chase

import "github.com/vovakirdan/queenchase/internal/core"

// Direction is the active movement direction of the player.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// directionOf maps a direction action to its Direction.
func directionOf(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// Intent is the movement the player is currently asking for.
type Intent struct {
	Dir Direction
	// Jump holds one pending jump flag per direction, consumed by the
	// controller when the jump fires.
	Jump     [5]bool
	JumpHeld bool
	// Speed is unbounded; movement is fast while it is positive.
	Speed int
}

// Fast reports whether the fast step is in effect.
func (in *Intent) Fast() bool {
	return in.Speed > 0
}

// consumeJump clears the pending jump for d and reports whether it should
// fire. A flag stays pending while the threshold condition is not met.
func (in *Intent) consumeJump(d Direction, allowed bool) bool {
	if !in.Jump[d] || !allowed {
		return false
	}
	in.Jump[d] = false
	return true
}

// ApplyKey folds one key event into the simulation state.
// Pause, new game and quit are not handled here; the game driver and the
// platform own them.
func ApplyKey(st *SimulationState, ev core.KeyEvent) []core.Event {
	in := &st.Intent

	if ev.Action.IsDirection() {
		d := directionOf(ev.Action)
		if !ev.Pressed {
			if in.Dir == d {
				in.Dir = DirNone
			}
			return nil
		}
		if st.Player.State != Alive {
			return nil
		}
		in.Dir = d
		if in.JumpHeld {
			in.Jump[d] = true
		}
		return nil
	}

	if ev.Action == core.ActionJump {
		in.JumpHeld = ev.Pressed
		if ev.Pressed && in.Dir != DirNone {
			in.Jump[in.Dir] = true
		}
		return nil
	}

	if !ev.Pressed {
		return nil
	}

	switch ev.Action {
	case core.ActionReset:
		st.Player = startPlayer()
		return []core.Event{{Kind: core.EventRevived}}
	case core.ActionFaster:
		in.Speed++
	case core.ActionSlower:
		in.Speed--
	case core.ActionToggleRotation:
		st.Rotating = !st.Rotating
	case core.ActionCameraAngled:
		st.Camera = CameraFor(CameraAngled, st.Player.Pos)
	case core.ActionCameraTop:
		st.Camera = CameraFor(CameraTop, st.Player.Pos)
	case core.ActionCameraPlayer:
		st.Camera = CameraFor(CameraPlayer, st.Player.Pos)
	case core.ActionCameraBehind:
		st.Camera = CameraFor(CameraBehind, st.Player.Pos)
	}
	return nil
}
