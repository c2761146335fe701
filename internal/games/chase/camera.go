package chase

import "github.com/vovakirdan/queenchase/internal/core"

// CameraPreset names one of the fixed viewpoints.
type CameraPreset int

const (
	CameraAngled CameraPreset = iota
	CameraTop
	CameraPlayer
	CameraBehind
)

func (p CameraPreset) String() string {
	switch p {
	case CameraTop:
		return "top"
	case CameraPlayer:
		return "player"
	case CameraBehind:
		return "behind"
	default:
		return "angled"
	}
}

// Camera is an eye/target/up triple. The player-relative presets capture the
// player's position at the moment they are selected.
type Camera struct {
	Preset CameraPreset
	Eye    core.Vec3
	Target core.Vec3
	Up     core.Vec3
}

// CameraFor builds the camera for a preset given the player's position.
func CameraFor(preset CameraPreset, player core.Vec3) Camera {
	zUp := core.V3(0, 0, 1)
	switch preset {
	case CameraTop:
		return Camera{Preset: preset, Eye: core.V3(0, 0, 10), Target: core.V3(0, 0, -10), Up: core.V3(0, 1, 0)}
	case CameraPlayer:
		return Camera{Preset: preset, Eye: player, Target: player.Neg(), Up: zUp}
	case CameraBehind:
		return Camera{Preset: preset, Eye: player.Add(core.V3(-0.2, -0.2, -0.2)), Target: core.V3(2, 2, 1), Up: zUp}
	default:
		return Camera{Preset: CameraAngled, Eye: core.V3(2, -10, 7), Target: core.V3(-5, 3, -7), Up: zUp}
	}
}
