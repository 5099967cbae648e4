// Package look turns pointer motion into camera pitch and body yaw.
package look

import (
	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pitch limits in radians.
const (
	MinPitch = -85 * rl.Deg2rad
	MaxPitch = 80 * rl.Deg2rad
)

// SignMultiplier returns +1 when invert is set and -1 otherwise.
func SignMultiplier(invert bool) float32 {
	if invert {
		return 1
	}
	return -1
}

// Integrate folds one motion sample into state and clamps pitch.
func Integrate(state *components.CameraState, delta rl.Vector2) {
	sign := SignMultiplier(state.InvertLook)
	state.Yaw += delta.X / 180 * sign * state.Sensitivity
	state.Pitch += delta.Y / 180 * sign * state.Sensitivity
	state.Pitch = rl.Clamp(state.Pitch, MinPitch, MaxPitch)
}

// Update applies every queued sample in order, then writes the pitch to the
// camera and the yaw to the player body. Rotations are written even when no
// motion arrived.
func Update(scene *engine.Scene, motion []rl.Vector2) error {
	camera, state, err := player.FindCamera(scene)
	if err != nil {
		return err
	}
	body, _, err := player.FindBody(scene)
	if err != nil {
		return err
	}

	for _, delta := range motion {
		Integrate(state, delta)
	}

	camera.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, state.Pitch)
	body.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, state.Yaw)
	return nil
}
