package components

import (
	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		FOV:        fov,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera builds a raylib camera from the owner's world placement,
// looking along its rotated -Z axis.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	rot := g.WorldRotation()
	forward := rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, rot)
	up := rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rot)

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// CameraState holds accumulated look angles in radians.
type CameraState struct {
	engine.BaseComponent
	Yaw         float32
	Pitch       float32
	InvertLook  bool
	Sensitivity float32
}

func NewCameraState(sensitivity float32, invert bool) *CameraState {
	return &CameraState{Sensitivity: sensitivity, InvertLook: invert}
}

// TimeOfImpact is the interaction reach of a camera, in world units.
type TimeOfImpact struct {
	engine.BaseComponent
	Distance float32
}

func NewTimeOfImpact(distance float32) *TimeOfImpact {
	return &TimeOfImpact{Distance: distance}
}
