package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Transform is a local placement relative to the parent GameObject.
// Rotation is a unit quaternion; use SetEulerDegrees for authoring convenience.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// NewTransform returns an identity transform at the given position.
func NewTransform(position rl.Vector3) Transform {
	return Transform{
		Position: position,
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// SetEulerDegrees sets the rotation from X (pitch), Y (yaw), Z (roll) angles in degrees.
func (t *Transform) SetEulerDegrees(x, y, z float32) {
	t.Rotation = rl.QuaternionFromEuler(x*rl.Deg2rad, y*rl.Deg2rad, z*rl.Deg2rad)
}

// Matrix returns the local matrix: scale -> rotate -> translate.
func (t Transform) Matrix() rl.Matrix {
	scaleMatrix := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rotMatrix := rl.QuaternionToMatrix(t.Rotation)
	transMatrix := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
}

// Forward returns the local -Z axis rotated by this transform's rotation.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, t.Rotation)
}
