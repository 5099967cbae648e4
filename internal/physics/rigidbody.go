package physics

import (
	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody marks a collider owner as moved by the physics step.
// Only kinematic bodies are integrated: Velocity is applied as-is and the
// body is pushed out of static geometry.
type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	IsKinematic bool

	// Grounded is set by the last Step when the body was pushed upwards.
	Grounded bool
}

func NewKinematicBody() *Rigidbody {
	return &Rigidbody{IsKinematic: true}
}
