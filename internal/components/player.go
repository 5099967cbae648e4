package components

import (
	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ForwardHelper marks the child placed one unit in front of the camera.
// Its world position minus the aim origin is the aim direction.
type ForwardHelper struct {
	engine.BaseComponent
}

// PlayerBody marks the single player-controlled kinematic body.
type PlayerBody struct {
	engine.BaseComponent
	ForwardHelper engine.GameObjectRef
	SpawnPoint    rl.Vector3
}

type PlayerMovement struct {
	engine.BaseComponent
	MoveSpeed    float32
	JumpStrength float32
	Gravity      float32
	EnableInput  bool
}

func NewPlayerMovement() *PlayerMovement {
	return &PlayerMovement{
		MoveSpeed:    6.0,
		JumpStrength: 7.0,
		Gravity:      20.0,
		EnableInput:  true,
	}
}
