package player

import (
	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one fixed step's worth of movement intent.
// Forward and Right are in [-1, 1].
type Input struct {
	Forward float32
	Right   float32
	Jump    bool
}

// Move sets the player body's velocity from input for the next physics step.
// Horizontal motion follows the body's yaw; gravity always applies so the
// physics step keeps reporting ground contact.
func Move(scene *engine.Scene, input Input, step float32) error {
	body, _, err := FindBody(scene)
	if err != nil {
		return err
	}
	movement := engine.GetComponent[*components.PlayerMovement](body)
	rb := engine.GetComponent[*physics.Rigidbody](body)
	if movement == nil || rb == nil {
		return nil
	}
	if !movement.EnableInput {
		input = Input{}
	}

	rot := body.Transform.Rotation
	forward := rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, rot)
	right := rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, rot)
	forward.Y, right.Y = 0, 0

	moveDir := rl.Vector3Add(rl.Vector3Scale(rl.Vector3Normalize(forward), input.Forward),
		rl.Vector3Scale(rl.Vector3Normalize(right), input.Right))
	if rl.Vector3Length(moveDir) > 1 {
		moveDir = rl.Vector3Normalize(moveDir)
	}

	rb.Velocity.X = moveDir.X * movement.MoveSpeed
	rb.Velocity.Z = moveDir.Z * movement.MoveSpeed

	if input.Jump && rb.Grounded {
		rb.Velocity.Y = movement.JumpStrength
		rb.Grounded = false
	}
	rb.Velocity.Y -= movement.Gravity * step
	return nil
}

// Respawn teleports every kinematic body that fell to floorY or below. Player
// bodies return to their own spawn point, others to fallback.
func Respawn(scene *engine.Scene, fallback rl.Vector3, floorY float32) int {
	respawned := 0
	for _, m := range engine.Query[*physics.Rigidbody](scene) {
		obj, rb := m.Object, m.Component
		if !rb.IsKinematic || obj.WorldPosition().Y > floorY {
			continue
		}
		target := fallback
		if pb := engine.GetComponent[*components.PlayerBody](obj); pb != nil {
			target = pb.SpawnPoint
		}
		obj.Transform.Position = target
		rb.Velocity = rl.Vector3{}
		rb.Grounded = false
		respawned++
	}
	return respawned
}
