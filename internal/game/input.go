package game

import (
	"walk3d/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FrameInput is everything read from devices at the start of a frame.
type FrameInput struct {
	Motion          rl.Vector2
	Move            player.Input
	ToggleCursor    bool
	ToggleInspector bool
}

func sampleInput() FrameInput {
	var in FrameInput
	in.Motion = rl.GetMouseDelta()

	if rl.IsKeyDown(rl.KeyW) {
		in.Move.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Move.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Move.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Move.Right--
	}
	in.Move.Jump = rl.IsKeyDown(rl.KeySpace)

	in.ToggleCursor = rl.IsKeyPressed(rl.KeyEscape)
	in.ToggleInspector = rl.IsKeyPressed(rl.KeyF1)
	return in
}

// raylibCursor captures the pointer through raylib.
type raylibCursor struct{}

func (raylibCursor) Lock()   { rl.DisableCursor() }
func (raylibCursor) Unlock() { rl.EnableCursor() }
