package player

import (
	"log"

	"walk3d/internal/components"
	"walk3d/internal/engine"
)

// Cursor captures and releases the OS pointer.
type Cursor interface {
	Lock()
	Unlock()
}

// CursorToggle keeps pointer capture and movement input in step: the cursor
// is locked exactly when the player may move.
type CursorToggle struct {
	Cursor Cursor
	locked bool
}

func NewCursorToggle(cursor Cursor) *CursorToggle {
	return &CursorToggle{Cursor: cursor}
}

func (c *CursorToggle) Locked() bool {
	return c.locked
}

// Toggle flips the lock state.
func (c *CursorToggle) Toggle(scene *engine.Scene) error {
	return c.Set(scene, !c.locked)
}

// Set applies locked to the cursor and to the player's input flag together.
// Nothing changes when the player is missing.
func (c *CursorToggle) Set(scene *engine.Scene, locked bool) error {
	body, _, err := FindBody(scene)
	if err != nil {
		return err
	}
	movement := engine.GetComponent[*components.PlayerMovement](body)
	if movement == nil {
		return ErrPlayerNotFound
	}

	if locked {
		c.Cursor.Lock()
	} else {
		c.Cursor.Unlock()
	}
	movement.EnableInput = locked
	c.locked = locked
	log.Printf("Player: cursor locked=%v", locked)
	return nil
}
