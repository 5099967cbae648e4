package interact

import (
	"fmt"
	"log"
	"sync"

	"walk3d/internal/components"
	"walk3d/internal/engine"
)

// Effect runs when the player targets an Interactable of a given kind.
type Effect func(target *engine.GameObject)

// EffectTable maps interaction kinds to effects.
type EffectTable struct {
	effects map[components.InteractionKind]Effect
	warned  map[components.InteractionKind]bool
	mu      sync.Mutex
}

// NewEffectTable returns a table with the built-in notify effect.
func NewEffectTable() *EffectTable {
	t := &EffectTable{
		effects: make(map[components.InteractionKind]Effect),
		warned:  make(map[components.InteractionKind]bool),
	}
	t.Register(components.InteractNotify, func(target *engine.GameObject) {
		log.Printf("Interact: %s targeted", target.Name)
	})
	return t
}

// Register adds an effect. Registering a kind twice is a programming error.
func (t *EffectTable) Register(kind components.InteractionKind, effect Effect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.effects[kind]; exists {
		panic(fmt.Sprintf("interaction effect %q already registered", kind))
	}
	t.effects[kind] = effect
}

// Invoke runs the effect for kind on target. Unknown kinds are logged once
// and otherwise ignored. Reports whether an effect ran.
func (t *EffectTable) Invoke(kind components.InteractionKind, target *engine.GameObject) bool {
	t.mu.Lock()
	effect, ok := t.effects[kind]
	if !ok && !t.warned[kind] {
		t.warned[kind] = true
		log.Printf("Interact: no effect registered for kind %q", kind)
	}
	t.mu.Unlock()

	if !ok {
		return false
	}
	effect(target)
	return true
}
