package components

import (
	"walk3d/internal/assets"
	"walk3d/internal/engine"
)

// SceneSpawnRequest asks for the asset at Path to be instanced on the owning
// object with Transform. It is consumed by the scene composer.
type SceneSpawnRequest struct {
	engine.BaseComponent
	Path      string
	Transform engine.Transform
}

func NewSceneSpawnRequest(path string, transform engine.Transform) *SceneSpawnRequest {
	return &SceneSpawnRequest{Path: path, Transform: transform}
}

// SceneRenderer draws the scene behind Handle once it is loaded.
type SceneRenderer struct {
	engine.BaseComponent
	Handle assets.Handle
}

// PendingCollider waits for the mesh behind Mesh to load so a triangle
// collider can be built from it.
type PendingCollider struct {
	engine.BaseComponent
	Mesh     assets.Handle
	Attempts int
	Waited   float32
}

// Interactable lets the interaction raycaster trigger an effect on its owner.
type Interactable struct {
	engine.BaseComponent
	Kind InteractionKind
}

type InteractionKind string

const InteractNotify InteractionKind = "notify"

func NewInteractable(kind InteractionKind) *Interactable {
	if kind == "" {
		kind = InteractNotify
	}
	return &Interactable{Kind: kind}
}
