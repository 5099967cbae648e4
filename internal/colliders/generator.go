// Package colliders builds triangle-mesh collision shapes for objects whose
// source mesh is still loading.
package colliders

import (
	"fmt"
	"log"

	"walk3d/internal/assets"
	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/physics"
)

// MeshSource is the polling surface of the asset server.
type MeshSource interface {
	TryGetMesh(h assets.Handle) (*assets.MeshData, bool)
	State(h assets.Handle) assets.LoadState
	Err(h assets.Handle) error
}

type ShapeAttacher interface {
	AttachCollisionShape(g *engine.GameObject, c physics.Collider)
}

// Failure describes a pending collider that was given up on.
type Failure struct {
	Object   *engine.GameObject
	Path     string
	Attempts int
	Waited   float32
	Err      error
}

type Generator struct {
	Assets  MeshSource
	Physics ShapeAttacher

	// MaxAttempts and MaxWait (seconds) bound how long a request is polled.
	// Zero means unbounded.
	MaxAttempts int
	MaxWait     float32

	Failures engine.EventWithArg[Failure]

	failed int
}

func NewGenerator(source MeshSource, attacher ShapeAttacher) *Generator {
	return &Generator{Assets: source, Physics: attacher}
}

// Update polls every pending collider once. Requests whose mesh is ready get a
// shape attached and are removed; the rest are retried next call unless they
// failed or ran out of time. Returns the number of shapes attached.
func (g *Generator) Update(scene *engine.Scene, deltaTime float32) int {
	attached := 0
	for _, m := range engine.Query[*components.PendingCollider](scene) {
		obj, pending := m.Object, m.Component
		if obj.Destroyed() {
			continue
		}
		pending.Attempts++
		pending.Waited += deltaTime

		if mesh, ok := g.Assets.TryGetMesh(pending.Mesh); ok {
			if !mesh.Valid() {
				g.fail(obj, pending, fmt.Errorf("%w: %s: index out of range", assets.ErrAssetResolutionFailed, pending.Mesh.Path))
				continue
			}
			g.Physics.AttachCollisionShape(obj, physics.NewMeshCollider(mesh, obj.WorldMatrix()))
			obj.RemoveComponent(pending)
			attached++
			continue
		}

		switch {
		case g.Assets.State(pending.Mesh) == assets.Failed:
			err := g.Assets.Err(pending.Mesh)
			if err == nil {
				err = fmt.Errorf("%w: %s", assets.ErrAssetResolutionFailed, pending.Mesh.Path)
			}
			g.fail(obj, pending, err)
		case g.MaxAttempts > 0 && pending.Attempts >= g.MaxAttempts:
			g.fail(obj, pending, fmt.Errorf("%w: %s not ready after %d attempts", assets.ErrAssetResolutionFailed, pending.Mesh.Path, pending.Attempts))
		case g.MaxWait > 0 && pending.Waited >= g.MaxWait:
			g.fail(obj, pending, fmt.Errorf("%w: %s not ready after %.1fs", assets.ErrAssetResolutionFailed, pending.Mesh.Path, pending.Waited))
		}
	}
	return attached
}

func (g *Generator) fail(obj *engine.GameObject, pending *components.PendingCollider, err error) {
	log.Printf("Colliders: giving up on %q: %v", obj.Name, err)
	obj.RemoveComponent(pending)
	g.failed++
	g.Failures.Invoke(Failure{
		Object:   obj,
		Path:     pending.Mesh.Path,
		Attempts: pending.Attempts,
		Waited:   pending.Waited,
		Err:      err,
	})
}

// FailedCount returns how many requests have been given up on.
func (g *Generator) FailedCount() int {
	return g.failed
}

// PendingCount returns how many objects in scene still wait for a collider.
func PendingCount(scene *engine.Scene) int {
	return len(engine.Query[*components.PendingCollider](scene))
}
