// Package spawn turns SceneSpawnRequests into renderable, soon-to-be
// collidable scene objects.
package spawn

import (
	"log"

	"walk3d/internal/assets"
	"walk3d/internal/components"
	"walk3d/internal/engine"
)

// Loader starts an asynchronous load and returns its handle immediately.
type Loader interface {
	Load(path string) assets.Handle
}

type Composer struct {
	Assets Loader
}

func NewComposer(loader Loader) *Composer {
	return &Composer{Assets: loader}
}

// Update consumes every pending spawn request in the scene and returns how
// many were handled. Each request is removed in the same call; loading the
// referenced asset continues in the background.
func (c *Composer) Update(scene *engine.Scene) int {
	handled := 0
	for _, m := range engine.Query[*components.SceneSpawnRequest](scene) {
		obj, req := m.Object, m.Component

		obj.Transform = req.Transform
		scenePath := assets.ScenePath(req.Path)
		meshPath := assets.MeshPath(req.Path)

		engine.ReplaceComponent(obj, &components.SceneRenderer{Handle: c.Assets.Load(scenePath)})
		engine.ReplaceComponent(obj, &components.PendingCollider{Mesh: c.Assets.Load(meshPath)})
		obj.RemoveComponent(req)

		log.Printf("Spawn: %q -> %s, %s", obj.Name, scenePath, meshPath)
		handled++
	}
	return handled
}

// Request attaches a spawn request for path to a new object and adds it to scene.
func Request(scene *engine.Scene, name, path string, transform engine.Transform) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.AddComponent(components.NewSceneSpawnRequest(path, transform))
	scene.AddGameObject(obj)
	return obj
}
