package world

import (
	"log"

	"walk3d/internal/assets"
	"walk3d/internal/components"
	"walk3d/internal/config"
	"walk3d/internal/engine"
	"walk3d/internal/physics"
	"walk3d/internal/spawn"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const GroundTag = "Ground"

type World struct {
	Scene    *engine.Scene
	Physics  *physics.World
	Assets   *assets.Server
	Renderer *Renderer
	Gizmos   *Gizmos
}

func New(server *assets.Server) *World {
	scene := engine.NewScene("Main")
	return &World{
		Scene:    scene,
		Physics:  physics.NewWorld(scene),
		Assets:   server,
		Renderer: NewRenderer(server),
		Gizmos:   &Gizmos{},
	}
}

// Populate adds the ground and one spawn request per configured spawn.
// Nothing is loaded here; the scene composer picks the requests up on the
// next update.
func (w *World) Populate(cfg *config.Config) []*engine.GameObject {
	if cfg.Ground.Enabled {
		w.addGround(cfg.Ground.Size)
	}

	spawned := make([]*engine.GameObject, 0, len(cfg.Spawns))
	for _, s := range cfg.Spawns {
		transform := engine.NewTransform(s.Position.Vector3())
		transform.SetEulerDegrees(s.RotationDeg[0], s.RotationDeg[1], s.RotationDeg[2])
		if s.Scale != nil {
			transform.Scale = s.Scale.Vector3()
		}

		obj := spawn.Request(w.Scene, s.Name, s.Path, transform)
		if s.Interactable != "" {
			obj.AddComponent(components.NewInteractable(components.InteractionKind(s.Interactable)))
		}
		spawned = append(spawned, obj)
	}
	log.Printf("World: queued %d spawns", len(spawned))
	return spawned
}

func (w *World) addGround(size float32) *engine.GameObject {
	ground := engine.NewGameObject("Ground")
	ground.Tags = []string{GroundTag}
	ground.Transform.Position = rl.Vector3{Y: -0.5}
	w.Scene.AddGameObject(ground)
	w.Physics.AttachCollisionShape(ground, physics.NewBoxCollider(rl.Vector3{X: size, Y: 1, Z: size}))
	return ground
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) Unload() {
	w.Assets.Close()
	w.Assets.Unload()
}
