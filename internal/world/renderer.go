package world

import (
	"walk3d/internal/assets"
	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneSource is the read side of the asset server used for drawing.
type SceneSource interface {
	TryGetScene(h assets.Handle) (*assets.SceneData, bool)
}

type Renderer struct {
	Assets        SceneSource
	DrawColliders bool
	GridSlices    int32
}

func NewRenderer(source SceneSource) *Renderer {
	return &Renderer{Assets: source, GridSlices: 40}
}

// Draw renders the ground, every loaded scene and, when enabled, collider
// bounds inside the view. Call inside BeginMode3D.
func (r *Renderer) Draw(scene *engine.Scene, camera rl.Camera3D, aspect float32) {
	for _, g := range scene.FindByTag(GroundTag) {
		if box := engine.GetComponent[*physics.BoxCollider](g); box != nil {
			b := box.Bounds()
			rl.DrawCubeV(b.Center(), rl.Vector3Subtract(b.Max, b.Min), rl.LightGray)
		}
	}
	rl.DrawGrid(r.GridSlices, 1)

	for _, m := range engine.Query[*components.SceneRenderer](scene) {
		data, ok := r.Assets.TryGetScene(m.Component.Handle)
		if !ok {
			continue
		}
		model := data.Model
		model.Transform = m.Object.WorldMatrix()
		rl.DrawModel(model, rl.Vector3{}, 1, rl.White)
	}

	if r.DrawColliders {
		frustum := ExtractFrustum(camera, aspect)
		r.drawColliders(scene, &frustum)
	}
}

func (r *Renderer) drawColliders(scene *engine.Scene, frustum *Frustum) {
	for _, m := range engine.Query[physics.Collider](scene) {
		box := m.Component.Bounds()
		if !frustum.ContainsAABB(box) {
			continue
		}
		color := rl.Orange
		if mesh, ok := m.Component.(*physics.MeshCollider); ok {
			color = rl.SkyBlue
			for i := range mesh.Triangles {
				t := &mesh.Triangles[i]
				rl.DrawTriangle3D(t.V0, t.V1, t.V2, rl.Fade(color, 0.15))
			}
		}
		rl.DrawBoundingBox(rl.BoundingBox{Min: box.Min, Max: box.Max}, color)
	}
}
