// Package interact casts the player's aim ray and dispatches interaction
// effects to whatever Interactable it hits first.
package interact

import (
	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/physics"
	"walk3d/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RayCaster interface {
	CastRay(origin, direction rl.Vector3, maxToi float32, solid bool, filter physics.QueryFilter) (physics.RaycastHit, bool)
}

// DebugDrawer receives the aim ray every tick.
type DebugDrawer interface {
	Line(start, end rl.Vector3, color rl.Color)
}

// Hit is published for every interactable the ray activates.
type Hit struct {
	Target   *engine.GameObject
	Kind     components.InteractionKind
	Distance float32
}

type Raycaster struct {
	Physics RayCaster
	Effects *EffectTable
	Gizmos  DebugDrawer
	Hits    engine.EventWithArg[Hit]
}

func NewRaycaster(caster RayCaster, effects *EffectTable, gizmos DebugDrawer) *Raycaster {
	return &Raycaster{Physics: caster, Effects: effects, Gizmos: gizmos}
}

// Update casts one ray from the camera towards the forward helper. A hit on
// an Interactable runs its effect immediately. The ray is drawn for the full
// reach whether or not it hits.
func (r *Raycaster) Update(scene *engine.Scene) error {
	body, pb, err := player.FindBody(scene)
	if err != nil {
		return err
	}
	camera, _, err := player.FindCamera(scene)
	if err != nil {
		return err
	}
	helper, err := player.FindForwardHelper(scene, pb)
	if err != nil {
		return err
	}

	maxToi := float32(0)
	if toi := engine.GetComponent[*components.TimeOfImpact](camera); toi != nil {
		maxToi = toi.Distance
	}

	origin := camera.WorldPosition()
	dir := rl.Vector3Normalize(rl.Vector3Subtract(helper.WorldPosition(), origin))
	if dir == (rl.Vector3{}) {
		return nil
	}

	if r.Gizmos != nil {
		r.Gizmos.Line(origin, rl.Vector3Add(origin, rl.Vector3Scale(dir, maxToi)), rl.Green)
	}

	filter := physics.QueryFilter{}.ExcludeCollider(body)
	hit, ok := r.Physics.CastRay(origin, dir, maxToi, true, filter)
	if !ok || hit.GameObject == nil {
		return nil
	}
	target := engine.GetComponent[*components.Interactable](hit.GameObject)
	if target == nil {
		return nil
	}
	if r.Effects != nil {
		r.Effects.Invoke(target.Kind, hit.GameObject)
	}
	r.Hits.Invoke(Hit{Target: hit.GameObject, Kind: target.Kind, Distance: hit.Distance})
	return nil
}
