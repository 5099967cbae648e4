package physics

import (
	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// QueryFilter narrows which colliders a query may report.
// The zero value accepts everything.
type QueryFilter struct {
	excluded  map[uint64]struct{}
	Predicate func(*engine.GameObject) bool
}

// ExcludeCollider returns a copy of f that skips every collider on g.
func (f QueryFilter) ExcludeCollider(g *engine.GameObject) QueryFilter {
	out := QueryFilter{Predicate: f.Predicate, excluded: make(map[uint64]struct{}, len(f.excluded)+1)}
	for uid := range f.excluded {
		out.excluded[uid] = struct{}{}
	}
	if g != nil {
		out.excluded[g.UID] = struct{}{}
	}
	return out
}

// Accepts reports whether g passes the filter.
func (f QueryFilter) Accepts(g *engine.GameObject) bool {
	if _, skip := f.excluded[g.UID]; skip {
		return false
	}
	return f.Predicate == nil || f.Predicate(g)
}

// CastRay returns the nearest collider hit within maxToi along direction.
// A zero direction never hits.
func (p *World) CastRay(origin, direction rl.Vector3, maxToi float32, solid bool, filter QueryFilter) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	if direction == (rl.Vector3{}) || maxToi < 0 {
		return RaycastHit{}, false
	}

	closest := RaycastHit{Distance: maxToi}
	hit := false
	p.eachCollider(func(obj *engine.GameObject, c Collider) {
		if !filter.Accepts(obj) {
			return
		}
		toi, normal, ok := c.CastRay(origin, direction, closest.Distance, solid)
		if !ok || (hit && toi >= closest.Distance) {
			return
		}
		closest = RaycastHit{
			GameObject: obj,
			Point:      rl.Vector3Add(origin, rl.Vector3Scale(direction, toi)),
			Normal:     normal,
			Distance:   toi,
		}
		hit = true
	})
	return closest, hit
}
