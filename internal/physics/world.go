package physics

import (
	"log"

	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World answers spatial queries against the colliders of one scene and
// moves kinematic bodies.
type World struct {
	Scene *engine.Scene
}

func NewWorld(scene *engine.Scene) *World {
	return &World{Scene: scene}
}

// AttachCollisionShape adds c to g. Only static objects are expected to
// receive shapes this way; it does not add a Rigidbody.
func (p *World) AttachCollisionShape(g *engine.GameObject, c Collider) {
	if g == nil || g.Destroyed() {
		return
	}
	g.AddComponent(c)
	if mesh, ok := c.(*MeshCollider); ok {
		log.Printf("Colliders: attached %d triangles to %q", mesh.TriangleCount(), g.Name)
	}
}

// Colliders returns every live collider in the scene.
func (p *World) Colliders() []Collider {
	var out []Collider
	p.eachCollider(func(_ *engine.GameObject, c Collider) {
		out = append(out, c)
	})
	return out
}

func (p *World) eachCollider(fn func(*engine.GameObject, Collider)) {
	if p.Scene == nil {
		return
	}
	for _, obj := range p.Scene.GameObjects {
		if obj.Destroyed() || !obj.Active {
			continue
		}
		for _, c := range obj.Components() {
			if col, ok := c.(Collider); ok {
				fn(obj, col)
			}
		}
	}
}

// Step advances kinematic bodies by their velocity and pushes them out of
// every collider that does not belong to another rigidbody.
func (p *World) Step(deltaTime float32) {
	if p.Scene == nil {
		return
	}
	for _, m := range engine.Query[*Rigidbody](p.Scene) {
		rb := m.Component
		if !rb.IsKinematic || !m.Object.Active {
			continue
		}
		obj := m.Object
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
		rb.Grounded = false

		shape := engine.GetComponent[Collider](obj)
		if shape == nil {
			continue
		}
		p.eachCollider(func(other *engine.GameObject, c Collider) {
			if other == obj || engine.HasComponent[*Rigidbody](other) {
				return
			}
			push := p.resolveKinematic(shape, c)
			if push == (rl.Vector3{}) {
				return
			}
			obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)
			if push.Y > 0 {
				rb.Grounded = true
				if rb.Velocity.Y < 0 {
					rb.Velocity.Y = 0
				}
			} else if push.Y < 0 && rb.Velocity.Y > 0 {
				rb.Velocity.Y = 0
			}
		})
	}
}

// resolveKinematic returns the push-out vector for shape against static.
func (p *World) resolveKinematic(shape, static Collider) rl.Vector3 {
	if !shape.Bounds().Intersects(static.Bounds()) {
		return rl.Vector3{}
	}
	switch s := shape.(type) {
	case *CapsuleCollider:
		a, b := s.Segment()
		var total rl.Vector3
		// Sample spheres along the segment, bottom first
		for _, t := range []float32{0, 0.5, 1} {
			center := rl.Vector3Lerp(a, b, t)
			center = rl.Vector3Add(center, total)
			total = rl.Vector3Add(total, pushSphere(center, s.Radius, static))
		}
		return total
	case *SphereCollider:
		return pushSphere(s.Center(), s.Radius, static)
	case *BoxCollider:
		if box, ok := static.(*BoxCollider); ok {
			return s.Bounds().Resolve(box.Bounds())
		}
	}
	return rl.Vector3{}
}

func pushSphere(center rl.Vector3, radius float32, static Collider) rl.Vector3 {
	switch c := static.(type) {
	case *MeshCollider:
		if hit, push := c.SphereIntersect(center, radius); hit {
			return push
		}
	case *BoxCollider:
		box := c.Bounds()
		closest := box.ClosestPoint(center)
		diff := rl.Vector3Subtract(center, closest)
		dist := rl.Vector3Length(diff)
		if dist >= radius {
			return rl.Vector3{}
		}
		if dist < 1e-4 {
			// Center inside the box: leave through the nearest face
			sphereBox := NewAABBFromCenter(center, rl.Vector3{X: radius * 2, Y: radius * 2, Z: radius * 2})
			return sphereBox.Resolve(box)
		}
		return rl.Vector3Scale(diff, (radius-dist)/dist)
	case *SphereCollider:
		other := c.Center()
		diff := rl.Vector3Subtract(center, other)
		dist := rl.Vector3Length(diff)
		overlap := radius + c.Radius - dist
		if overlap <= 0 {
			return rl.Vector3{}
		}
		if dist < 1e-4 {
			return rl.Vector3{Y: overlap}
		}
		return rl.Vector3Scale(diff, overlap/dist)
	case *CapsuleCollider:
		a, b := c.Segment()
		axis := closestPointOnSegment(center, a, b)
		diff := rl.Vector3Subtract(center, axis)
		dist := rl.Vector3Length(diff)
		overlap := radius + c.Radius - dist
		if overlap <= 0 {
			return rl.Vector3{}
		}
		if dist < 1e-4 {
			return rl.Vector3{Y: overlap}
		}
		return rl.Vector3Scale(diff, overlap/dist)
	}
	return rl.Vector3{}
}
