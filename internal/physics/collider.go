package physics

import (
	"math"

	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a collision shape attached to a GameObject. Shapes are
// evaluated in world space from the owner's current transform.
type Collider interface {
	engine.Component
	Bounds() AABB
	// CastRay returns the distance along a normalized ray to the shape
	// boundary. With solid set, a ray starting inside reports distance 0.
	CastRay(origin, dir rl.Vector3, maxToi float32, solid bool) (toi float32, normal rl.Vector3, ok bool)
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// Bounds ignores rotation; boxes stay axis-aligned in world space.
func (b *BoxCollider) Bounds() AABB {
	g := b.GetGameObject()
	scale := g.WorldScale()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	size := rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
	return NewAABBFromCenter(center, size)
}

func (b *BoxCollider) CastRay(origin, dir rl.Vector3, maxToi float32, solid bool) (float32, rl.Vector3, bool) {
	box := b.Bounds()
	tmin, tmax, ok := rayAABB(origin, dir, box)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	t := tmin
	if tmin < 0 {
		if solid {
			return 0, rl.Vector3Negate(dir), true
		}
		t = tmax
	}
	if t > maxToi {
		return 0, rl.Vector3{}, false
	}
	return t, boxNormal(box, rl.Vector3Add(origin, rl.Vector3Scale(dir, t))), true
}

// boxNormal picks the face of box closest to p.
func boxNormal(box AABB, p rl.Vector3) rl.Vector3 {
	best := absf(p.X - box.Min.X)
	normal := rl.Vector3{X: -1}
	faces := []struct {
		d float32
		n rl.Vector3
	}{
		{absf(p.X - box.Max.X), rl.Vector3{X: 1}},
		{absf(p.Y - box.Min.Y), rl.Vector3{Y: -1}},
		{absf(p.Y - box.Max.Y), rl.Vector3{Y: 1}},
		{absf(p.Z - box.Min.Z), rl.Vector3{Z: -1}},
		{absf(p.Z - box.Max.Z), rl.Vector3{Z: 1}},
	}
	for _, f := range faces {
		if f.d < best {
			best = f.d
			normal = f.n
		}
	}
	return normal
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) Center() rl.Vector3 {
	return rl.Vector3Add(s.GetGameObject().WorldPosition(), s.Offset)
}

func (s *SphereCollider) Bounds() AABB {
	d := s.Radius * 2
	return NewAABBFromCenter(s.Center(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) CastRay(origin, dir rl.Vector3, maxToi float32, solid bool) (float32, rl.Vector3, bool) {
	center := s.Center()
	near, far, ok := raySphere(origin, dir, center, s.Radius)
	if !ok || far < 0 {
		return 0, rl.Vector3{}, false
	}
	t := near
	if near < 0 {
		if solid {
			return 0, rl.Vector3Negate(dir), true
		}
		t = far
	}
	if t > maxToi {
		return 0, rl.Vector3{}, false
	}
	hit := rl.Vector3Add(origin, rl.Vector3Scale(dir, t))
	return t, rl.Vector3Normalize(rl.Vector3Subtract(hit, center)), true
}

// CapsuleCollider is a segment from A to B in the owner's local space,
// swept by Radius.
type CapsuleCollider struct {
	engine.BaseComponent
	A      rl.Vector3
	B      rl.Vector3
	Radius float32
}

func NewCapsuleCollider(a, b rl.Vector3, radius float32) *CapsuleCollider {
	return &CapsuleCollider{A: a, B: b, Radius: radius}
}

// Segment returns the capsule's end points in world space.
func (c *CapsuleCollider) Segment() (rl.Vector3, rl.Vector3) {
	m := c.GetGameObject().WorldMatrix()
	return rl.Vector3Transform(c.A, m), rl.Vector3Transform(c.B, m)
}

func (c *CapsuleCollider) Bounds() AABB {
	a, b := c.Segment()
	r := rl.Vector3{X: c.Radius, Y: c.Radius, Z: c.Radius}
	box := emptyAABB().Extend(a).Extend(b)
	return AABB{Min: rl.Vector3Subtract(box.Min, r), Max: rl.Vector3Add(box.Max, r)}
}

func (c *CapsuleCollider) CastRay(origin, dir rl.Vector3, maxToi float32, solid bool) (float32, rl.Vector3, bool) {
	a, b := c.Segment()
	inside := rl.Vector3Distance(origin, closestPointOnSegment(origin, a, b)) <= c.Radius
	if inside && solid {
		return 0, rl.Vector3Negate(dir), true
	}

	// Entry is the smallest non-negative crossing; exit (for rays starting
	// inside) is the largest.
	best := float32(math.MaxFloat32)
	found := false
	consider := func(t float32) {
		if t < 0 {
			return
		}
		if inside {
			if !found || t > best {
				best = t
			}
		} else if t < best {
			best = t
		}
		found = true
	}

	ab := rl.Vector3Subtract(b, a)
	ao := rl.Vector3Subtract(origin, a)
	abab := rl.Vector3DotProduct(ab, ab)
	abd := rl.Vector3DotProduct(ab, dir)
	abao := rl.Vector3DotProduct(ab, ao)
	qa := abab - abd*abd
	qb := abab*rl.Vector3DotProduct(ao, dir) - abao*abd
	qc := abab*rl.Vector3DotProduct(ao, ao) - abao*abao - c.Radius*c.Radius*abab
	if qa > 1e-8 {
		if disc := qb*qb - qa*qc; disc >= 0 {
			sq := float32(math.Sqrt(float64(disc)))
			for _, t := range []float32{(-qb - sq) / qa, (-qb + sq) / qa} {
				y := abao + t*abd
				if y >= 0 && y <= abab {
					consider(t)
				}
			}
		}
	}
	for _, center := range []rl.Vector3{a, b} {
		if near, far, ok := raySphere(origin, dir, center, c.Radius); ok {
			consider(near)
			consider(far)
		}
	}

	if !found || best > maxToi {
		return 0, rl.Vector3{}, false
	}
	hit := rl.Vector3Add(origin, rl.Vector3Scale(dir, best))
	axis := closestPointOnSegment(hit, a, b)
	return best, rl.Vector3Normalize(rl.Vector3Subtract(hit, axis)), true
}

// raySphere returns both crossings of a normalized ray with a sphere.
func raySphere(origin, dir, center rl.Vector3, radius float32) (near, far float32, ok bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	return -b - sq, -b + sq, true
}

func closestPointOnSegment(p, a, b rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	denom := rl.Vector3DotProduct(ab, ab)
	if denom < 1e-8 {
		return a
	}
	t := clampf(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/denom, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}
