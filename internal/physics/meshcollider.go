package physics

import (
	"math"

	"walk3d/internal/assets"
	"walk3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle represents a single triangle with precomputed normal
type Triangle struct {
	V0, V1, V2 rl.Vector3
	Normal     rl.Vector3
}

// BVHNode is a node in the bounding volume hierarchy
type BVHNode struct {
	Bounds    AABB
	Left      *BVHNode
	Right     *BVHNode
	Triangles []int // indices into the triangle array (only for leaf nodes)
}

// MeshCollider is a triangle mesh baked into world space when it is built.
// Moving the owner afterwards does not move the collider.
type MeshCollider struct {
	engine.BaseComponent
	Triangles []Triangle
	Root      *BVHNode
}

// NewMeshCollider bakes mesh through transform and builds the BVH.
// Degenerate triangles are skipped.
func NewMeshCollider(mesh *assets.MeshData, transform rl.Matrix) *MeshCollider {
	m := &MeshCollider{}
	if mesh == nil {
		return m
	}
	m.Triangles = make([]Triangle, 0, mesh.TriangleCount())
	for i := 0; i < mesh.TriangleCount(); i++ {
		a, b, c := mesh.Triangle(i)
		v0 := rl.Vector3Transform(a, transform)
		v1 := rl.Vector3Transform(b, transform)
		v2 := rl.Vector3Transform(c, transform)

		n := rl.Vector3CrossProduct(rl.Vector3Subtract(v1, v0), rl.Vector3Subtract(v2, v0))
		if rl.Vector3Length(n) < 1e-12 {
			continue
		}
		m.Triangles = append(m.Triangles, Triangle{V0: v0, V1: v1, V2: v2, Normal: rl.Vector3Normalize(n)})
	}
	m.buildBVH()
	return m
}

func (m *MeshCollider) TriangleCount() int {
	return len(m.Triangles)
}

func (m *MeshCollider) Bounds() AABB {
	if m.Root == nil {
		return AABB{}
	}
	return m.Root.Bounds
}

func (m *MeshCollider) buildBVH() {
	if len(m.Triangles) == 0 {
		return
	}
	indices := make([]int, len(m.Triangles))
	for i := range indices {
		indices[i] = i
	}
	m.Root = m.buildBVHNode(indices, 0)
}

func (m *MeshCollider) buildBVHNode(indices []int, depth int) *BVHNode {
	node := &BVHNode{Bounds: m.computeBounds(indices)}

	if len(indices) <= 4 || depth > 20 {
		node.Triangles = indices
		return node
	}

	// Split on the longest axis
	size := rl.Vector3Subtract(node.Bounds.Max, node.Bounds.Min)
	axis := 0
	if size.Y > size.X {
		axis = 1
	}
	if size.Z > axisValue(size, axis) {
		axis = 2
	}

	mid := m.partitionTriangles(indices, axis)
	if mid == 0 || mid == len(indices) {
		node.Triangles = indices
		return node
	}

	node.Left = m.buildBVHNode(indices[:mid], depth+1)
	node.Right = m.buildBVHNode(indices[mid:], depth+1)
	return node
}

func (m *MeshCollider) computeBounds(indices []int) AABB {
	bounds := emptyAABB()
	for _, idx := range indices {
		tri := &m.Triangles[idx]
		bounds = bounds.Extend(tri.V0).Extend(tri.V1).Extend(tri.V2)
	}
	return bounds
}

// partitionTriangles splits indices around the mean centroid on axis.
func (m *MeshCollider) partitionTriangles(indices []int, axis int) int {
	center := float32(0)
	for _, idx := range indices {
		center += axisValue(m.Triangles[idx].centroid(), axis)
	}
	center /= float32(len(indices))

	left := 0
	right := len(indices) - 1
	for left <= right {
		if axisValue(m.Triangles[indices[left]].centroid(), axis) < center {
			left++
		} else {
			indices[left], indices[right] = indices[right], indices[left]
			right--
		}
	}
	return left
}

func (t *Triangle) centroid() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(t.V0, t.V1), t.V2), 1.0/3.0)
}

func axisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SphereIntersect tests if a sphere intersects the mesh and returns push-out vector.
// The deepest contact is resolved first and the rest are re-tested from the
// pushed position, so coplanar neighbours do not add sideways pushes.
func (m *MeshCollider) SphereIntersect(center rl.Vector3, radius float32) (bool, rl.Vector3) {
	if m.Root == nil {
		return false, rl.Vector3{}
	}

	var totalPush rl.Vector3
	hit := false
	for iter := 0; iter < 4; iter++ {
		query := AABB{
			Min: rl.Vector3{X: center.X - radius, Y: center.Y - radius, Z: center.Z - radius},
			Max: rl.Vector3{X: center.X + radius, Y: center.Y + radius, Z: center.Z + radius},
		}

		var deepest rl.Vector3
		depth := float32(0)
		for _, idx := range m.queryBVH(m.Root, query) {
			collides, push := sphereTriangleIntersect(center, radius, &m.Triangles[idx])
			if !collides {
				continue
			}
			if d := rl.Vector3Length(push); d > depth {
				depth = d
				deepest = push
			}
		}
		if depth < 1e-6 {
			break
		}
		center = rl.Vector3Add(center, deepest)
		totalPush = rl.Vector3Add(totalPush, deepest)
		hit = true
	}
	return hit, totalPush
}

func (m *MeshCollider) queryBVH(node *BVHNode, query AABB) []int {
	var out []int
	var walk func(n *BVHNode)
	walk = func(n *BVHNode) {
		if n == nil || !n.Bounds.Intersects(query) {
			return
		}
		// Leaves share the index array, copy out instead of appending to them
		out = append(out, n.Triangles...)
		walk(n.Left)
		walk(n.Right)
	}
	walk(node)
	return out
}

// CastRay returns the nearest triangle hit. A triangle mesh has no interior,
// so solid has no effect.
func (m *MeshCollider) CastRay(origin, dir rl.Vector3, maxToi float32, solid bool) (float32, rl.Vector3, bool) {
	best := maxToi
	var normal rl.Vector3
	found := false

	var walk func(node *BVHNode)
	walk = func(node *BVHNode) {
		if node == nil {
			return
		}
		tmin, _, ok := rayAABB(origin, dir, node.Bounds)
		if !ok || tmin > best {
			return
		}
		for _, idx := range node.Triangles {
			tri := &m.Triangles[idx]
			if t, ok := rayTriangle(origin, dir, tri); ok && t <= best {
				best = t
				normal = tri.Normal
				found = true
			}
		}
		walk(node.Left)
		walk(node.Right)
	}
	walk(m.Root)

	if !found {
		return 0, rl.Vector3{}, false
	}
	// Report the face turned towards the ray
	if rl.Vector3DotProduct(normal, dir) > 0 {
		normal = rl.Vector3Negate(normal)
	}
	return best, normal, true
}

// rayTriangle is the Möller-Trumbore intersection test, double sided.
func rayTriangle(origin, dir rl.Vector3, tri *Triangle) (float32, bool) {
	const eps = 1e-7
	e1 := rl.Vector3Subtract(tri.V1, tri.V0)
	e2 := rl.Vector3Subtract(tri.V2, tri.V0)
	p := rl.Vector3CrossProduct(dir, e2)
	det := rl.Vector3DotProduct(e1, p)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det
	s := rl.Vector3Subtract(origin, tri.V0)
	u := rl.Vector3DotProduct(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := rl.Vector3CrossProduct(s, e1)
	v := rl.Vector3DotProduct(dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := rl.Vector3DotProduct(e2, q) * inv
	return t, t >= 0
}

// sphereTriangleIntersect tests sphere vs triangle and returns push vector
func sphereTriangleIntersect(center rl.Vector3, radius float32, tri *Triangle) (bool, rl.Vector3) {
	closest := closestPointOnTriangle(center, tri.V0, tri.V1, tri.V2)

	diff := rl.Vector3Subtract(center, closest)
	distSq := rl.Vector3DotProduct(diff, diff)
	if distSq >= radius*radius {
		return false, rl.Vector3{}
	}

	dist := float32(math.Sqrt(float64(distSq)))
	if dist < 0.0001 {
		// Center is on triangle, push along normal
		return true, rl.Vector3Scale(tri.Normal, radius)
	}

	pushDir := rl.Vector3Scale(diff, 1.0/dist)
	return true, rl.Vector3Scale(pushDir, radius-dist)
}

// closestPointOnTriangle finds the closest point on a triangle to point p
func closestPointOnTriangle(p, a, b, c rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	ap := rl.Vector3Subtract(p, a)

	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return rl.Vector3Add(a, rl.Vector3Scale(ab, v))
	}

	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return rl.Vector3Add(a, rl.Vector3Scale(ac, w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w))
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}
