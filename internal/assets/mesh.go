package assets

import rl "github.com/gen2brain/raylib-go/raylib"

// MeshData is CPU-side triangle geometry in the mesh's local space.
// Indices always describe triangles; unindexed sources get sequential indices.
type MeshData struct {
	Positions []rl.Vector3
	Indices   []uint32
}

func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three corner positions of triangle i.
func (m *MeshData) Triangle(i int) (a, b, c rl.Vector3) {
	return m.Positions[m.Indices[i*3]], m.Positions[m.Indices[i*3+1]], m.Positions[m.Indices[i*3+2]]
}

// Valid reports whether every index is in range and the index count is a multiple of three.
func (m *MeshData) Valid() bool {
	if len(m.Indices)%3 != 0 {
		return false
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return false
		}
	}
	return true
}

// SceneData is a renderable scene sub-resource.
type SceneData struct {
	Model rl.Model
}

// Container is everything a loader extracted from one asset file.
// Meshes[i][j] is primitive j of mesh i.
type Container struct {
	Scenes  []*SceneData
	Meshes  [][]*MeshData
	Release func()
}

func (c *Container) resolve(l Label) (any, error) {
	switch l.Kind {
	case LabelScene:
		if l.Index < len(c.Scenes) {
			return c.Scenes[l.Index], nil
		}
	case LabelMesh:
		if l.Index < len(c.Meshes) && l.Primitive < len(c.Meshes[l.Index]) {
			return c.Meshes[l.Index][l.Primitive], nil
		}
	case LabelNone:
		return c, nil
	}
	return nil, ErrUnknownLabel
}
