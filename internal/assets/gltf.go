package assets

import (
	"fmt"
	"os"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelLoader loads glTF/GLB (and any other format raylib understands) through
// rl.LoadModel. It uploads to the GPU, so it must run on the window thread:
// use it with Options{Workers: 0} and call Server.Pump from the game loop.
//
// raylib flattens every glTF primitive into its own mesh, so each mesh is
// exposed as Mesh<i>/Primitive0 and the whole model as Scene0.
type ModelLoader struct{}

func (ModelLoader) LoadContainer(path string) (*Container, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 || model.Meshes == nil {
		rl.UnloadModel(model)
		return nil, fmt.Errorf("%s: no meshes", path)
	}

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	c := &Container{
		Scenes: []*SceneData{{Model: model}},
		Meshes: make([][]*MeshData, 0, len(meshes)),
		Release: func() {
			rl.UnloadModel(model)
		},
	}
	for i := range meshes {
		c.Meshes = append(c.Meshes, []*MeshData{extractMesh(&meshes[i])})
	}
	return c, nil
}

// extractMesh copies positions and indices out of raylib-owned memory.
func extractMesh(mesh *rl.Mesh) *MeshData {
	data := &MeshData{}
	if mesh.Vertices == nil || mesh.VertexCount == 0 {
		return data
	}

	vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
	data.Positions = make([]rl.Vector3, mesh.VertexCount)
	for i := range data.Positions {
		data.Positions[i] = rl.Vector3{X: vertices[i*3+0], Y: vertices[i*3+1], Z: vertices[i*3+2]}
	}

	if mesh.Indices != nil {
		// Indexed mesh
		indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
		data.Indices = make([]uint32, len(indices))
		for i, idx := range indices {
			data.Indices[i] = uint32(idx)
		}
	} else {
		// Non-indexed mesh (every 3 vertices = 1 triangle)
		triCount := int(mesh.VertexCount) / 3
		data.Indices = make([]uint32, triCount*3)
		for i := range data.Indices {
			data.Indices[i] = uint32(i)
		}
	}
	return data
}
