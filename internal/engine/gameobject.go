package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  NewTransform(rl.Vector3{}),
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// RemoveComponent detaches c from the object. Returns false if c was not attached.
func (g *GameObject) RemoveComponent(c Component) bool {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i:i], g.components[i+1:]...)
			c.SetGameObject(nil)
			return true
		}
	}
	return false
}

// GetComponent returns the first component assignable to T, or the zero value.
// T may be a concrete pointer type or an interface.
func GetComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// HasComponent reports whether g carries a component assignable to T.
func HasComponent[T any](g *GameObject) bool {
	if g == nil {
		return false
	}
	for _, c := range g.components {
		if _, ok := c.(T); ok {
			return true
		}
	}
	return false
}

// RemoveComponents detaches every component assignable to T and returns how many were removed.
func RemoveComponents[T any](g *GameObject) int {
	removed := 0
	kept := g.components[:0:0]
	for _, c := range g.components {
		if _, ok := c.(T); ok {
			c.SetGameObject(nil)
			removed++
			continue
		}
		kept = append(kept, c)
	}
	g.components = kept
	return removed
}

// ReplaceComponent attaches c after removing any component of the same type T,
// keeping at most one T per object.
func ReplaceComponent[T Component](g *GameObject, c T) {
	RemoveComponents[T](g)
	g.AddComponent(c)
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

// Update runs every component's Update. It iterates a snapshot so components may
// add or remove components on their own object while updating.
func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.Components() {
		c.Update(deltaTime)
	}
}

func (g *GameObject) FixedUpdate(step float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.Components() {
		if f, ok := c.(FixedUpdater); ok {
			f.FixedUpdate(step)
		}
	}
}

// Components returns a copy of the attached components.
func (g *GameObject) Components() []Component {
	out := make([]Component, len(g.components))
	copy(out, g.components)
	return out
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Destroyed reports whether the object has been destroyed through its Scene.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil && child.Scene == nil {
		g.Scene.AddGameObject(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix composes the local matrices from the root down to this object.
func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return rl.Vector3Transform(rl.Vector3{}, g.WorldMatrix())
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
