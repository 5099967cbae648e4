package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject registers g and all of its descendants with the scene.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if _, exists := s.uidMap[g.UID]; exists {
		return
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
	for _, child := range g.Children {
		s.AddGameObject(child)
	}
}

// RemoveGameObject unregisters g and its descendants without marking them destroyed.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			if g.Scene == s {
				g.Scene = nil
			}
			return
		}
	}
}

// Destroy removes g and its descendants from the scene and marks them destroyed.
// Systems holding a pointer must check Destroyed before acting on it.
func (s *Scene) Destroy(g *GameObject) {
	for _, child := range append([]*GameObject(nil), g.Children...) {
		s.Destroy(child)
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.RemoveGameObject(g)
	g.destroyed = true
}

// FindByUID returns the object with the given UID, or nil.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Match pairs an object with one of its components.
type Match[T any] struct {
	Object    *GameObject
	Component T
}

// Query returns every live object carrying a component assignable to T.
// The result is a snapshot; callers may add, remove and destroy while iterating.
func Query[T any](s *Scene) []Match[T] {
	var result []Match[T]
	for _, g := range s.GameObjects {
		if g.destroyed {
			continue
		}
		for _, c := range g.components {
			if typed, ok := c.(T); ok {
				result = append(result, Match[T]{Object: g, Component: typed})
				break
			}
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.snapshot() {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.snapshot() {
		g.Update(deltaTime)
	}
}

func (s *Scene) FixedUpdate(step float32) {
	for _, g := range s.snapshot() {
		g.FixedUpdate(step)
	}
}

func (s *Scene) snapshot() []*GameObject {
	out := make([]*GameObject, len(s.GameObjects))
	copy(out, s.GameObjects)
	return out
}
