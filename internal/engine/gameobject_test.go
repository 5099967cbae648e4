package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
	fixed   int
}

func (c *countingComponent) Start()                   { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }
func (c *countingComponent) FixedUpdate(step float32) { c.fixed++ }

type selfRemovingComponent struct {
	BaseComponent
}

func (c *selfRemovingComponent) Update(deltaTime float32) {
	c.GetGameObject().RemoveComponent(c)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearVec(a, b rl.Vector3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}
	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}
	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"static", "interactable"}

	if !obj.HasTag("static") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectReparent(t *testing.T) {
	first := NewGameObject("First")
	second := NewGameObject("Second")
	child := NewGameObject("Child")

	first.AddChild(child)
	second.AddChild(child)

	if len(first.Children) != 0 {
		t.Errorf("Expected old parent to lose the child, has %d children", len(first.Children))
	}
	if child.Parent != second {
		t.Error("Child should belong to the new parent")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}
	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}
	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectAddComponentAfterStart(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.starts != 1 {
		t.Errorf("Component added after Start should start immediately, got %d starts", comp.starts)
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}
	obj.AddComponent(comp)

	if found := GetComponent[*BaseComponent](obj); found != comp {
		t.Error("GetComponent failed to find component")
	}
	if found := GetComponent[*countingComponent](obj); found != nil {
		t.Error("GetComponent should return nil for a missing type")
	}
	if found := GetComponent[FixedUpdater](obj); found != nil {
		t.Error("GetComponent by interface should return nil when nothing implements it")
	}
	if GetComponent[*BaseComponent](nil) != nil {
		t.Error("GetComponent on nil object should return nil")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	a := &countingComponent{}
	b := &BaseComponent{}
	obj.AddComponent(a)
	obj.AddComponent(b)

	if !obj.RemoveComponent(a) {
		t.Fatal("RemoveComponent should report success")
	}
	if obj.RemoveComponent(a) {
		t.Error("Removing twice should report false")
	}
	if HasComponent[*countingComponent](obj) {
		t.Error("Removed component still attached")
	}
	if a.GetGameObject() != nil {
		t.Error("Removed component should forget its owner")
	}
	if !HasComponent[*BaseComponent](obj) {
		t.Error("Other components should be untouched")
	}
}

func TestReplaceComponentKeepsOne(t *testing.T) {
	obj := NewGameObject("Test")
	first := &countingComponent{}
	second := &countingComponent{}

	ReplaceComponent(obj, first)
	ReplaceComponent(obj, second)

	if n := len(obj.Components()); n != 1 {
		t.Fatalf("Expected exactly 1 component, got %d", n)
	}
	if GetComponent[*countingComponent](obj) != second {
		t.Error("ReplaceComponent should keep the newest component")
	}
}

func TestGameObjectUpdateAllowsSelfRemoval(t *testing.T) {
	obj := NewGameObject("Test")
	remover := &selfRemovingComponent{}
	counter := &countingComponent{}
	obj.AddComponent(remover)
	obj.AddComponent(counter)

	obj.Update(0.016)

	if counter.updates != 1 {
		t.Errorf("Component after a self-removing one should still update, got %d", counter.updates)
	}
	if HasComponent[*selfRemovingComponent](obj) {
		t.Error("Self-removing component should be gone")
	}
}

func TestGameObjectFixedUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	counter := &countingComponent{}
	obj.AddComponent(counter)
	obj.AddComponent(&BaseComponent{})

	obj.FixedUpdate(1.0 / 60)
	obj.Active = false
	obj.FixedUpdate(1.0 / 60)

	if counter.fixed != 1 {
		t.Errorf("Expected 1 fixed update, got %d", counter.fixed)
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	counter := &countingComponent{}
	obj.AddComponent(counter)

	obj.Start()
	obj.Start()

	if counter.starts != 1 {
		t.Errorf("Expected Start once, got %d", counter.starts)
	}
}

func TestWorldPositionFollowsParentRotation(t *testing.T) {
	body := NewGameObject("Body")
	body.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	body.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2)

	helper := NewGameObject("Helper")
	helper.Transform.Position = rl.Vector3{Z: -1}
	body.AddChild(helper)

	// Turning 90 degrees left about +Y maps local -Z onto world -X.
	want := rl.Vector3{X: 0, Y: 2, Z: 3}
	if got := helper.WorldPosition(); !nearVec(got, want) {
		t.Errorf("Expected helper at %v, got %v", want, got)
	}
}

func TestWorldPositionNestedPitch(t *testing.T) {
	body := NewGameObject("Body")
	camera := NewGameObject("Camera")
	helper := NewGameObject("Helper")
	helper.Transform.Position = rl.Vector3{Z: -1}
	body.AddChild(camera)
	camera.AddChild(helper)

	camera.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, -math.Pi/2)

	// Pitching fully down points the helper straight below the camera.
	want := rl.Vector3{Y: -1}
	if got := helper.WorldPosition(); !nearVec(got, want) {
		t.Errorf("Expected helper at %v, got %v", want, got)
	}
}

func TestWorldScale(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	child := NewGameObject("Child")
	child.Transform.Scale = rl.Vector3{X: 0.5, Y: 1, Z: 3}
	parent.AddChild(child)

	want := rl.Vector3{X: 1, Y: 2, Z: 6}
	if got := child.WorldScale(); !nearVec(got, want) {
		t.Errorf("Expected world scale %v, got %v", want, got)
	}
}
