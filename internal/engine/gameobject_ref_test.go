package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := RefTo(obj)

	found := ref.Get(scene)
	if found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")
	ref := GameObjectRef{UID: 0}

	if ref.Get(scene) != nil {
		t.Error("Get() with UID=0 should return nil")
	}

	ref2 := GameObjectRef{UID: 99999}
	if ref2.Get(scene) != nil {
		t.Error("Get() with non-existent UID should return nil")
	}

	ref3 := GameObjectRef{UID: 123}
	if ref3.Get(nil) != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefDestroyedTarget(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Helper")
	scene.AddGameObject(obj)
	ref := RefTo(obj)

	scene.Destroy(obj)

	if ref.Get(scene) != nil {
		t.Error("Get() should return nil once the target is destroyed")
	}
	if !ref.IsValid() {
		t.Error("IsValid only checks the UID and should still be true")
	}
}

func TestGameObjectRefSetClear(t *testing.T) {
	obj := NewGameObject("Target")
	var ref GameObjectRef

	ref.Set(obj)
	if ref.UID != obj.UID {
		t.Errorf("Set() expected UID %d, got %d", obj.UID, ref.UID)
	}

	ref.Clear()
	if ref.IsValid() {
		t.Error("Clear() should invalidate the reference")
	}

	ref.Set(nil)
	if ref.UID != 0 {
		t.Error("Set(nil) should clear the reference")
	}
}
