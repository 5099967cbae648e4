package player

import (
	"errors"
	"math"
	"testing"

	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearVec(a, b rl.Vector3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

type fakeCursor struct {
	locks, unlocks int
}

func (f *fakeCursor) Lock()   { f.locks++ }
func (f *fakeCursor) Unlock() { f.unlocks++ }

func TestFindBodyErrors(t *testing.T) {
	scene := engine.NewScene("test")
	if _, _, err := FindBody(scene); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Expected ErrPlayerNotFound, got %v", err)
	}
	if _, _, err := FindCamera(scene); !errors.Is(err, ErrCameraNotFound) {
		t.Errorf("Expected ErrCameraNotFound, got %v", err)
	}

	Spawn(scene, DefaultSettings(), ProfileInteractive)
	Spawn(scene, DefaultSettings(), ProfileInteractive)
	if _, _, err := FindBody(scene); !errors.Is(err, ErrMultiplePlayers) {
		t.Errorf("Expected ErrMultiplePlayers, got %v", err)
	}
}

func TestSpawnInteractiveRig(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)

	body, pb, err := FindBody(scene)
	if err != nil || body != rig.Body {
		t.Fatalf("Expected spawned body, got %v %v", body, err)
	}
	cam, state, err := FindCamera(scene)
	if err != nil || cam != rig.Camera {
		t.Fatalf("Expected spawned camera, got %v %v", cam, err)
	}
	if cam.Parent != body {
		t.Error("Expected camera to be a child of the body")
	}
	if state.Sensitivity != 0.5 || state.InvertLook {
		t.Errorf("Expected default camera state, got %+v", state)
	}
	if toi := engine.GetComponent[*components.TimeOfImpact](cam); toi == nil || toi.Distance != 2.5 {
		t.Errorf("Expected time of impact 2.5, got %+v", toi)
	}
	if engine.GetComponent[*physics.CapsuleCollider](body) == nil {
		t.Error("Expected capsule collider on body")
	}
	if rb := engine.GetComponent[*physics.Rigidbody](body); rb == nil || !rb.IsKinematic {
		t.Error("Expected kinematic rigidbody on body")
	}

	helper, err := FindForwardHelper(scene, pb)
	if err != nil || helper != rig.ForwardHelper {
		t.Fatalf("Expected forward helper, got %v %v", helper, err)
	}
	if !nearVec(helper.WorldPosition(), rl.Vector3{Y: 3, Z: -1}) {
		t.Errorf("Expected helper at (0,3,-1), got %v", helper.WorldPosition())
	}
}

func TestSpawnSimpleRig(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileSimple)

	if rig.ForwardHelper != nil {
		t.Error("Expected no forward helper in simple profile")
	}
	if rig.Camera.Parent != rig.Body {
		t.Error("Expected camera to stay a child of the body")
	}
	_, pb, _ := FindBody(scene)
	if _, err := FindForwardHelper(scene, pb); !errors.Is(err, ErrForwardHelperNotFound) {
		t.Errorf("Expected ErrForwardHelperNotFound, got %v", err)
	}
}

func TestParseProfile(t *testing.T) {
	if p, err := ParseProfile(""); err != nil || p != ProfileInteractive {
		t.Errorf("Expected empty profile to default to interactive, got %q %v", p, err)
	}
	if p, err := ParseProfile("simple"); err != nil || p != ProfileSimple {
		t.Errorf("Expected simple, got %q %v", p, err)
	}
	if _, err := ParseProfile("merged"); err == nil {
		t.Error("Expected error for unknown profile")
	}
}

func TestMoveFollowsYaw(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)
	rb := engine.GetComponent[*physics.Rigidbody](rig.Body)

	if err := Move(scene, Input{Forward: 1}, 0.01); err != nil {
		t.Fatal(err)
	}
	if !near(rb.Velocity.Z, -6) || !near(rb.Velocity.X, 0) {
		t.Errorf("Expected velocity along -Z, got %v", rb.Velocity)
	}

	rig.Body.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2)
	Move(scene, Input{Forward: 1}, 0.01)
	if !near(rb.Velocity.X, -6) || !near(rb.Velocity.Z, 0) {
		t.Errorf("Expected velocity along -X after turning, got %v", rb.Velocity)
	}
}

func TestMoveNormalizesDiagonal(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)
	rb := engine.GetComponent[*physics.Rigidbody](rig.Body)

	Move(scene, Input{Forward: 1, Right: 1}, 0.01)
	speed := float32(math.Hypot(float64(rb.Velocity.X), float64(rb.Velocity.Z)))
	if !near(speed, 6) {
		t.Errorf("Expected diagonal speed 6, got %f", speed)
	}
}

func TestMoveIgnoresInputWhenDisabled(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)
	engine.GetComponent[*components.PlayerMovement](rig.Body).EnableInput = false
	rb := engine.GetComponent[*physics.Rigidbody](rig.Body)
	rb.Grounded = true

	Move(scene, Input{Forward: 1, Jump: true}, 0.1)
	if rb.Velocity.X != 0 || rb.Velocity.Z != 0 {
		t.Errorf("Expected no horizontal velocity, got %v", rb.Velocity)
	}
	if !near(rb.Velocity.Y, -2) {
		t.Errorf("Expected only gravity, got %f", rb.Velocity.Y)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)
	rb := engine.GetComponent[*physics.Rigidbody](rig.Body)

	Move(scene, Input{Jump: true}, 0.1)
	if rb.Velocity.Y > 0 {
		t.Errorf("Expected no jump in the air, got %f", rb.Velocity.Y)
	}

	rb.Velocity.Y = 0
	rb.Grounded = true
	Move(scene, Input{Jump: true}, 0.1)
	if !near(rb.Velocity.Y, 7-2) {
		t.Errorf("Expected jump velocity 5 after gravity, got %f", rb.Velocity.Y)
	}
}

func TestMoveWithoutPlayer(t *testing.T) {
	if err := Move(engine.NewScene("empty"), Input{}, 0.1); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Expected ErrPlayerNotFound, got %v", err)
	}
}

func TestRespawnBelowFloor(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)
	rb := engine.GetComponent[*physics.Rigidbody](rig.Body)

	rig.Body.Transform.Position = rl.Vector3{X: 3, Y: -49}
	if n := Respawn(scene, rl.Vector3{}, -50); n != 0 {
		t.Errorf("Expected no respawn above floor, got %d", n)
	}

	rig.Body.Transform.Position = rl.Vector3{X: 3, Y: -51}
	rb.Velocity = rl.Vector3{Y: -30}
	if n := Respawn(scene, rl.Vector3{}, -50); n != 1 {
		t.Fatalf("Expected 1 respawn, got %d", n)
	}
	if !nearVec(rig.Body.Transform.Position, rl.Vector3{Y: 1.5}) {
		t.Errorf("Expected body back at spawn point, got %v", rig.Body.Transform.Position)
	}
	if rb.Velocity != (rl.Vector3{}) {
		t.Errorf("Expected velocity cleared, got %v", rb.Velocity)
	}
}

func TestCursorToggleKeepsInputInStep(t *testing.T) {
	scene := engine.NewScene("test")
	rig := Spawn(scene, DefaultSettings(), ProfileInteractive)
	movement := engine.GetComponent[*components.PlayerMovement](rig.Body)
	cursor := &fakeCursor{}
	toggle := NewCursorToggle(cursor)

	if err := toggle.Set(scene, true); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := toggle.Toggle(scene); err != nil {
			t.Fatal(err)
		}
		if toggle.Locked() != movement.EnableInput {
			t.Fatalf("Toggle %d: locked=%v but input enabled=%v", i, toggle.Locked(), movement.EnableInput)
		}
	}
	if toggle.Locked() {
		t.Error("Expected unlocked after odd number of toggles")
	}
	if cursor.locks != 3 || cursor.unlocks != 3 {
		t.Errorf("Expected 3 locks and 3 unlocks, got %d/%d", cursor.locks, cursor.unlocks)
	}
}

func TestCursorToggleWithoutPlayer(t *testing.T) {
	cursor := &fakeCursor{}
	toggle := NewCursorToggle(cursor)
	if err := toggle.Toggle(engine.NewScene("empty")); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("Expected ErrPlayerNotFound, got %v", err)
	}
	if toggle.Locked() || cursor.locks != 0 {
		t.Error("Expected cursor untouched when player is missing")
	}
}
