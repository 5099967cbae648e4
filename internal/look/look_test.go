package look

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestSignMultiplier(t *testing.T) {
	if SignMultiplier(true) != 1 {
		t.Error("Expected +1 when inverted")
	}
	if SignMultiplier(false) != -1 {
		t.Error("Expected -1 when not inverted")
	}
}

func TestPitchStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		state := &components.CameraState{
			Sensitivity: rng.Float32() * 5,
			InvertLook:  rng.Intn(2) == 0,
		}
		for i := 0; i < 200; i++ {
			delta := rl.Vector2{
				X: (rng.Float32() - 0.5) * 2000,
				Y: (rng.Float32() - 0.5) * 2000,
			}
			Integrate(state, delta)
			if state.Pitch < MinPitch || state.Pitch > MaxPitch {
				t.Fatalf("Run %d sample %d: pitch %f outside [%f, %f]", run, i, state.Pitch, float32(MinPitch), float32(MaxPitch))
			}
		}
	}
}

func TestClampBoundsExact(t *testing.T) {
	state := &components.CameraState{Sensitivity: 1}
	Integrate(state, rl.Vector2{Y: -1e6})
	if state.Pitch != MaxPitch {
		t.Errorf("Expected pitch at upper bound, got %f", state.Pitch)
	}
	Integrate(state, rl.Vector2{Y: 1e6})
	if state.Pitch != MinPitch {
		t.Errorf("Expected pitch at lower bound, got %f", state.Pitch)
	}

	// Invert does not move the bounds
	state.InvertLook = true
	Integrate(state, rl.Vector2{Y: 1e6})
	if state.Pitch != MaxPitch {
		t.Errorf("Expected inverted pitch at upper bound, got %f", state.Pitch)
	}
}

func TestInvertFlipsIncrementSign(t *testing.T) {
	samples := []rl.Vector2{{X: 10, Y: 5}, {X: -3, Y: 2}, {X: 7, Y: -4}}
	normal := &components.CameraState{Sensitivity: 0.5}
	inverted := &components.CameraState{Sensitivity: 0.5, InvertLook: true}
	for _, s := range samples {
		Integrate(normal, s)
		Integrate(inverted, s)
	}
	if !near(normal.Yaw, -inverted.Yaw) || !near(normal.Pitch, -inverted.Pitch) {
		t.Errorf("Expected opposite angles, got %+v and %+v", normal, inverted)
	}
	// 14/180 * 0.5 with the non-inverted sign
	if !near(normal.Yaw, -14.0/180*0.5) {
		t.Errorf("Expected yaw %f, got %f", -14.0/180*0.5, normal.Yaw)
	}
}

func TestUpdateDistributesRotation(t *testing.T) {
	scene := engine.NewScene("test")
	rig := player.Spawn(scene, player.DefaultSettings(), player.ProfileInteractive)

	if err := Update(scene, []rl.Vector2{{X: 90, Y: -30}}); err != nil {
		t.Fatal(err)
	}
	_, state, _ := player.FindCamera(scene)

	wantCam := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, state.Pitch)
	if rig.Camera.Transform.Rotation != wantCam {
		t.Errorf("Expected camera pitch-only rotation %v, got %v", wantCam, rig.Camera.Transform.Rotation)
	}
	wantBody := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, state.Yaw)
	if rig.Body.Transform.Rotation != wantBody {
		t.Errorf("Expected body yaw-only rotation %v, got %v", wantBody, rig.Body.Transform.Rotation)
	}
	if state.Yaw == 0 || state.Pitch == 0 {
		t.Errorf("Expected both angles to change, got %+v", state)
	}
}

func TestUpdateMissingCamera(t *testing.T) {
	scene := engine.NewScene("test")
	if err := Update(scene, nil); !errors.Is(err, player.ErrCameraNotFound) {
		t.Errorf("Expected ErrCameraNotFound, got %v", err)
	}

	cam := engine.NewGameObject("Camera")
	cam.AddComponent(&components.CameraState{})
	scene.AddGameObject(cam)
	if err := Update(scene, nil); !errors.Is(err, player.ErrPlayerNotFound) {
		t.Errorf("Expected ErrPlayerNotFound, got %v", err)
	}
}

func TestMotionQueueKeepsOrder(t *testing.T) {
	var q MotionQueue
	q.Push(rl.Vector2{X: 1})
	q.Push(rl.Vector2{})
	q.Push(rl.Vector2{Y: 2})

	got := q.Drain()
	if len(got) != 2 || got[0].X != 1 || got[1].Y != 2 {
		t.Errorf("Expected two samples in order, got %v", got)
	}
	if q.Len() != 0 {
		t.Error("Expected queue empty after drain")
	}
}
