package player

import (
	"fmt"
	"log"

	"walk3d/internal/components"
	"walk3d/internal/engine"
	"walk3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Profile selects which parts of the rig are spawned.
type Profile string

const (
	// ProfileInteractive spawns the forward helper so the player can aim at
	// and activate objects.
	ProfileInteractive Profile = "interactive"
	// ProfileSimple is a walk-only rig without aiming.
	ProfileSimple Profile = "simple"
)

func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "", ProfileInteractive:
		return ProfileInteractive, nil
	case ProfileSimple:
		return ProfileSimple, nil
	}
	return "", fmt.Errorf("unknown profile %q", s)
}

func (p Profile) Interactive() bool {
	return p == ProfileInteractive
}

type Settings struct {
	SpawnPoint   rl.Vector3
	EyeHeight    float32
	FOV          float32
	Sensitivity  float32
	InvertLook   bool
	TimeOfImpact float32
	MoveSpeed    float32
	JumpStrength float32
	Gravity      float32
}

func DefaultSettings() Settings {
	return Settings{
		SpawnPoint:   rl.Vector3{Y: 1.5},
		EyeHeight:    1.5,
		FOV:          72,
		Sensitivity:  0.5,
		TimeOfImpact: 2.5,
		MoveSpeed:    6,
		JumpStrength: 7,
		Gravity:      20,
	}
}

// Rig is the spawned player hierarchy: body -> camera -> forward helper.
type Rig struct {
	Body          *engine.GameObject
	Camera        *engine.GameObject
	ForwardHelper *engine.GameObject // nil in the simple profile
}

// Spawn builds the player rig and adds it to scene.
func Spawn(scene *engine.Scene, settings Settings, profile Profile) *Rig {
	body := engine.NewGameObject("Player")
	body.Tags = []string{"Player"}
	body.Transform.Position = settings.SpawnPoint
	body.AddComponent(physics.NewCapsuleCollider(rl.Vector3{Y: 0.5}, rl.Vector3{Y: 1.5}, 0.5))
	body.AddComponent(physics.NewKinematicBody())

	movement := components.NewPlayerMovement()
	movement.MoveSpeed = settings.MoveSpeed
	movement.JumpStrength = settings.JumpStrength
	movement.Gravity = settings.Gravity
	body.AddComponent(movement)

	playerBody := &components.PlayerBody{SpawnPoint: settings.SpawnPoint}
	body.AddComponent(playerBody)

	camera := engine.NewGameObject("Camera")
	camera.Transform.Position = rl.Vector3{Y: settings.EyeHeight}
	camera.AddComponent(components.NewCamera(settings.FOV))
	camera.AddComponent(components.NewCameraState(settings.Sensitivity, settings.InvertLook))
	camera.AddComponent(components.NewTimeOfImpact(settings.TimeOfImpact))
	body.AddChild(camera)

	rig := &Rig{Body: body, Camera: camera}
	if profile.Interactive() {
		helper := engine.NewGameObject("ForwardHelper")
		helper.Transform.Position = rl.Vector3{Z: -1}
		helper.AddComponent(&components.ForwardHelper{})
		camera.AddChild(helper)
		playerBody.ForwardHelper = engine.RefTo(helper)
		rig.ForwardHelper = helper
	}

	scene.AddGameObject(body)
	log.Printf("Player: spawned at %v (%s profile)", settings.SpawnPoint, profile)
	return rig
}
