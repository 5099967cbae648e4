// Package config loads walk3d.yaml and watches it for live edits.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"walk3d/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "assets/walk3d.yaml"

var ErrInvalid = errors.New("invalid config")

// Vec3 is written as a three element list in YAML.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Ticks   TickConfig    `yaml:"ticks"`
	Profile string        `yaml:"profile"`
	Camera  CameraConfig  `yaml:"camera"`
	Player  PlayerConfig  `yaml:"player"`
	Assets  AssetsConfig  `yaml:"assets"`
	Ground  GroundConfig  `yaml:"ground"`
	Debug   DebugConfig   `yaml:"debug"`
	Spawns  []SpawnConfig `yaml:"spawns"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type TickConfig struct {
	FixedHz       float32 `yaml:"fixed_hz"`
	MaxFixedSteps int     `yaml:"max_fixed_steps"`
}

type CameraConfig struct {
	Sensitivity  float32 `yaml:"sensitivity"`
	InvertLook   bool    `yaml:"invert_look"`
	TimeOfImpact float32 `yaml:"time_of_impact"`
	FOV          float32 `yaml:"fov"`
}

type PlayerConfig struct {
	SpawnPoint    Vec3    `yaml:"spawn_point"`
	MoveSpeed     float32 `yaml:"move_speed"`
	JumpStrength  float32 `yaml:"jump_strength"`
	Gravity       float32 `yaml:"gravity"`
	EyeHeight     float32 `yaml:"eye_height"`
	RespawnFloorY float32 `yaml:"respawn_floor_y"`
}

type AssetsConfig struct {
	Workers     int           `yaml:"workers"`
	MaxAttempts int           `yaml:"max_attempts"`
	MaxWait     time.Duration `yaml:"max_wait"`
}

type GroundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Size    float32 `yaml:"size"`
}

type DebugConfig struct {
	DrawRays      bool `yaml:"draw_rays"`
	Inspector     bool `yaml:"inspector"`
	DrawColliders bool `yaml:"draw_colliders"`
}

type SpawnConfig struct {
	Name         string `yaml:"name"`
	Path         string `yaml:"path"`
	Position     Vec3   `yaml:"position"`
	RotationDeg  Vec3   `yaml:"rotation_deg"`
	Scale        *Vec3  `yaml:"scale"`
	Interactable string `yaml:"interactable"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "walk3d",
			TargetFPS: 144,
		},
		Ticks:   TickConfig{FixedHz: 60, MaxFixedSteps: 5},
		Profile: string(player.ProfileInteractive),
		Camera: CameraConfig{
			Sensitivity:  0.5,
			TimeOfImpact: 2.5,
			FOV:          72,
		},
		Player: PlayerConfig{
			SpawnPoint:    Vec3{0, 1.5, 0},
			MoveSpeed:     6,
			JumpStrength:  7,
			Gravity:       20,
			EyeHeight:     1.5,
			RespawnFloorY: -50,
		},
		Ground: GroundConfig{Enabled: true, Size: 100},
		Debug:  DebugConfig{DrawRays: true},
	}
}

// Load reads path over the defaults. Fields missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	for i := range cfg.Spawns {
		s := &cfg.Spawns[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("Spawn%d", i)
		}
		if s.Scale == nil {
			s.Scale = &Vec3{1, 1, 1}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Ticks.FixedHz <= 0 {
		errs = append(errs, fmt.Errorf("ticks.fixed_hz %v must be positive", c.Ticks.FixedHz))
	}
	if c.Ticks.MaxFixedSteps <= 0 {
		errs = append(errs, fmt.Errorf("ticks.max_fixed_steps %d must be positive", c.Ticks.MaxFixedSteps))
	}
	if _, err := player.ParseProfile(c.Profile); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.TimeOfImpact < 0 {
		errs = append(errs, fmt.Errorf("camera.time_of_impact %v must not be negative", c.Camera.TimeOfImpact))
	}
	if c.Camera.Sensitivity < 0 {
		errs = append(errs, fmt.Errorf("camera.sensitivity %v must not be negative", c.Camera.Sensitivity))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov %v must be in (0, 180)", c.Camera.FOV))
	}
	if c.Assets.Workers < 0 || c.Assets.MaxAttempts < 0 || c.Assets.MaxWait < 0 {
		errs = append(errs, errors.New("assets limits must not be negative"))
	}
	for i, s := range c.Spawns {
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("spawns[%d] %q has no path", i, s.Name))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// PlayerSettings converts the camera and player sections into rig settings.
func (c *Config) PlayerSettings() player.Settings {
	return player.Settings{
		SpawnPoint:   c.Player.SpawnPoint.Vector3(),
		EyeHeight:    c.Player.EyeHeight,
		FOV:          c.Camera.FOV,
		Sensitivity:  c.Camera.Sensitivity,
		InvertLook:   c.Camera.InvertLook,
		TimeOfImpact: c.Camera.TimeOfImpact,
		MoveSpeed:    c.Player.MoveSpeed,
		JumpStrength: c.Player.JumpStrength,
		Gravity:      c.Player.Gravity,
	}
}

// PlayerProfile returns the validated profile.
func (c *Config) PlayerProfile() player.Profile {
	p, err := player.ParseProfile(c.Profile)
	if err != nil {
		return player.ProfileInteractive
	}
	return p
}

// ApplyLive copies the sections that may change while running.
// Everything else needs a restart.
func (c *Config) ApplyLive(next *Config) {
	c.Camera = next.Camera
	c.Debug = next.Debug
}
