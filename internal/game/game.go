package game

import (
	"fmt"
	"log"

	"walk3d/internal/assets"
	"walk3d/internal/colliders"
	"walk3d/internal/components"
	"walk3d/internal/config"
	"walk3d/internal/engine"
	"walk3d/internal/interact"
	"walk3d/internal/look"
	"walk3d/internal/player"
	"walk3d/internal/spawn"
	"walk3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config     *config.Config
	ConfigPath string

	World     *world.World
	Rig       *player.Rig
	Composer  *spawn.Composer
	Colliders *colliders.Generator
	Effects   *interact.EffectTable
	Raycaster *interact.Raycaster // nil unless the profile is interactive
	Cursor    *player.CursorToggle
	Motion    look.MotionQueue
	Clock     FixedClock

	Inspector *Inspector
	watcher   *config.Watcher
	lastErr   map[string]string
}

// New wires every system against a fresh world. No window is needed until Run.
func New(cfg *config.Config, configPath string, loader assets.Loader) *Game {
	server := assets.NewServer(loader, assets.Options{Workers: cfg.Assets.Workers})
	w := world.New(server)

	g := &Game{
		Config:     cfg,
		ConfigPath: configPath,
		World:      w,
		Composer:   spawn.NewComposer(server),
		Colliders:  colliders.NewGenerator(server, w.Physics),
		Effects:    interact.NewEffectTable(),
		Cursor:     player.NewCursorToggle(raylibCursor{}),
		Clock:      NewFixedClock(cfg.Ticks.FixedHz, cfg.Ticks.MaxFixedSteps),
		Inspector:  &Inspector{},
		lastErr:    make(map[string]string),
	}
	g.Colliders.MaxAttempts = cfg.Assets.MaxAttempts
	g.Colliders.MaxWait = float32(cfg.Assets.MaxWait.Seconds())
	g.Colliders.Failures.AddListener(func(f colliders.Failure) {
		g.Inspector.LastFailure = fmt.Sprintf("%s: %v", f.Object.Name, f.Err)
	})

	w.Populate(cfg)
	g.Rig = player.Spawn(w.Scene, cfg.PlayerSettings(), cfg.PlayerProfile())
	if cfg.PlayerProfile().Interactive() {
		g.Raycaster = interact.NewRaycaster(w.Physics, g.Effects, w.Gizmos)
		g.Raycaster.Hits.AddListener(func(h interact.Hit) {
			g.Inspector.LastTarget = h.Target.Name
		})
	}
	g.applyLive()
	w.Scene.Start()
	return g
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	// Escape releases the cursor instead of closing the window
	rl.SetExitKey(rl.KeyNull)
	initRayguiStyle()

	if err := g.Cursor.Set(g.World.Scene, true); err != nil {
		return err
	}
	defer g.World.Unload()

	if g.ConfigPath != "" {
		watcher, err := config.NewWatcher(g.ConfigPath)
		if err != nil {
			log.Printf("Config: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
			defer watcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		g.Tick(rl.GetFrameTime(), sampleInput())
		g.Draw()
	}
	return nil
}

// Tick advances one frame: input, fixed steps, then per-frame systems.
func (g *Game) Tick(frame float32, in FrameInput) {
	g.Motion.Push(in.Motion)
	g.reloadConfig()

	scene := g.World.Scene
	if in.ToggleCursor {
		g.report("cursor", g.Cursor.Toggle(scene))
	}
	if in.ToggleInspector {
		g.Inspector.Visible = !g.Inspector.Visible
	}

	steps := g.Clock.Advance(frame)
	for i := 0; i < steps; i++ {
		var motion []rl.Vector2
		if i == 0 {
			motion = g.Motion.Drain()
		}
		g.report("look", look.Update(scene, motion))
		g.report("move", player.Move(scene, in.Move, g.Clock.Step))
		g.World.Physics.Step(g.Clock.Step)
		scene.FixedUpdate(g.Clock.Step)
		player.Respawn(scene, g.Config.Player.SpawnPoint.Vector3(), g.Config.Player.RespawnFloorY)
	}

	g.World.Assets.Pump()
	g.Composer.Update(scene)
	g.Colliders.Update(scene, frame)
	if g.Raycaster != nil {
		g.report("interact", g.Raycaster.Update(scene))
	}
	g.World.Update(frame)
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Rig.Camera)
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	g.World.Renderer.Draw(g.World.Scene, camera, aspect)
	g.World.Gizmos.Draw()
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.DarkGray)
	rl.DrawText("Esc to release the cursor, F1 for the inspector", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	if !g.Inspector.Visible {
		return
	}
	stats := g.World.Assets.Stats()
	g.Inspector.Pending = colliders.PendingCount(g.World.Scene)
	g.Inspector.Failed = g.Colliders.FailedCount()
	g.Inspector.Loading = stats.Loading
	if g.Inspector.Draw(&g.Config.Camera, &g.Config.Debug) {
		g.applyLive()
	}
}

func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("Config: watch error: %v", err)
		return
	}
	if !changed {
		return
	}
	next, err := config.Load(g.ConfigPath)
	if err != nil {
		log.Printf("Config: reload rejected: %v", err)
		return
	}
	g.Config.ApplyLive(next)
	g.applyLive()
	log.Printf("Config: reloaded %s", g.ConfigPath)
}

// applyLive pushes the live-editable config sections into the scene.
func (g *Game) applyLive() {
	cfg := g.Config
	if _, state, err := player.FindCamera(g.World.Scene); err == nil {
		state.Sensitivity = cfg.Camera.Sensitivity
		state.InvertLook = cfg.Camera.InvertLook
	}
	if cam := engine.GetComponent[*components.Camera](g.Rig.Camera); cam != nil {
		cam.FOV = cfg.Camera.FOV
	}
	if toi := engine.GetComponent[*components.TimeOfImpact](g.Rig.Camera); toi != nil {
		toi.Distance = cfg.Camera.TimeOfImpact
	}
	g.World.Gizmos.Enabled = cfg.Debug.DrawRays
	g.World.Renderer.DrawColliders = cfg.Debug.DrawColliders
	g.Inspector.Visible = g.Inspector.Visible || cfg.Debug.Inspector
}

// report logs err once per source until it changes.
func (g *Game) report(source string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if g.lastErr[source] == msg {
		return
	}
	g.lastErr[source] = msg
	if err != nil {
		log.Printf("Game: %s: %v", source, err)
	}
}
