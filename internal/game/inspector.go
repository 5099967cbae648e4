package game

import (
	"fmt"

	"walk3d/internal/config"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel       = rl.NewColor(18, 18, 24, 245)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Inspector is the F1 debug panel.
type Inspector struct {
	Visible bool

	Pending     int
	Failed      int
	Loading     int
	LastTarget  string
	LastFailure string
}

// Draw renders the panel and edits camera and debug in place.
// Returns true when a value changed.
func (in *Inspector) Draw(camera *config.CameraConfig, debug *config.DebugConfig) bool {
	const (
		width  = 300
		rowH   = 26
		labelW = 110
	)
	x := float32(rl.GetScreenWidth()) - width - 10
	y := float32(10)

	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: width, Height: 12 * rowH}, colorBgPanel)
	rl.DrawText("Inspector", int32(x)+10, int32(y)+8, 18, colorTextPrimary)
	y += rowH + 8

	before := *camera
	beforeDebug := *debug

	slider := func(label string, value, min, max float32) float32 {
		rl.DrawText(label, int32(x)+10, int32(y)+5, 15, colorTextSecondary)
		bounds := rl.Rectangle{X: x + labelW, Y: y, Width: width - labelW - 50, Height: rowH - 6}
		v := gui.Slider(bounds, "", fmt.Sprintf("%.2f", value), value, min, max)
		y += rowH
		return v
	}
	check := func(label string, value bool) bool {
		bounds := rl.Rectangle{X: x + 10, Y: y + 3, Width: 16, Height: 16}
		v := gui.CheckBox(bounds, label, value)
		y += rowH
		return v
	}

	camera.Sensitivity = slider("Sensitivity", camera.Sensitivity, 0, 5)
	camera.TimeOfImpact = slider("Reach", camera.TimeOfImpact, 0, 20)
	camera.FOV = slider("FOV", camera.FOV, 30, 120)
	camera.InvertLook = check("Invert look", camera.InvertLook)
	debug.DrawRays = check("Draw rays", debug.DrawRays)
	debug.DrawColliders = check("Draw colliders", debug.DrawColliders)

	text := func(s string, color rl.Color) {
		rl.DrawText(s, int32(x)+10, int32(y)+5, 15, color)
		y += rowH - 4
	}
	text(fmt.Sprintf("Assets loading: %d", in.Loading), colorTextSecondary)
	text(fmt.Sprintf("Colliders pending: %d  failed: %d", in.Pending, in.Failed), colorTextSecondary)
	text("Last target: "+orDash(in.LastTarget), colorTextSecondary)
	text("Last failure: "+orDash(in.LastFailure), colorTextMuted)

	return *camera != before || *debug != beforeDebug
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
