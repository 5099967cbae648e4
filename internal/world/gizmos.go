package world

import rl "github.com/gen2brain/raylib-go/raylib"

type gizmoLine struct {
	start, end rl.Vector3
	color      rl.Color
}

// Gizmos buffers debug lines submitted during update until the next draw.
type Gizmos struct {
	Enabled bool
	lines   []gizmoLine
}

func (g *Gizmos) Line(start, end rl.Vector3, color rl.Color) {
	if !g.Enabled {
		return
	}
	g.lines = append(g.lines, gizmoLine{start, end, color})
}

func (g *Gizmos) Len() int {
	return len(g.lines)
}

// Draw renders and clears the buffer. Call inside BeginMode3D.
func (g *Gizmos) Draw() {
	for _, l := range g.lines {
		rl.DrawLine3D(l.start, l.end, l.color)
	}
	g.Clear()
}

func (g *Gizmos) Clear() {
	g.lines = g.lines[:0]
}
