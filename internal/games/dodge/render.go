package dodge

import (
	"fmt"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/scene"
)

// Visual characters for rendering
const (
	StripeChar = '░'
	PlayerChar = '█'
	EnemyChar  = '■'
)

// viewport maps the scene frame onto the screen below the HUD row, keeping
// the board roughly square (terminal cells are about twice as tall as wide).
func (g *Game) viewport() core.Viewport {
	availW := g.runtime.ScreenW
	availH := g.runtime.ScreenH - 1
	if availW < 1 || availH < 1 {
		return core.Viewport{SceneW: g.layout.Width, SceneH: g.layout.Height}
	}

	h := availH
	w := h * 2
	if w > availW {
		w = availW
		h = core.Max(1, w/2)
	}
	return core.Viewport{
		X:      (availW - w) / 2,
		Y:      1 + (availH-h)/2,
		W:      w,
		H:      h,
		SceneW: g.layout.Width,
		SceneH: g.layout.Height,
	}
}

// touchToScene converts a normalized screen touch to scene coordinates.
func (g *Game) touchToScene(t core.Touch) core.Vec2 {
	vp := g.viewport()
	if vp.W == 0 || vp.H == 0 {
		return core.Vec2{X: t.X * g.layout.Width, Y: (1 - t.Y) * g.layout.Height}
	}
	cellX := t.X * float64(g.runtime.ScreenW)
	cellY := t.Y * float64(g.runtime.ScreenH)
	return core.Vec2{
		X: (cellX - float64(vp.X)) / float64(vp.W) * vp.SceneW,
		Y: (float64(vp.Y+vp.H) - cellY) / float64(vp.H) * vp.SceneH,
	}
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.layout == nil {
		return
	}
	vp := g.viewport()

	board, _ := g.layout.Node(nodeBoard)
	stripeColor := scene.ParseColor(board.Color)
	for _, s := range g.stripes {
		dst.DrawRectColor(vp.ToRect(s), StripeChar, stripeColor)
	}
	dst.DrawBox(core.NewRect(vp.X-1, vp.Y-1, vp.W+2, vp.H+2))

	for _, e := range g.spawner.Enemies() {
		dst.DrawRectColor(vp.ToRect(e.Box), EnemyChar, e.Tint)
	}
	dst.DrawRectColor(vp.ToRect(g.player.Box), PlayerChar, g.player.Tint)

	// HUD
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.score, g.tickCount)
		dst.DrawTextColor(14, 0, fmt.Sprintf("Lvl: %.0f%%", level*100), core.ColorGray)
	}

	switch g.phase {
	case scene.PhaseTitle:
		dst.DrawMessageBox("GRID DODGE", "Enter or click to play")
	case scene.PhaseReady:
		hint := "Swipe (arrows/WASD) to start"
		dst.DrawTextColor((dst.Width()-len(hint))/2, dst.Height()-1, hint, core.ColorYellow)
	case scene.PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d | Enter to restart", g.score))
	default:
		if g.paused {
			dst.DrawMessageBox("PAUSED", "Press P to resume")
		}
	}
}
