package sushineko

import (
	"fmt"
	"strings"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/scene"
)

// Visual characters for rendering
const (
	RollChar      = '▒'
	ChopstickChar = '═'
	CatChar       = '█'
	BarFull       = '█'
	BarEmpty      = '░'
)

// viewport fits the portrait scene into the screen below the HUD row with
// the tower axis in the middle column.
func (g *Game) viewport() core.Viewport {
	availW := g.runtime.ScreenW
	availH := g.runtime.ScreenH - 1

	h := availH
	w := int(float64(h) * 2 * g.layout.Width / g.layout.Height)
	if w > availW {
		w = availW
	}
	return core.Viewport{
		X:       (availW - w) / 2,
		Y:       1,
		W:       core.Max(1, w),
		H:       core.Max(1, h),
		SceneW:  g.layout.Width,
		SceneH:  g.layout.Height,
		OriginX: -g.layout.Width / 2,
	}
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.layout == nil {
		return
	}
	vp := g.viewport()

	base, _ := g.layout.Node(nodeBase)
	dst.DrawRectColor(vp.ToRect(base.Box()), RollChar, scene.ParseColor(base.Color))

	for _, p := range g.tower.Pieces {
		if p.Pos.Y > g.layout.Height {
			continue
		}
		g.drawPiece(dst, vp, p, base)
	}

	catBox := core.Box{Center: core.Vec2{X: g.cat.X, Y: g.cat.Y}, W: 40, H: 50}
	if node, err := g.layout.Node(characterNode); err == nil {
		catBox.W, catBox.H = node.W, node.H
	}
	dst.DrawRectColor(vp.ToRect(catBox), CatChar, g.cat.Tint)

	g.drawHUD(dst)

	switch g.phase {
	case scene.PhaseTitle:
		dst.DrawMessageBox("SUSHI NEKO", "Enter or click to play")
	case scene.PhaseReady:
		hint := "Tap left/right (or arrows) to punch"
		dst.DrawTextColor((dst.Width()-len(hint))/2, dst.Height()-1, hint, core.ColorYellow)
	case scene.PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d | Enter to restart", g.score))
	default:
		if g.paused {
			dst.DrawMessageBox("PAUSED", "Press P to resume")
		}
	}
}

func (g *Game) drawPiece(dst *core.Screen, vp core.Viewport, p *Piece, base scene.NodeSpec) {
	box := core.Box{Center: p.Pos, W: base.W, H: base.H * 0.8}
	r := vp.ToRect(box)
	dst.DrawRectColor(r, RollChar, p.Tint)

	stickLen := core.Max(2, r.W/2)
	y := r.Y + r.H/2
	switch p.Side {
	case scene.SideLeft:
		dst.DrawTextColor(r.X-stickLen, y, strings.Repeat(string(ChopstickChar), stickLen), p.Tint)
	case scene.SideRight:
		dst.DrawTextColor(r.Right(), y, strings.Repeat(string(ChopstickChar), stickLen), p.Tint)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	const barWidth = 20
	filled := int(g.health*barWidth + 0.5)

	color := core.ColorGreen
	switch {
	case g.health < 0.25:
		color = core.ColorRed
	case g.health < 0.5:
		color = core.ColorYellow
	}

	dst.DrawText(1, 0, "HP")
	dst.DrawTextColor(4, 0, strings.Repeat(string(BarFull), filled), color)
	dst.DrawTextColor(4+filled, 0, strings.Repeat(string(BarEmpty), barWidth-filled), core.ColorGray)

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColor(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)
}
