// Package window runs arcade games in a desktop window using Ebitengine.
// Games render into the same cell screen the terminal front end uses; each
// cell becomes a filled block or a glyph.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/storage"
)

// Cell size in pixels. The debug font is 6x16, so glyphs fit a cell.
const (
	CellW = 8
	CellH = 16
)

// errQuit ends ebiten.RunGame without reporting a failure.
var errQuit = errors.New("window: quit")

// Options configures a window session.
type Options struct {
	Store  *storage.Store
	Player string
	Logger *log.Logger
	Scale  float64 // window size multiplier, 1 if unset
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game   registry.Game
	screen *core.Screen
	cfg    core.RuntimeConfig
	input  *Input
	state  core.GameState
	rec    *storage.Recorder
}

// NewGame resets the game and prepares a window of cfg.ScreenW x cfg.ScreenH
// cells.
func NewGame(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if err := game.Reset(cfg); err != nil {
		return nil, err
	}

	g := &Game{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		cfg:    cfg,
		input:  NewInput(cfg.ScreenW*CellW, cfg.ScreenH*CellH),
		state:  game.State(),
		rec:    storage.NewRecorder(opts.Store, game.ID(), opts.Player, opts.Logger),
	}
	g.rec.Reset(g.state)
	return g, nil
}

// Update runs one simulation tick. Ebiten calls it at TPS.
func (g *Game) Update() error {
	frame, quit := g.input.Poll()
	if quit {
		return errQuit
	}

	result := g.game.Step(frame)
	g.state = result.State
	g.rec.Observe(result)
	return nil
}

// Draw paints the cell screen.
func (g *Game) Draw(dst *ebiten.Image) {
	g.game.Render(g.screen)
	dst.Fill(Background)

	for y := 0; y < g.screen.Height(); y++ {
		for x := 0; x < g.screen.Width(); x++ {
			c := g.screen.GetCell(x, y)
			if c.Rune == ' ' {
				continue
			}
			px, py := float32(x*CellW), float32(y*CellH)
			if fill, ok := blockFill(c.Rune); ok {
				vector.DrawFilledRect(dst, px, py, CellW, CellH, Shade(RGBA(c.Color), fill), false)
				continue
			}
			// The debug font is white only
			ebitenutil.DebugPrintAt(dst, string(c.Rune), x*CellW+1, y*CellH)
		}
	}
}

// Layout fixes the logical size to the cell grid.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenW * CellW, g.cfg.ScreenH * CellH
}

// State returns the latest game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens a window and plays the game until it is closed or the player
// quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w, err := NewGame(game, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(fmt.Sprintf("Arcade - %s", game.Title()))
	ebiten.SetWindowSize(int(float64(w.cfg.ScreenW*CellW)*scale), int(float64(w.cfg.ScreenH*CellH)*scale))
	ebiten.SetTPS(w.cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// blockFill reports whether r is a block glyph and how much of the cell it
// covers.
func blockFill(r rune) (float64, bool) {
	switch r {
	case '█', '■':
		return 1, true
	case '▓':
		return 0.75, true
	case '▒', '═':
		return 0.5, true
	case '░':
		return 0.25, true
	}
	return 0, false
}

// Shade blends c toward the background by the covered fraction.
func Shade(c color.RGBA, fill float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(b) + (float64(a)-float64(b))*fill)
	}
	return color.RGBA{
		R: mix(c.R, Background.R),
		G: mix(c.G, Background.G),
		B: mix(c.B, Background.B),
		A: 255,
	}
}
