// Package sushineko implements Sushi Neko: a cat punches sushi rolls out of
// a tower, switching sides to dodge the chopsticks, while its health drains.
package sushineko

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/tapcade/arcade/internal/config"
	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/scene"
)

//go:embed scene.yaml
var sceneYAML []byte

// Node names the scene asset must provide.
const (
	nodeBase       = "sushiBasePiece"
	nodeHealthBar  = "healthBar"
	nodeScoreLabel = "scoreLabel"
	nodePlayButton = "playButton"
	nodeTower      = "tower"
)

// Game implements the Sushi Neko scene controller.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.SushiConfig
	layout     *scene.Layout
	difficulty *config.DifficultyManager
	tower      *Tower
	cat        *Character
	phase      scene.Phase
	health     float64
	score      int
	paused     bool
	tickCount  int
	sessions   int // restarts since Reset, mixed into the seed
	effects    []core.Effect
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config file's).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Sushi Neko game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("sushineko", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sushineko"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sushi Neko"
}

// Reset loads config and scene, then starts a fresh session on the title.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	cfg, err := config.LoadSushi(configPath)
	if err != nil {
		return fmt.Errorf("sushineko: %w", err)
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)

	layout, err := scene.ParseLayout(sceneYAML)
	if err != nil {
		return fmt.Errorf("sushineko: %w", err)
	}
	if err := layout.Require(nodeBase, characterNode, nodePlayButton, nodeHealthBar, nodeScoreLabel); err != nil {
		return fmt.Errorf("sushineko: %w", err)
	}

	g.cfg = cfg
	g.layout = layout
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.sessions = 0
	g.start()
	return nil
}

// start builds a new session from the validated config and layout.
func (g *Game) start() {
	base, _ := g.layout.Node(nodeBase)
	cat, _ := g.layout.Node(characterNode)

	g.tower = NewTower(base.Pos(), base.Z, g.cfg.Tower, g.runtime.Seed+int64(g.sessions))
	g.sessions++
	g.tower.AddPiece(scene.SideNone)
	g.tower.AddPiece(scene.SideRight)
	g.tower.AddRandomPieces(g.cfg.Tower.InitialPieces)

	g.cat = NewCharacter(g.cfg.Character.Offset, cat.Y, scene.ParseColor(cat.Color))

	g.phase = scene.PhaseTitle
	g.health = 1
	g.score = 0
	g.paused = false
	g.tickCount = 0
	g.effects = nil
}

func (g *Game) emit(effects ...core.Effect) {
	g.effects = append(g.effects, effects...)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.effects = nil

	switch g.phase {
	case scene.PhaseTitle:
		if _, touched := in.FirstTouch(); touched || in.Has(core.ActionConfirm) {
			g.phase = scene.PhaseReady
			g.emit(core.Effect{Kind: core.EffectRemove, Target: nodePlayButton})
		}
		return g.result()

	case scene.PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}
		return g.result()
	}

	if in.Has(core.ActionPause) && g.phase == scene.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	for _, side := range g.punches(in) {
		if g.phase == scene.PhaseReady {
			g.phase = scene.PhasePlaying
		}
		g.punch(side)
		if g.phase == scene.PhaseGameOver {
			return g.result()
		}
	}

	if g.phase != scene.PhasePlaying {
		return g.result()
	}

	g.tickCount++
	g.health -= g.difficulty.Speed(g.cfg.Health.Drain, g.score, g.tickCount)
	if g.health < 0 {
		g.gameOver()
		return g.result()
	}
	g.emit(core.Effect{Kind: core.EffectScale, Target: nodeHealthBar, Value: g.health})
	g.tower.MoveDown()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Effects: g.effects}
}

// punches converts the frame's touches and left/right keys to punch sides,
// touches first in arrival order.
func (g *Game) punches(in core.InputFrame) []scene.Side {
	var sides []scene.Side
	for _, t := range in.Touches {
		sides = append(sides, g.SideForTouch(t))
	}
	if in.Has(core.ActionLeft) {
		sides = append(sides, scene.SideLeft)
	}
	if in.Has(core.ActionRight) {
		sides = append(sides, scene.SideRight)
	}
	return sides
}

// SideForTouch returns the side a touch punches from.
func (g *Game) SideForTouch(t core.Touch) scene.Side {
	if t.X > g.cfg.Input.TouchSplit {
		return scene.SideRight
	}
	return scene.SideLeft
}

// loses reports whether punching from side against piece ends the game.
// A piece without chopsticks can be punched from either side.
func (g *Game) loses(side scene.Side, piece *Piece) bool {
	if piece.Side == scene.SideNone {
		return false
	}
	if g.cfg.Rule == config.RuleChopstick {
		return side == piece.Side
	}
	return side != piece.Side
}

// punch moves the cat and resolves the hit against the first piece.
func (g *Game) punch(side scene.Side) {
	g.emit(g.cat.SetSide(side)...)

	first, ok := g.tower.First()
	if !ok {
		return
	}

	if g.loses(side, first) {
		g.tower.Drop(g.cfg.Tower.PieceSpacing)
		g.emit(core.Effect{Kind: core.EffectMoveBy, Target: nodeTower, Offset: core.Vec2{Y: -g.cfg.Tower.PieceSpacing}, Ticks: g.runtime.TicksFor(0.2)})
		g.gameOver()
		return
	}

	g.health = math.Min(1, g.health+g.cfg.Health.Reward)
	g.score++
	g.tower.RemoveFirst()
	g.emit(
		core.Effect{Kind: core.EffectClip, Target: first.Name(), Clip: "flip" + capitalize(side.Opposite().String())},
		core.Effect{Kind: core.EffectRemove, Target: first.Name(), Ticks: g.runtime.TicksFor(0.5)},
		core.Effect{Kind: core.EffectText, Target: nodeScoreLabel, Clip: fmt.Sprint(g.score)},
		core.Effect{Kind: core.EffectScale, Target: nodeHealthBar, Value: g.health},
	)
	g.tower.AddRandomPieces(1)
}

// gameOver ends the session once and tints the scene red.
func (g *Game) gameOver() {
	if g.phase == scene.PhaseGameOver {
		return
	}
	g.phase = scene.PhaseGameOver
	if g.health < 0 {
		g.health = 0
	}

	g.cat.Tint = core.ColorRed
	g.emit(core.Effect{Kind: core.EffectColorize, Target: characterNode, Color: core.ColorRed})
	for _, p := range g.tower.Pieces {
		p.Tint = core.ColorRed
		g.emit(core.Effect{Kind: core.EffectColorize, Target: p.Name(), Color: core.ColorRed})
	}
	g.emit(
		core.Effect{Kind: core.EffectScale, Target: nodeHealthBar, Value: g.health},
		core.Effect{Kind: core.EffectText, Target: nodePlayButton, Clip: "Play"},
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == scene.PhaseGameOver,
		Paused:   g.paused,
		Phase:    g.phase.String(),
	}
}

// Phase returns the session phase.
func (g *Game) Phase() scene.Phase {
	return g.phase
}

// Health returns the health meter in [0, 1].
func (g *Game) Health() float64 {
	return g.health
}

// Tower returns the sushi tower.
func (g *Game) Tower() *Tower {
	return g.tower
}

// Character returns the cat.
func (g *Game) Character() *Character {
	return g.cat
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
