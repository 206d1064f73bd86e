// Package dodge implements Grid Dodge: the player square hops between the
// lanes of a 3x3 board while enemies cross it from a ring of 12 spawn points.
package dodge

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
	nodeBoard      = "board"
	nodePlayer     = "player"
	nodeScoreLabel = "scoreLabel"
	nodePlayButton = "playButton"
)

const spawnKey = "spawn"

// Player is the swipe-controlled square.
type Player struct {
	Box  core.Box
	Tint core.Color
}

// Game implements the Grid Dodge scene controller.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DodgeConfig
	layout     *scene.Layout
	difficulty *config.DifficultyManager
	sched      *scene.Scheduler
	spawner    *Spawner
	stripes    []core.Box
	player     Player
	phase      scene.Phase
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

// New creates a new Grid Dodge game instance.
func New() *Game {
	return &Game{sched: scene.NewScheduler()}
}

func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Grid Dodge"
}

// Reset loads config and scene, then starts a fresh session on the title.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		return fmt.Errorf("dodge: %w", err)
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)

	layout, err := scene.ParseLayout(sceneYAML)
	if err != nil {
		return fmt.Errorf("dodge: %w", err)
	}
	if err := layout.Require(nodeBoard, nodePlayer, nodeScoreLabel, nodePlayButton); err != nil {
		return fmt.Errorf("dodge: %w", err)
	}

	g.cfg = cfg
	g.layout = layout
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.spawner = nil
	g.sessions = 0
	g.start()
	return nil
}

// start rebuilds the scene from the already validated config and layout.
func (g *Game) start() {
	w, h := g.layout.Width, g.layout.Height

	g.stripes = BoardStripes(w, h, g.cfg.Board)

	player, _ := g.layout.Node(nodePlayer)
	g.player = Player{
		Box: core.Box{
			Center: core.Vec2{X: w / 2, Y: h / 2},
			W:      g.cfg.Player.Size,
			H:      g.cfg.Player.Size,
		},
		Tint: scene.ParseColor(player.Color),
	}

	seed := g.runtime.Seed + int64(g.sessions)
	g.sessions++
	if g.spawner == nil {
		g.spawner = NewSpawner(seed, w, h, g.cfg.Enemies.SpawnOffset, g.cfg.Enemies.Size, g.cfg.Enemies.ExitMargin)
	} else {
		g.spawner.Reset(seed)
	}

	g.sched.Clear()
	g.phase = scene.PhaseTitle
	g.score = 0
	g.paused = false
	g.tickCount = 0
	g.effects = nil
	g.armSpawn()
}

// BoardStripes returns the horizontal then vertical lane stripes, centered
// on the frame and spaced evenly.
func BoardStripes(w, h float64, b config.DodgeBoard) []core.Box {
	stripes := make([]core.Box, 0, 2*b.Lanes)
	half := b.Lanes / 2
	for i := -half; i <= half; i++ {
		stripes = append(stripes, core.Box{
			Center: core.Vec2{X: w / 2, Y: h/2 + float64(i)*b.StripeSpacing},
			W:      w,
			H:      b.StripeThickness,
		})
	}
	for i := -half; i <= half; i++ {
		stripes = append(stripes, core.Box{
			Center: core.Vec2{X: w/2 + float64(i)*b.StripeSpacing, Y: h / 2},
			W:      b.StripeThickness,
			H:      h,
		})
	}
	return stripes
}

// armSpawn schedules the next spawn. The timer re-arms itself, and re-arming
// replaces any pending spawn so restarts never stack timers.
func (g *Game) armSpawn() {
	interval := g.difficulty.Interval(g.cfg.Enemies.SpawnInterval, g.score, g.tickCount)
	g.sched.After(spawnKey, g.runtime.TicksFor(interval), func() {
		travel := g.cfg.Enemies.TravelTime / g.difficulty.Speed(1, g.score, g.tickCount)
		e := g.spawner.Spawn(g.runtime.TicksFor(travel))
		g.emit(core.Effect{Kind: core.EffectMoveBy, Target: e.Name(), Offset: e.mover.To.Sub(e.mover.From), Ticks: e.mover.Total})
		g.armSpawn()
	})
}

func (g *Game) emit(e core.Effect) {
	g.effects = append(g.effects, e)
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

	dir, swiped := g.swipe(in)
	_, touched := in.FirstTouch()
	if g.phase == scene.PhaseReady && (swiped || touched) {
		g.phase = scene.PhasePlaying
	}
	// Touches next to the player start the game without moving it
	if swiped {
		g.move(dir)
	}

	if g.phase != scene.PhasePlaying {
		return g.result()
	}

	g.tickCount++
	g.sched.Advance()

	// Each enemy that completes its crossing was dodged
	if exited := g.spawner.Step(); len(exited) > 0 {
		for _, e := range exited {
			g.emit(core.Effect{Kind: core.EffectRemove, Target: e.Name()})
		}
		g.score += len(exited)
		g.emit(core.Effect{Kind: core.EffectText, Target: nodeScoreLabel, Clip: fmt.Sprintf("Score: %d", g.score)})
	}

	if g.collides() {
		g.gameOver()
	}
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Effects: g.effects}
}

// swipe returns the swipe carried by the input. Touches count as a swipe
// from the player toward the touched point along its dominant axis.
func (g *Game) swipe(in core.InputFrame) (scene.Direction, bool) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return scene.DirectionFromAction(a)
		}
	}

	t, ok := in.FirstTouch()
	if !ok {
		return 0, false
	}
	p := g.touchToScene(t)
	d := p.Sub(g.player.Box.Center)
	deadZone := g.cfg.Player.Size / 2
	if math.Abs(d.X) < deadZone && math.Abs(d.Y) < deadZone {
		return 0, false
	}
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > 0 {
			return scene.DirRight, true
		}
		return scene.DirLeft, true
	}
	if d.Y > 0 {
		return scene.DirUp, true
	}
	return scene.DirDown, true
}

// move shifts the player one step, clamped so it stays inside the frame.
func (g *Game) move(dir scene.Direction) {
	half := g.player.Box.W / 2
	from := g.player.Box.Center
	to := from.Add(dir.Vector().Scale(g.cfg.Player.Step))
	to.X = core.ClampF(to.X, half, g.layout.Width-half)
	to.Y = core.ClampF(to.Y, half, g.layout.Height-half)
	g.player.Box.Center = to
	if to != from {
		g.emit(core.Effect{Kind: core.EffectMoveBy, Target: nodePlayer, Offset: to.Sub(from)})
	}
}

func (g *Game) collides() bool {
	for _, e := range g.spawner.Enemies() {
		if g.player.Box.Intersects(e.Box) {
			return true
		}
	}
	return false
}

// gameOver freezes the scene and tints every actor red.
func (g *Game) gameOver() {
	g.phase = scene.PhaseGameOver
	g.sched.Cancel(spawnKey)

	g.player.Tint = core.ColorRed
	g.emit(core.Effect{Kind: core.EffectColorize, Target: nodePlayer, Color: core.ColorRed})
	for _, e := range g.spawner.Enemies() {
		e.Tint = core.ColorRed
		g.emit(core.Effect{Kind: core.EffectColorize, Target: e.Name(), Color: core.ColorRed})
	}
	g.emit(core.Effect{Kind: core.EffectText, Target: nodePlayButton, Clip: "Restart"})
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

// Player returns the player square.
func (g *Game) Player() Player {
	return g.player
}

// Spawner returns the enemy spawner.
func (g *Game) Spawner() *Spawner {
	return g.spawner
}
