package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/storage"
)

// scriptedGame ends after a touch and records what it received.
type scriptedGame struct {
	resetErr error
	resets   int
	touches  []core.Touch
	actions  []core.Action
	over     bool
	score    int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) error {
	g.resets++
	g.over = false
	g.score = 0
	return g.resetErr
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.touches = append(g.touches, in.Touches...)
	for a := range in.Actions {
		g.actions = append(g.actions, a)
	}
	if g.over && in.Has(core.ActionRestart) {
		g.over, g.score = false, 0
	}
	if len(in.Touches) > 0 && !g.over {
		g.score += 3
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	phase := "playing"
	if g.over {
		phase = "gameOver"
	}
	return core.GameState{Score: g.score, GameOver: g.over, Phase: phase}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func step(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelMouseBecomesTouch(t *testing.T) {
	g := &scriptedGame{}
	m := NewGameModel(g, nil, testRuntime())

	m = step(m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(m, TickMsg{})

	if len(g.touches) != 1 {
		t.Fatalf("expected 1 touch delivered, got %d", len(g.touches))
	}
	if g.touches[0].X < 0.75 || g.touches[0].X > 0.8 {
		t.Errorf("touch.X = %v, expected about 0.76", g.touches[0].X)
	}

	// Input is consumed by the tick
	m = step(m, TickMsg{})
	if len(g.touches) != 1 {
		t.Errorf("touch delivered twice")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{}
	m := NewGameModel(g, store, testRuntime(), WithPlayer("neko"))

	m = step(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for i := 0; i < 5; i++ {
		m = step(m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Player != "neko" || scores[0].Score != 3 {
		t.Errorf("saved %s/%d, expected neko/3", scores[0].Player, scores[0].Score)
	}

	// Restart and lose again: a second score is saved
	m = step(m, keyMsg("r"))
	m = step(m, TickMsg{})
	m = step(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(m, TickMsg{})

	scores, _ = store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("expected 2 saved scores after restart, got %d", len(scores))
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &scriptedGame{}
	m := NewGameModel(g, nil, testRuntime())

	// Running game ignores back
	m = step(m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Error("back should be ignored while playing")
	}

	m = step(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(m, TickMsg{})
	m = step(m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("back should return to the menu after game over")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, nil, testRuntime())

	next, cmd := m.Update(keyMsg("q"))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResetError(t *testing.T) {
	g := &scriptedGame{resetErr: errBrokenScene}
	m := NewGameModel(g, nil, testRuntime())

	if m.Err() == nil {
		t.Fatal("expected reset error to be kept")
	}

	m = step(m, TickMsg{})
	if len(g.actions) != 0 || g.resets != 1 {
		t.Error("a game that failed to reset must not be stepped")
	}

	m = step(m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("back should leave a game that cannot start")
	}

	if err := Run(&scriptedGame{resetErr: errBrokenScene}, nil, testRuntime()); err != errBrokenScene {
		t.Errorf("Run() error = %v, expected %v", err, errBrokenScene)
	}
}

var errBrokenScene = &brokenSceneError{}

type brokenSceneError struct{}

func (*brokenSceneError) Error() string { return "scene: missing node" }
