package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/storage"
)

// GameModel is the Bubble Tea model for running one arcade game.
// It is used on its own by `arcade play` and inside SessionModel over SSH.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	err        error
	quitting   bool
	backToMenu bool
	quitOnBack bool // standalone programs end so the caller can show its menu
	recorder   *storage.Recorder
}

// GameOption customizes a GameModel.
type GameOption func(*GameModel)

// WithLogger sets the logger used for session and effect events.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer sets the name scores are saved under.
func WithPlayer(name string) GameOption {
	return func(m *GameModel) {
		m.player = name
	}
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.Default(),
		player:     storage.AnonymousPlayer,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.recorder = storage.NewRecorder(store, game.ID(), m.player, m.logger)
	m.reset()
	return m
}

// reset starts a fresh session. A failed reset is kept and shown instead of
// the game.
func (m *GameModel) reset() {
	m.err = m.game.Reset(m.config)
	if m.err != nil {
		m.logger.Error("game reset failed", "game", m.game.ID(), "error", m.err)
		return
	}
	m.gameState = m.game.State()
	m.recorder.Reset(m.gameState)
	m.logger.Debug("game reset", "game", m.game.ID(), "seed", m.config.Seed, "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.config.ScreenW, m.config.ScreenH, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu (B or Esc) when the game is not running
	if m.inputFrame.Has(core.ActionBack) && (m.err != nil || m.gameState.GameOver || m.gameState.Paused || m.gameState.Phase == "title") {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. Games lay out against the
// screen size at reset, so a session that has not started yet is rebuilt.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.err == nil && m.gameState.Phase != "playing" && !m.gameState.GameOver {
		m.reset()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.err != nil || m.backToMenu {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Observe(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		m.screen.Clear()
		m.screen.DrawMessageBox("CANNOT START "+m.game.Title(), "Esc: back  Q: quit")
		m.screen.DrawTextColor(1, m.screen.Height()-1, m.err.Error(), core.ColorRed)
		return RenderScreen(m.screen)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Err returns the error that prevented the game from starting, if any.
func (m GameModel) Err() error {
	return m.err
}

// State returns the latest game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game. It returns the reset
// error when the game could not start.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) error {
	model := NewGameModel(game, store, cfg, opts...)
	model.quitOnBack = true
	if err := model.Err(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
