package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/platform/tui"
	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  Mouse click      - Touch (tap a side, or tap next to the player)
  Arrows/WASD      - Swipe (dodge) or punch left/right (sushineko)
  Enter/Space      - Play / restart
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play dodge
  arcade play dodge --difficulty hard
  arcade play sushineko --config ./my-sushi.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, windowCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustGame(gameID)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.WithPlayer(localPlayer()), tui.WithLogger(log.Default()))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
