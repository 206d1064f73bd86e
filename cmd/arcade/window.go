package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tapcade/arcade/internal/core"
	"github.com/tapcade/arcade/internal/platform/window"
	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/storage"
)

var (
	flagCols  int
	flagRows  int
	flagScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the game in a desktop window. The window shows the same cell
screen as the terminal, so --cols and --rows set its size in cells.

Controls are the same as 'arcade play'. Mouse clicks and touch screens
both count as touches.

Examples:
  arcade window sushineko
  arcade window dodge --cols 100 --rows 40 --scale 1.5`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCols, "cols", 80, "Screen width in cells")
	windowCmd.Flags().IntVar(&flagRows, "rows", 30, "Screen height in cells")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustGame(gameID)

	cfg := core.RuntimeConfig{
		ScreenW:  flagCols,
		ScreenH:  flagRows,
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

	runErr := window.Run(game, cfg, window.Options{
		Store:  store,
		Player: localPlayer(),
		Logger: log.Default(),
		Scale:  flagScale,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
