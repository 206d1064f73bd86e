package main

import (
	"fmt"
	"os"

	"github.com/tapcade/arcade/internal/games/dodge"
	"github.com/tapcade/arcade/internal/games/sushineko"
	"github.com/tapcade/arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

// configureGame applies --config and --difficulty to the chosen game before
// it is created.
func configureGame(gameID string) {
	switch gameID {
	case "dodge":
		dodge.SetConfigPath(flagConfig)
		dodge.SetDifficultyPreset(flagDifficulty)
	case "sushineko":
		sushineko.SetConfigPath(flagConfig)
		sushineko.SetDifficultyPreset(flagDifficulty)
	}
}

// mustGame checks the game ID and exits with a hint when it is unknown.
func mustGame(gameID string) {
	if registry.Exists(gameID) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
	os.Exit(1)
}
