package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified game. Without a game,
show a summary of every game that has been played.

Examples:
  arcade scores
  arcade scores dodge
  arcade scores sushineko --player alice
  arcade scores sushineko --limit 25
  arcade scores dodge --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the game")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		mustGame(args[0])
	} else if flagScoresClear {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case len(args) == 0:
		err = printSummary(os.Stdout, store)
	case flagScoresClear:
		err = store.ClearScores(args[0])
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", gameTitle(args[0]))
		}
	default:
		err = printScores(os.Stdout, store, args[0], flagScoresPlayer, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func gameTitle(gameID string) string {
	if game, err := registry.Create(gameID); err == nil {
		return game.Title()
	}
	return gameID
}

// printSummary lists every played game with its stats, by game ID.
func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.AllGameStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-14s  %-6s  %-6s  %-7s  %-7s  %s\n", "Game", "Best", "Games", "Players", "Average", "Last played")
	fmt.Fprintf(w, "  %-14s  %-6s  %-6s  %-7s  %-7s  %s\n", "----", "----", "-----", "-------", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-14s  %-6d  %-6d  %-7d  %-7.1f  %s\n",
			truncate(gameTitle(id), 14), s.HighScore, s.GamesCount, s.Players, s.AvgScore, last)
	}
	return nil
}

// printScores prints the top scores of one game, optionally for one player.
func printScores(w io.Writer, store *storage.Store, gameID, player string, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if player != "" {
		scores, err = store.PlayerScores(gameID, player, limit)
	} else {
		scores, err = store.TopScores(gameID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", gameTitle(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %s\n", i+1, truncate(entry.Player, 16), entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.GameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintf(w, "Best: %d  Games: %d  Players: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
