package storage

import (
	"github.com/charmbracelet/log"

	"github.com/tapcade/arcade/internal/core"
)

// Recorder follows the step results of one game for a frontend. It logs
// effects at debug level, logs each game over, and saves the score of every
// finished session once. A nil store only disables saving.
type Recorder struct {
	store  *Store
	logger *log.Logger
	gameID string
	player string
	over   bool
	saved  bool
}

// NewRecorder creates a recorder for gameID played by player.
func NewRecorder(store *Store, gameID, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	if player == "" {
		player = AnonymousPlayer
	}
	return &Recorder{store: store, logger: logger, gameID: gameID, player: player}
}

// Reset starts over from state, typically right after the game was reset.
func (r *Recorder) Reset(state core.GameState) {
	r.over = state.GameOver
	r.saved = false
}

// Observe records one step and reports whether the game just ended.
func (r *Recorder) Observe(res core.StepResult) bool {
	if r.logger.GetLevel() <= log.DebugLevel {
		for _, e := range res.Effects {
			r.logger.Debug("effect", "game", r.gameID, "effect", e.String())
		}
	}

	ended := res.State.GameOver && !r.over
	r.over = res.State.GameOver
	if ended {
		r.logger.Info("game over", "game", r.gameID, "player", r.player, "score", res.State.Score)
	}

	// A restarted session can score again
	if !res.State.GameOver {
		r.saved = false
		return ended
	}
	if !r.saved && res.State.Score > 0 {
		if r.store != nil {
			if _, err := r.store.SaveScore(r.gameID, r.player, res.State.Score); err != nil {
				r.logger.Warn("could not save score", "game", r.gameID, "error", err)
			}
		}
		r.saved = true
	}
	return ended
}
