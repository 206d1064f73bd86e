package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tapcade/arcade/internal/core"
)

func step(over bool, score int, effects ...core.Effect) core.StepResult {
	return core.StepResult{
		State:   core.GameState{GameOver: over, Score: score},
		Effects: effects,
	}
}

func TestRecorderSavesOncePerGameOver(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	r := NewRecorder(store, "dodge", "", log.New(&buf))

	if r.Observe(step(false, 2)) {
		t.Error("running game reported as ended")
	}
	if !r.Observe(step(true, 4)) {
		t.Error("first game over tick not reported")
	}
	for i := 0; i < 5; i++ {
		if r.Observe(step(true, 4)) {
			t.Error("game over reported twice")
		}
	}

	scores, _ := store.TopScores("dodge", 10)
	if len(scores) != 1 || scores[0].Score != 4 || scores[0].Player != AnonymousPlayer {
		t.Fatalf("scores = %+v; want one anonymous 4", scores)
	}
	if n := strings.Count(buf.String(), "game over"); n != 1 {
		t.Errorf("logged game over %d times; want 1", n)
	}

	// Restarted session
	r.Observe(step(false, 0))
	r.Observe(step(true, 9))
	scores, _ = store.TopScores("dodge", 10)
	if len(scores) != 2 {
		t.Errorf("got %d scores after restart; want 2", len(scores))
	}
}

func TestRecorderSkipsZeroScores(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store, "sushineko", "neko", log.New(&bytes.Buffer{}))

	r.Observe(step(true, 0))
	if hs, _ := store.HighScore("sushineko"); hs != 0 {
		t.Errorf("HighScore() = %d; want nothing saved", hs)
	}
}

func TestRecorderLogsEffectsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	r := NewRecorder(nil, "sushineko", "neko", logger)

	flip := core.Effect{Kind: core.EffectFlip, Target: "character"}
	r.Observe(step(false, 0, flip))
	if buf.Len() != 0 {
		t.Errorf("effects logged above debug level: %q", buf.String())
	}

	logger.SetLevel(log.DebugLevel)
	r.Observe(step(false, 0, flip))
	if !strings.Contains(buf.String(), flip.String()) {
		t.Errorf("log = %q; want the effect", buf.String())
	}

	// Without a store the game over is still logged
	r.Observe(step(true, 5))
	if !strings.Contains(buf.String(), "game over") {
		t.Error("game over not logged")
	}
}
