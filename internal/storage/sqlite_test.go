package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game   string
		player string
		score  int
	}{
		{"sushineko", "mika", 100},
		{"sushineko", "jun", 50},
		{"sushineko", "mika", 200},
		{"dodge", "jun", 500},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore(%s, %s, %d) failed: %v", s.game, s.player, s.score, err)
		}
	}

	scores, err := store.TopScores("sushineko", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		player string
		score  int
	}{{"mika", 200}, {"mika", 100}, {"jun", 50}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Player != w.player {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
		if scores[i].GameID != "sushineko" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	dodgeScores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(dodgeScores) != 1 || dodgeScores[0].Score != 500 {
		t.Errorf("Expected one dodge score of 500, got %+v", dodgeScores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("dodge", "p", i*10)
	}

	scores, err := store.TopScores("dodge", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, _ = store.TopScores("dodge", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dodge", "first", 7)
	store.SaveScore("dodge", "second", 7)

	scores, _ := store.TopScores("dodge", 2)
	if len(scores) != 2 || scores[0].Player != "first" {
		t.Errorf("Expected the earlier score first on ties, got %+v", scores)
	}
}

func TestStoreAnonymousPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dodge", "   ", 3)
	scores, _ := store.TopScores("dodge", 1)
	if len(scores) != 1 || scores[0].Player != AnonymousPlayer {
		t.Errorf("Expected blank player to be stored as %q, got %+v", AnonymousPlayer, scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sushineko", "mika", 10)
	store.SaveScore("sushineko", "jun", 40)
	store.SaveScore("sushineko", "mika", 30)
	store.SaveScore("dodge", "mika", 99)

	scores, err := store.PlayerScores("sushineko", "mika", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 30 || scores[1].Score != 10 {
		t.Errorf("Expected mika's sushineko scores [30 10], got %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("dodge", "a", 100)
	store.SaveScore("dodge", "b", 300)
	store.SaveScore("dodge", "c", 200)

	high, err = store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dodge", "a", 100)
	store.SaveScore("dodge", "a", 200)
	store.SaveScore("sushineko", "a", 500)

	if err := store.ClearScores("dodge"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("dodge", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 dodge scores after clear, got %d", len(scores))
	}

	scores, _ = store.TopScores("sushineko", 10)
	if len(scores) != 1 {
		t.Errorf("Expected 1 sushineko score (unaffected), got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("dodge")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for unplayed game, got %+v", empty)
	}

	store.SaveScore("dodge", "a", 10)
	store.SaveScore("dodge", "b", 20)
	store.SaveScore("dodge", "a", 30)

	stats, err := store.GameStats("dodge")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.Players != 2 {
		t.Errorf("Players = %d, expected 2", stats.Players)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("TotalScore = %d, expected 60", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreAllGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dodge", "a", 10)
	store.SaveScore("sushineko", "a", 7)
	store.SaveScore("sushineko", "b", 9)

	all, err := store.AllGameStats()
	if err != nil {
		t.Fatalf("AllGameStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if s := all["sushineko"]; s.GamesCount != 2 || s.HighScore != 9 || s.Players != 2 {
		t.Errorf("sushineko stats = %+v", s)
	}
	if s := all["dodge"]; s.GamesCount != 1 || s.HighScore != 10 {
		t.Errorf("dodge stats = %+v", s)
	}
}

func TestStoreMigratesLegacyTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('dodge', 42);
	`)
	if err != nil {
		t.Fatalf("legacy schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != AnonymousPlayer || scores[0].Score != 42 {
		t.Errorf("Expected legacy row as anonymous/42, got %+v", scores)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveScore("dodge", "a", 12345)
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	high, _ := store2.HighScore("dodge")
	if high != 12345 {
		t.Errorf("Expected persisted high score 12345, got %d", high)
	}
}
