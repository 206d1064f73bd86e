package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tapcade/arcade/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintSummary(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := printSummary(&buf, store); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty summary = %q", buf.String())
	}

	store.SaveScore("dodge", "alice", 7)
	store.SaveScore("dodge", "bob", 3)
	store.SaveScore("sushineko", "alice", 21)

	buf.Reset()
	if err := printSummary(&buf, store); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	out := buf.String()
	dodge := strings.Index(out, "Grid Dodge")
	sushi := strings.Index(out, "Sushi Neko")
	if dodge < 0 || sushi < 0 {
		t.Fatalf("summary should list both games:\n%s", out)
	}
	if dodge > sushi {
		t.Errorf("games should be ordered by ID:\n%s", out)
	}
	if !strings.Contains(out, "21") {
		t.Errorf("summary should show the sushineko best score:\n%s", out)
	}
}

func TestPrintScoresAndClear(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("sushineko", "alice", 12)
	store.SaveScore("sushineko", "bob", 30)

	var buf bytes.Buffer
	if err := printScores(&buf, store, "sushineko", "", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "bob") > strings.Index(out, "alice") {
		t.Errorf("higher score should rank first:\n%s", out)
	}
	if !strings.Contains(out, "Players: 2") {
		t.Errorf("stats line missing:\n%s", out)
	}

	buf.Reset()
	printScores(&buf, store, "sushineko", "alice", 10)
	if strings.Contains(buf.String(), "bob") {
		t.Errorf("player filter leaked other players:\n%s", buf.String())
	}

	if err := store.ClearScores("sushineko"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	buf.Reset()
	printScores(&buf, store, "sushineko", "", 10)
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("cleared game should have no scores:\n%s", buf.String())
	}
}
