package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	version, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("SchemaVersion() = %d, want %d", version, len(migrations))
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("numbermatch/normal", Result{Score: 120, Moves: 4}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	// A second Open must skip the applied migrations.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("numbermatch/normal")
	if err != nil || high != 120 {
		t.Errorf("HighScore() = %d, %v; want 120", high, err)
	}
}

func TestStoreRejectsNewerSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("set user_version: %v", err)
	}
	store.Close()

	if store, err := Open(dbPath); err == nil {
		store.Close()
		t.Error("Open() should refuse a schema from a newer build")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{{100, 5}, {50, 2}, {200, 9}} {
		if _, err := store.SaveScore("numbermatch/normal", r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("numbermatch/hard", Result{Score: 500}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("numbermatch/normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []Result{{200, 9}, {100, 5}, {50, 2}}
	for i, w := range want {
		got := scores[i]
		if got.Score != w.Score || got.Moves != w.Moves || got.Board != "numbermatch/normal" {
			t.Errorf("scores[%d] = %+v, want %+v", i, got, w)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not set", i)
		}
	}

	hardScores, err := store.TopScores("numbermatch/hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hardScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", Result{Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("numbermatch/easy", Result{Score: 80, Moves: 3})
	second, _ := store.SaveScore("numbermatch/easy", Result{Score: 80, Moves: 2})

	scores, err := store.TopScores("numbermatch/easy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("TopScores() = %+v, want ids %d then %d", scores, first, second)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("numbermatch/normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveScore("numbermatch/normal", Result{Score: 100})
	store.SaveScore("numbermatch/normal", Result{Score: 300})
	store.SaveScore("numbermatch/normal", Result{Score: 200})

	high, err = store.HighScore("numbermatch/normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("numbermatch/normal", Result{Score: 100})
	store.SaveScore("numbermatch/normal", Result{Score: 200})
	store.SaveScore("numbermatch/hard", Result{Score: 300})

	if err := store.ClearScores("numbermatch/normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores("numbermatch/normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}
	hard, _ := store.TopScores("numbermatch/hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing normal")
	}
}

func TestStoreBoards(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("numbermatch/normal", Result{Score: 100})
	store.SaveScore("numbermatch/easy", Result{Score: 50})
	store.SaveScore("numbermatch/normal", Result{Score: 70})
	store.SaveScore("numbermatch_timed/hard", Result{Score: 10})

	boards, err := store.Boards()
	if err != nil {
		t.Fatalf("Boards() failed: %v", err)
	}

	want := []string{"numbermatch/easy", "numbermatch/normal", "numbermatch_timed/hard"}
	if len(boards) != len(want) {
		t.Fatalf("Boards() = %v, want %v", boards, want)
	}
	for i := range want {
		if boards[i] != want[i] {
			t.Errorf("Boards()[%d] = %q, want %q", i, boards[i], want[i])
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("numbermatch/normal", Result{Score: 100, Moves: 4})
	store.SaveScore("numbermatch/normal", Result{Score: 300, Moves: 12})
	store.SaveScore("numbermatch/normal", Result{Score: 300, Moves: 9})

	stats, err := store.Stats("numbermatch/normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 || stats.Best != 300 || stats.Total != 700 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.BestMoves != 9 {
		t.Errorf("BestMoves = %d, want 9", stats.BestMoves)
	}
	if stats.Average < 233.3 || stats.Average > 233.4 {
		t.Errorf("Average = %v, want 233.3", stats.Average)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("nothing")
	if err != nil {
		t.Fatalf("Stats(empty) failed: %v", err)
	}
	if empty.Games != 0 || empty.Board != "nothing" || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats(empty) = %+v", empty)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/player")

	tests := []struct {
		in, want string
	}{
		{"~/.numbermatch/scores.db", "/home/player/.numbermatch/scores.db"},
		{"~", "/home/player"},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"~other/scores.db", "~other/scores.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
