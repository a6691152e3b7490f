package storage

import (
	"os"
	"path/filepath"
	"sync"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.colorcrush/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".colorcrush", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore("colorcrush", 420); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("colorcrush")
	if err != nil || high != 420 {
		t.Errorf("HighScore() after reopen = %d, %v; expected 420", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game, player string
		score        int
	}{
		{"colorcrush", "ann", 100},
		{"colorcrush", "bob", 50},
		{"colorcrush", "ann", 200},
		{"other", "bob", 500},
	} {
		if _, err := store.SaveScore(s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("colorcrush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "ann" {
		t.Errorf("scores[0].Player = %q, expected ann", scores[0].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("colorcrush", "", (i+1)*100)
	}

	scores, err := store.TopScores("colorcrush", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)
	first, _ := store.SaveScore("colorcrush", "first", 100)
	store.SaveScore("colorcrush", "second", 100)

	scores, err := store.TopScores("colorcrush", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first {
		t.Errorf("earlier game should rank first on ties: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("colorcrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for a new game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		if err := store.SaveHighScore("colorcrush", s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}

	high, _ = store.HighScore("colorcrush")
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300 (lower saves are ignored)", high)
	}
}

func TestGameHighScore(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores("colorcrush")

	if err := hs.SaveHighScore(90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.SaveHighScore("other", 1000)

	got, err := hs.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 90 {
		t.Errorf("LoadHighScore() = %d, expected 90", got)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.SaveHighScore("colorcrush", (i+1)*10); err != nil {
				t.Errorf("SaveHighScore() failed: %v", err)
			}
			if _, err := store.SaveScore("colorcrush", "ssh", i); err != nil {
				t.Errorf("SaveScore() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	high, _ := store.HighScore("colorcrush")
	if high != 80 {
		t.Errorf("HighScore() = %d, expected 80", high)
	}
	stats, _ := store.GetGameStats("colorcrush")
	if stats.GamesCount != 8 {
		t.Errorf("GamesCount = %d, expected 8", stats.GamesCount)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("colorcrush", "", 100)
	store.SaveHighScore("colorcrush", 100)
	store.SaveScore("other", "", 300)

	if err := store.ClearScores("colorcrush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("colorcrush", 10); len(scores) != 0 {
		t.Errorf("expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("colorcrush"); high != 0 {
		t.Errorf("high score should be cleared, got %d", high)
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("colorcrush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("colorcrush", "", 100)
	store.SaveScore("colorcrush", "", 300)
	store.SaveHighScore("colorcrush", 450) // a game still in progress

	stats, err = store.GetGameStats("colorcrush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.HighScore != 450 {
		t.Errorf("HighScore = %d, expected 450", stats.HighScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
