package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	scores := []int{150, 420, 90, 420, 310}
	for i, sc := range scores {
		id, err := store.SaveRun(RunEntry{
			Score:      sc,
			Difficulty: i % 3,
			Columns:    sc / 3,
			Ticks:      uint64(sc * 6),
			Seed:       int64(1000 + i),
		})
		if err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
		if id <= 0 {
			t.Errorf("inserted ID = %d", id)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("failed to query top runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, expected 3", len(runs))
	}
	if runs[0].Score != 420 || runs[1].Score != 420 || runs[2].Score != 310 {
		t.Errorf("top scores = [%d, %d, %d]", runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[0].Seed == 0 || runs[0].Ticks == 0 {
		t.Error("run metadata should round-trip")
	}
}

func TestTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(RunEntry{Score: i * 10}); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
	}

	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("failed to query top runs: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("got %d runs, expected default limit of 10", len(runs))
	}
}

func TestAllRuns(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{5, 25, 15} {
		if _, err := store.SaveRun(RunEntry{Score: sc}); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("failed to query runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, expected 3", len(runs))
	}
	if runs[0].Score != 25 || runs[2].Score != 5 {
		t.Error("runs should come back best first")
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("failed to query high score: %v", err)
	}
	if score != 0 {
		t.Errorf("high score of empty store = %d, expected 0", score)
	}

	for _, sc := range []int{120, 740, 300} {
		if _, err := store.SaveRun(RunEntry{Score: sc}); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
	}

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("failed to query high score: %v", err)
	}
	if score != 740 {
		t.Errorf("high score = %d, expected 740", score)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{Score: 50}); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("failed to clear runs: %v", err)
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("failed to query runs: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs after clear, expected 0", len(runs))
	}
}

func TestGetRunStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}
	if stats.RunCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, sc := range []int{100, 200, 300} {
		if _, err := store.SaveRun(RunEntry{Score: sc}); err != nil {
			t.Fatalf("failed to save run: %v", err)
		}
	}

	stats, err = store.GetRunStats()
	if err != nil {
		t.Fatalf("failed to get stats: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("run count = %d, expected 3", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("high score = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg score = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("total score = %d, expected 600", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be populated")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if _, err := store.SaveRun(RunEntry{Score: 888, Seed: 7}); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("failed to query high score: %v", err)
	}
	if score != 888 {
		t.Errorf("high score after reopen = %d, expected 888", score)
	}
}
