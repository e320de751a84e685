package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/highscore"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	store.Close()
}

func TestLoadLedgerDefaultsWhenEmpty(t *testing.T) {
	store := openTestStore(t)

	l, err := store.LoadLedger(highscore.ExpertBoard)
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	if l.Len() != highscore.LedgerSize {
		t.Fatalf("Len() = %d, expected %d", l.Len(), highscore.LedgerSize)
	}
	if got := l.Entries()[0]; got.Name != "Some_Randy" || got.Score != 100 {
		t.Errorf("first entry = %+v, expected the default ledger", got)
	}
}

func TestSaveAndLoadLedger(t *testing.T) {
	store := openTestStore(t)

	l := highscore.NewLedger([]highscore.Entry{
		{Name: "a", Score: 500, Time: 12.5, Clicks: 40},
		{Name: "b", Score: 300, Time: 20, Clicks: 55},
	})
	if err := store.SaveLedger("custom", l); err != nil {
		t.Fatalf("SaveLedger() failed: %v", err)
	}

	got, err := store.LoadLedger("custom")
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	entries := got.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, expected 2", len(entries))
	}
	if entries[0] != (highscore.Entry{Name: "a", Score: 500, Time: 12.5, Clicks: 40}) {
		t.Errorf("entries[0] = %+v", entries[0])
	}

	// Boards are independent
	other, err := store.LoadLedger(highscore.ExpertBoard)
	if err != nil {
		t.Fatalf("LoadLedger() failed: %v", err)
	}
	if other.Entries()[0].Name != "Some_Randy" {
		t.Error("saving one board changed another")
	}

	if err := store.ClearLedger("custom"); err != nil {
		t.Fatalf("ClearLedger() failed: %v", err)
	}
	cleared, _ := store.LoadLedger("custom")
	if cleared.Entries()[0].Name != "Some_Randy" {
		t.Error("ClearLedger() should restore the default ledger")
	}
}

func TestBoardLedgerSubmit(t *testing.T) {
	store := openTestStore(t)
	board := store.Board(highscore.ExpertBoard)

	rank, err := board.Submit(highscore.Entry{Name: "fast", Score: 75, Time: 30, Clicks: 120})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if rank != 3 {
		t.Errorf("Submit() rank = %d, expected 3", rank)
	}

	rank, err = board.Submit(highscore.Entry{Name: "slow", Score: 5})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if rank != -1 {
		t.Errorf("Submit() rank = %d, expected -1", rank)
	}

	entries, err := board.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != highscore.LedgerSize {
		t.Fatalf("len(entries) = %d, expected %d", len(entries), highscore.LedgerSize)
	}
	if entries[3].Name != "fast" || entries[3].Clicks != 120 {
		t.Errorf("entries[3] = %+v, expected the submitted entry", entries[3])
	}
	if entries[9].Score != 20 {
		t.Errorf("last score = %d, expected 20 after the 10 dropped off", entries[9].Score)
	}
}

func TestSaveAndListResults(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveResult(Result{
		Difficulty: "expert",
		Player:     "ace",
		Won:        true,
		Score:      12345,
		Time:       88.5,
		Clicks:     210,
		GridSeed:   1<<63 + 7,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if first.GameUUID == "" || first.ID == 0 {
		t.Errorf("SaveResult() = %+v, expected ID and UUID to be set", first)
	}

	second, err := store.SaveResult(Result{Difficulty: "beginner", Player: "ace", Clicks: 3})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if second.GameUUID == first.GameUUID {
		t.Error("SaveResult() reused a UUID")
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, expected 2", len(results))
	}
	if results[0].ID != second.ID {
		t.Errorf("results[0].ID = %d, expected newest first", results[0].ID)
	}

	got := results[1]
	if !got.Won || got.Score != 12345 || got.Time != 88.5 || got.Clicks != 210 {
		t.Errorf("results[1] = %+v, expected the saved expert win", got)
	}
	if got.GridSeed != 1<<63+7 {
		t.Errorf("GridSeed = %d, expected %d", got.GridSeed, uint64(1<<63+7))
	}

	limited, err := store.RecentResults(1)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("RecentResults(1) returned %d rows", len(limited))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("expert")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty table = %+v", empty)
	}

	for _, r := range []Result{
		{Difficulty: "expert", Won: true, Score: 500, Time: 100},
		{Difficulty: "expert", Won: true, Score: 800, Time: 60},
		{Difficulty: "expert", Won: false, Time: 5},
		{Difficulty: "beginner", Won: true, Score: 9999, Time: 2},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	st, err := store.Stats("expert")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 3 {
		t.Errorf("Games = %d, expected 3", st.Games)
	}
	if st.Wins != 2 {
		t.Errorf("Wins = %d, expected 2", st.Wins)
	}
	if st.BestScore != 800 {
		t.Errorf("BestScore = %d, expected 800", st.BestScore)
	}
	if st.BestTime != 60 {
		t.Errorf("BestTime = %v, expected 60", st.BestTime)
	}
	if st.AvgTime != 80 {
		t.Errorf("AvgTime = %v, expected 80", st.AvgTime)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
