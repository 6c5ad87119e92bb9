package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndBestRuns(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Planet: "mars", Driver: "ada", Duration: 42 * time.Second, Distance: 130.5, Objectives: 3},
		{Planet: "mars", Driver: "lin", Duration: 31*time.Second + 250*time.Millisecond, Distance: 121, Objectives: 3},
		{Planet: "mars", Driver: "kim", Duration: 55 * time.Second, Distance: 160, Objectives: 3},
		{Planet: "moon", Driver: "ada", Duration: 20 * time.Second, Distance: 95, Objectives: 2},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("mars", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(best))
	}

	wantOrder := []string{"lin", "ada", "kim"}
	for i, want := range wantOrder {
		if best[i].Driver != want {
			t.Errorf("run %d driver = %q, want %q", i, best[i].Driver, want)
		}
	}
	if best[0].Duration != 31250*time.Millisecond {
		t.Errorf("duration = %v, want 31.25s", best[0].Duration)
	}
	if best[0].Distance != 121 || best[0].Objectives != 3 || best[0].Planet != "mars" {
		t.Errorf("run = %+v", best[0])
	}
	if best[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 25; i++ {
		store.SaveRun(Run{Planet: "earth", Duration: time.Duration(i+1) * time.Second})
	}

	runs, err := store.BestRuns("earth", 5)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}

	runs, _ = store.BestRuns("earth", 0)
	if len(runs) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(runs))
	}
}

func TestStoreSaveRunRequiresPlanet(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveRun(Run{Duration: time.Second}); err == nil {
		t.Error("SaveRun() without planet should fail")
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTemp(t)

	if _, ok, err := store.BestTime("moon"); err != nil || ok {
		t.Errorf("BestTime() on empty store = ok %v err %v, want no result", ok, err)
	}

	store.SaveRun(Run{Planet: "moon", Duration: 40 * time.Second})
	store.SaveRun(Run{Planet: "moon", Duration: 25 * time.Second})

	best, ok, err := store.BestTime("moon")
	if err != nil || !ok {
		t.Fatalf("BestTime() = ok %v err %v", ok, err)
	}
	if best != 25*time.Second {
		t.Errorf("BestTime() = %v, want 25s", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{Planet: "earth", Duration: time.Second})
	store.SaveRun(Run{Planet: "mars", Duration: time.Second})

	if err := store.ClearRuns("earth"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.BestRuns("earth", 10); len(runs) != 0 {
		t.Errorf("Expected 0 earth runs after clear, got %d", len(runs))
	}
	if runs, _ := store.BestRuns("mars", 10); len(runs) != 1 {
		t.Errorf("Expected mars runs to survive, got %d", len(runs))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTemp(t)

	for _, p := range []string{"earth", "moon", "mars"} {
		store.SaveRun(Run{Planet: p, Duration: time.Second})
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Planet != "mars" || runs[1].Planet != "moon" {
		t.Errorf("RecentRuns() = %+v, want mars then moon", runs)
	}
}

func TestStoreAllPlanetStats(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{Planet: "mars", Duration: 30 * time.Second, Distance: 100})
	store.SaveRun(Run{Planet: "mars", Duration: 50 * time.Second, Distance: 140})
	store.SaveRun(Run{Planet: "moon", Duration: 20 * time.Second, Distance: 60})

	stats, err := store.AllPlanetStats()
	if err != nil {
		t.Fatalf("AllPlanetStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 planets, got %d", len(stats))
	}

	mars := stats["mars"]
	if mars.Runs != 2 || mars.Best != 30*time.Second || mars.Average != 40*time.Second {
		t.Errorf("mars stats = %+v", mars)
	}
	if mars.TotalDistance != 240 {
		t.Errorf("mars distance = %v, want 240", mars.TotalDistance)
	}
	if mars.LastDriven.IsZero() {
		t.Error("LastDriven not populated")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
