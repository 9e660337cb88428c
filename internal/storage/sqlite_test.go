package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

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

	id, err := store.SaveRun(Run{
		ScenarioID: "triple",
		DiskCount:  3,
		Found:      true,
		X:          1.2,
		Y:          0,
		Epsilon:    1e-9,
		Duration:   42 * time.Microsecond,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() should assign an ID")
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if run.ScenarioID != "triple" || run.DiskCount != 3 || !run.Found {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.X != 1.2 || run.Y != 0 || run.Epsilon != 1e-9 {
		t.Errorf("unexpected witness/epsilon: %+v", run)
	}
	if run.Duration != 42*time.Microsecond {
		t.Errorf("Duration = %v, expected 42µs", run.Duration)
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing run, got %+v", missing)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := store.SaveRun(Run{ScenarioID: "shared", DiskCount: 2}); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("SaveRun() failed: %v", err)
	}
	stats, err := store.ScenarioStats("shared")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if stats.Runs != writers*perWriter {
		t.Errorf("stored %d runs, expected %d", stats.Runs, writers*perWriter)
	}
}

func TestStoreKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", ScenarioID: "x", DiskCount: 1, Found: true})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() = %q, expected fixed-id", id)
	}
	if _, err := store.SaveRun(Run{ID: "fixed-id", ScenarioID: "x"}); err == nil {
		t.Error("SaveRun() should reject duplicate IDs")
	}
}

func TestStoreNotFoundClearsWitness(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ScenarioID: "disjoint", DiskCount: 2, X: 5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	run, err := store.RunByID(id)
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.Found || run.X != 0 || run.Y != 0 {
		t.Errorf("not-found run should have zero witness, got %+v", run)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{ScenarioID: "s", DiskCount: i + 1}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order, newest first
	if runs[0].DiskCount != 5 || runs[2].DiskCount != 3 {
		t.Errorf("runs not newest first: %d, %d, %d", runs[0].DiskCount, runs[1].DiskCount, runs[2].DiskCount)
	}
}

func TestStoreRunsForScenarioAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{ScenarioID: "a", DiskCount: 2, Found: true, Duration: 10 * time.Microsecond})
	store.SaveRun(Run{ScenarioID: "a", DiskCount: 2, Found: false, Duration: 30 * time.Microsecond})
	store.SaveRun(Run{ScenarioID: "b", DiskCount: 4, Found: true})

	runs, err := store.RunsForScenario("a", 10)
	if err != nil {
		t.Fatalf("RunsForScenario() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs for a, got %d", len(runs))
	}

	stats, err := store.ScenarioStats("a")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Found != 1 {
		t.Errorf("stats = %+v, expected 2 runs with 1 found", stats)
	}
	if stats.AvgDuration != 20*time.Microsecond {
		t.Errorf("AvgDuration = %v, expected 20µs", stats.AvgDuration)
	}

	empty, err := store.ScenarioStats("none")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastRun.IsZero() {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}

func TestStoreScenarioIDs(t *testing.T) {
	store := openTestStore(t)

	ids, err := store.ScenarioIDs()
	if err != nil {
		t.Fatalf("ScenarioIDs() failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no IDs on an empty store, got %v", ids)
	}

	for _, id := range []string{"b", "a", "b"} {
		if _, err := store.SaveRun(Run{ScenarioID: id, DiskCount: 1}); err != nil {
			t.Fatal(err)
		}
	}

	ids, err = store.ScenarioIDs()
	if err != nil {
		t.Fatalf("ScenarioIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ScenarioIDs() = %v, expected [a b]", ids)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{ScenarioID: "a", DiskCount: 1})
	store.SaveRun(Run{ScenarioID: "b", DiskCount: 1})

	if err := store.ClearRuns("a"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	aRuns, _ := store.RunsForScenario("a", 10)
	if len(aRuns) != 0 {
		t.Errorf("expected no runs for a after clear, got %d", len(aRuns))
	}
	bRuns, _ := store.RunsForScenario("b", 10)
	if len(bRuns) != 1 {
		t.Error("runs of b should not be affected by clearing a")
	}
}
