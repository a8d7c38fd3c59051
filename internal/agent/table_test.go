package agent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "qtable.json")

	a := newTestAgent(0.3, 1)
	a.table[State{FoodRight: true}] = [NumActions]float64{0.1, 0.9, -0.3, 0}
	a.table[State{DangerUp: true, FoodNear: true}] = [NumActions]float64{-1, 2, 3, 4}
	a.episodes = 17

	if err := a.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	b := newTestAgent(0.5, 2)
	if err := b.Load(path); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !a.table.Equal(b.table) {
		t.Error("Loaded table does not match saved table")
	}
	if b.Epsilon() != 0.3 {
		t.Errorf("Epsilon = %v, expected restored 0.3", b.Epsilon())
	}
	if b.Episodes() != 17 {
		t.Errorf("Episodes = %d, expected restored 17", b.Episodes())
	}
}

func TestSaveEmptyTable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "qtable.json")

	a := newTestAgent(0.5, 1)
	if err := a.Save(path); err != nil {
		t.Fatalf("Save() of empty table failed: %v", err)
	}

	b := newTestAgent(0.5, 2)
	if err := b.Load(path); err != nil {
		t.Fatalf("Load() of empty table failed: %v", err)
	}
	if b.Known() != 0 {
		t.Errorf("Expected empty table, got %d states", b.Known())
	}
}

func TestLoadMissingFileIsFresh(t *testing.T) {
	a := newTestAgent(0.5, 1)
	a.table[State{FoodLeft: true}] = [NumActions]float64{1, 0, 0, 0}

	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	if err := a.Load(path); err != nil {
		t.Fatalf("Load() of missing file should not error, got: %v", err)
	}

	// The agent keeps whatever it had
	if a.Known() != 1 {
		t.Errorf("Table should be untouched on missing file, got %d states", a.Known())
	}
}

func TestLoadCorruptFileResets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "qtable.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	a := newTestAgent(0.5, 1)
	a.table[State{FoodLeft: true}] = [NumActions]float64{1, 0, 0, 0}

	err := a.Load(path)
	if err == nil {
		t.Fatal("Load() of corrupt file should return an error")
	}
	if a.Known() != 0 {
		t.Errorf("Corrupt file should reset the table, got %d states", a.Known())
	}
}

func TestLoadClampsEpsilonToFloor(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "qtable.json")

	a := newTestAgent(0.5, 1)
	a.epsilon = 0.001 // below the 0.01 floor, as if written by an older run
	if err := a.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	b := newTestAgent(0.5, 2)
	if err := b.Load(path); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if b.Epsilon() != b.epsilonMin {
		t.Errorf("Epsilon = %v, expected clamped to floor %v", b.Epsilon(), b.epsilonMin)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "deep", "nested", "qtable.json")

	a := newTestAgent(0.5, 1)
	if err := a.Save(path); err != nil {
		t.Fatalf("Save() with nested path failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Q-table file was not created in nested directory")
	}
}

func TestQTableEqual(t *testing.T) {
	a := QTable{
		{FoodRight: true}: {1, 2, 3, 4},
	}
	b := QTable{
		{FoodRight: true}: {1, 2, 3, 4},
	}
	if !a.Equal(b) {
		t.Error("Identical tables should be equal")
	}

	b[State{FoodLeft: true}] = [NumActions]float64{0, 0, 0, 1}
	if a.Equal(b) {
		t.Error("Tables with different sizes should not be equal")
	}

	c := QTable{
		{FoodRight: true}: {1, 2, 3, 5},
	}
	if a.Equal(c) {
		t.Error("Tables with different values should not be equal")
	}
}
