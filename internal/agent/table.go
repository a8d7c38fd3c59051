package agent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// snapshotEntry is one persisted state row.
type snapshotEntry struct {
	State  State               `json:"state"`
	Values [NumActions]float64 `json:"values"`
}

// snapshot is the on-disk form of the agent's learned memory. Epsilon and
// the episode counter travel with the table so a resumed run continues
// decaying from where it stopped instead of re-exploring from scratch.
type snapshot struct {
	Epsilon  float64         `json:"epsilon"`
	Episodes int             `json:"episodes"`
	Entries  []snapshotEntry `json:"entries"`
}

// Save writes the full Q-table plus epsilon and episode counter to path.
// Entries are sorted by state bit string for stable output.
func (a *Agent) Save(path string) error {
	entries := make([]snapshotEntry, 0, len(a.table))
	for s, v := range a.table {
		entries = append(entries, snapshotEntry{State: s, Values: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].State.String() < entries[j].State.String()
	})

	snap := snapshot{
		Epsilon:  a.epsilon,
		Episodes: a.episodes,
		Entries:  entries,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("agent: cannot marshal table: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("agent: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("agent: cannot write table to %s: %w", path, err)
	}
	return nil
}

// Load restores the Q-table, epsilon and episode counter from path.
// A missing file is not an error: the agent keeps its empty table and starts
// fresh. A corrupt file resets the table to empty and returns an error for
// the caller to log; it must never be fatal.
func (a *Agent) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("agent: cannot read table from %s: %w", path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.table = make(QTable)
		return fmt.Errorf("agent: cannot parse table from %s: %w", path, err)
	}

	table := make(QTable, len(snap.Entries))
	for _, e := range snap.Entries {
		table[e.State] = e.Values
	}
	a.table = table

	if snap.Epsilon > 0 {
		a.epsilon = snap.Epsilon
		if a.epsilon < a.epsilonMin {
			a.epsilon = a.epsilonMin
		}
	}
	a.episodes = snap.Episodes
	return nil
}

// Equal reports whether two tables hold identical rows. Used by round-trip
// tests and debugging tools.
func (t QTable) Equal(other QTable) bool {
	if len(t) != len(other) {
		return false
	}
	for s, v := range t {
		if other[s] != v {
			return false
		}
	}
	return true
}

// Table exposes the live Q-table. Callers must not mutate it while the
// simulation is running.
func (a *Agent) Table() QTable {
	return a.table
}
