package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/habitat/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the live population at one point of a run.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	BoardSize     int   `json:"board_size"`
	Tick          int32 `json:"tick"`
	TotalMovement int   `json:"total_movement"`

	Entities []EntityState `json:"entities"`
}

// EntityState holds one entity's state.
type EntityState struct {
	ID      uint32             `json:"id"`
	Species components.Species `json:"species"`
	Gender  components.Gender  `json:"gender"`
	Hunter  bool               `json:"hunter,omitempty"`
	X       int                `json:"x"`
	Y       int                `json:"y"`

	Lifetime *LifetimeStatsJSON `json:"lifetime,omitempty"`
}

// LifetimeStatsJSON is the JSON-serializable form of LifetimeStats.
type LifetimeStatsJSON struct {
	BirthTick  int32  `json:"birth_tick"`
	MotherID   uint32 `json:"mother_id,omitempty"`
	FatherID   uint32 `json:"father_id,omitempty"`
	Moves      int    `json:"moves"`
	StepsTaken int    `json:"steps_taken"`
	Stuck      int    `json:"stuck"`
	Kills      int    `json:"kills"`
	Children   int    `json:"children"`
}

// ToJSON converts LifetimeStats to its JSON form.
func (ls *LifetimeStats) ToJSON() *LifetimeStatsJSON {
	if ls == nil {
		return nil
	}
	return &LifetimeStatsJSON{
		BirthTick:  ls.BirthTick,
		MotherID:   ls.MotherID,
		FatherID:   ls.FatherID,
		Moves:      ls.Moves,
		StepsTaken: ls.StepsTaken,
		Stuck:      ls.Stuck,
		Kills:      ls.Kills,
		Children:   ls.Children,
	}
}

// SaveSnapshot writes a snapshot to dir.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snapshot_%d.json", snapshot.Tick))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
