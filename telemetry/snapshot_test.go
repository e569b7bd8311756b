package telemetry

import (
	"testing"

	"github.com/pthm-cable/habitat/components"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	lt := NewLifetimeTracker()
	lt.Register(3, 0, components.Wolf, 0, 0)
	lt.RecordMove(3, 2, true)
	lt.RecordKill(3)
	lt.RecordChild(3)

	snapshot := &Snapshot{
		Version:       SnapshotVersion,
		RNGSeed:       42,
		BoardSize:     50,
		Tick:          12,
		TotalMovement: 480,
		Entities: []EntityState{
			{ID: 1, Species: components.Hunter, Hunter: true, X: 4, Y: 5},
			{ID: 3, Species: components.Wolf, Gender: components.Female, X: 10, Y: 20, Lifetime: lt.Get(3).ToJSON()},
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.Tick != 12 || loaded.BoardSize != 50 || loaded.TotalMovement != 480 {
		t.Errorf("header = %+v", loaded)
	}
	if len(loaded.Entities) != 2 {
		t.Fatalf("len(Entities) = %d, want 2", len(loaded.Entities))
	}

	wolf := loaded.Entities[1]
	if wolf.Species != components.Wolf || wolf.Gender != components.Female {
		t.Errorf("wolf = %+v", wolf)
	}
	if wolf.Lifetime == nil || wolf.Lifetime.Kills != 1 || wolf.Lifetime.StepsTaken != 2 || wolf.Lifetime.Stuck != 1 || wolf.Lifetime.Moves != 1 {
		t.Errorf("wolf lifetime = %+v", wolf.Lifetime)
	}
	if !loaded.Entities[0].Hunter {
		t.Error("hunter flag lost")
	}
}

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(5, 2, components.Sheep, 1, 2)

	lt.RecordChild(5)
	lt.RecordChild(99) // unknown ids are ignored

	s := lt.Get(5)
	if s == nil || s.Children != 1 || s.MotherID != 1 || s.FatherID != 2 {
		t.Fatalf("stats = %+v", s)
	}

	if removed := lt.Remove(5); removed != s {
		t.Error("Remove returned different stats")
	}
	if lt.Count() != 0 {
		t.Errorf("Count() = %d, want 0", lt.Count())
	}
}

func TestFreeRatio(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(1, 0, components.Cow, 0, 0)

	if got := lt.Get(1).FreeRatio(); got != 1 {
		t.Errorf("FreeRatio() before moving = %v, want 1", got)
	}

	lt.RecordMove(1, 2, false)
	lt.RecordMove(1, 0, true)
	lt.RecordMove(1, 1, true)
	lt.RecordMove(1, 2, false)

	s := lt.Get(1)
	if s.Moves != 4 || s.StepsTaken != 5 || s.Stuck != 2 {
		t.Errorf("stats = %+v, want 4 moves 5 steps 2 stuck", s)
	}
	if got := s.FreeRatio(); got != 0.5 {
		t.Errorf("FreeRatio() = %v, want 0.5", got)
	}
}
