package telemetry

import "github.com/pthm-cable/habitat/components"

// LifetimeStats tracks per-entity statistics over its lifetime.
type LifetimeStats struct {
	BirthTick int32
	Species   components.Species

	// Parents are zero for seeded animals and the hunter.
	MotherID uint32
	FatherID uint32

	Moves      int // Movement phases granted
	StepsTaken int // Unit steps actually moved
	Stuck      int // Movement phases cut short for lack of a free neighbour
	Kills      int // Hunts credited to this entity
	Children   int
}

// FreeRatio is the share of movement phases completed without getting
// stuck, or 1 before the first phase.
func (s *LifetimeStats) FreeRatio() float32 {
	if s.Moves == 0 {
		return 1
	}
	return 1 - float32(s.Stuck)/float32(s.Moves)
}

// LifetimeTracker manages per-entity lifetime statistics.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new entity.
func (lt *LifetimeTracker) Register(entityID uint32, birthTick int32, species components.Species, motherID, fatherID uint32) {
	lt.stats[entityID] = &LifetimeStats{
		BirthTick: birthTick,
		Species:   species,
		MotherID:  motherID,
		FatherID:  fatherID,
	}
}

// Get returns the lifetime stats for an entity, or nil if not found.
func (lt *LifetimeTracker) Get(entityID uint32) *LifetimeStats {
	return lt.stats[entityID]
}

// Remove removes an entity's stats and returns them.
func (lt *LifetimeTracker) Remove(entityID uint32) *LifetimeStats {
	stats := lt.stats[entityID]
	delete(lt.stats, entityID)
	return stats
}

// RecordMove adds the steps taken in one movement phase.
func (lt *LifetimeTracker) RecordMove(entityID uint32, steps int, stuck bool) {
	if s := lt.stats[entityID]; s != nil {
		s.Moves++
		s.StepsTaken += steps
		if stuck {
			s.Stuck++
		}
	}
}

// RecordKill increments kill count.
func (lt *LifetimeTracker) RecordKill(entityID uint32) {
	if s := lt.stats[entityID]; s != nil {
		s.Kills++
	}
}

// RecordChild increments children count.
func (lt *LifetimeTracker) RecordChild(parentID uint32) {
	if s := lt.stats[parentID]; s != nil {
		s.Children++
	}
}

// Count returns the number of tracked entities.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
