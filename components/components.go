// Package components defines ECS components for the simulation.
package components

// Position is an entity's grid cell. 0 <= X, Y < board size.
type Position struct {
	X, Y int
}

// Mobility holds per-instance movement capacity and hunting reach.
// Filled from the species trait table when the entity is created.
type Mobility struct {
	Steps    int  // Max unit steps per movement phase
	Reach    int  // Hunt reach (Euclidean), meaningful only when Predator
	Predator bool // False for pure prey
}

// Organism bundles identity, species and gender.
type Organism struct {
	ID      uint32
	Species Species
	Gender  Gender
}

// HunterTag marks the dedicated hunter entity.
type HunterTag struct{}
