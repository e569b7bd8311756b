package game

import (
	"log/slog"

	"github.com/pthm-cable/habitat/components"
)

// Cohort is one line of the initial population plan.
type Cohort struct {
	Species components.Species
	Gender  components.Gender
	Count   int
}

// InitialPopulation is the seeding plan, placed in order.
var InitialPopulation = []Cohort{
	{components.Sheep, components.Male, 15},
	{components.Sheep, components.Female, 15},
	{components.Cow, components.Male, 5},
	{components.Cow, components.Female, 5},
	{components.Wolf, components.Male, 5},
	{components.Wolf, components.Female, 5},
	{components.Lion, components.Male, 4},
	{components.Lion, components.Female, 4},
	{components.Chicken, components.Female, 10},
	{components.Rooster, components.Male, 10},
}

// PlannedCounts totals InitialPopulation per species.
func PlannedCounts() map[components.Species]int {
	counts := make(map[components.Species]int, len(components.AnimalSpecies))
	for _, c := range InitialPopulation {
		counts[c.Species] += c.Count
	}
	return counts
}

// Populate seeds the initial animals at random free cells. Animals that
// cannot be placed are skipped. Calling Populate twice has no effect.
func (s *Simulation) Populate() {
	if s.populated {
		return
	}
	s.populated = true

	skipped := 0
	for _, c := range InitialPopulation {
		for i := 0; i < c.Count; i++ {
			pos, ok := s.FindEmptyPosition()
			if !ok {
				skipped++
				continue
			}
			s.spawnAnimal(c.Species, c.Gender, pos.X, pos.Y, 0, 0)
			s.initial[c.Species]++
		}
	}

	if skipped > 0 {
		slog.Debug("placement failed", "skipped", skipped, "board_size", s.boardSize)
	}
}

// Populated reports whether Populate has run.
func (s *Simulation) Populated() bool {
	return s.populated
}
