package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/habitat/systems"
	"github.com/pthm-cable/habitat/telemetry"
)

// PerformHunting resolves one hunting phase. Every predator (predator
// animals in collection order, then the hunter) contends for each animal of
// another species within its reach. Each contended prey is credited to its
// highest-priority contender (Hunter, Lion, Wolf, then lowest ID) and every
// contended prey is removed, including prey whose credited predator was
// itself taken.
func (s *Simulation) PerformHunting() {
	var predators []ecs.Entity
	for _, e := range s.roster {
		if s.mobMap.Get(e).Predator {
			predators = append(predators, e)
		}
	}
	if s.mobMap.Get(s.hunter).Predator {
		predators = append(predators, s.hunter)
	}

	// Prey in the order they were first contended
	var order []ecs.Entity
	contenders := make(map[ecs.Entity][]systems.Contender)

	for _, pred := range predators {
		p := s.actor(pred)
		reach := float64(s.mobMap.Get(pred).Reach)
		for _, prey := range s.roster {
			q := s.actor(prey)
			if !systems.CanHunt(p.Species, q.Species) {
				continue
			}
			if !systems.Within(p.Pos.X, p.Pos.Y, q.Pos.X, q.Pos.Y, reach) {
				continue
			}
			if _, seen := contenders[prey]; !seen {
				order = append(order, prey)
			}
			contenders[prey] = append(contenders[prey], systems.Contender{ID: p.ID, Species: p.Species, Pos: p.Pos})
		}
	}

	removed := make(map[uint32]bool, len(order))
	for _, prey := range order {
		winner, ok := systems.SelectPredator(contenders[prey])
		if !ok {
			continue
		}
		q := s.actor(prey)
		predator := telemetry.Actor{ID: winner.ID, Species: winner.Species, Pos: winner.Pos}

		s.emit(telemetry.NewHuntEvent(s.tick, predator, q))
		s.lifetime.RecordKill(winner.ID)
		s.hunted[q.Species]++
		s.collector.RecordHunt()
		removed[q.ID] = true
	}

	s.removeAnimals(removed)
}
