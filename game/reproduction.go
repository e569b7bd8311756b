package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/systems"
	"github.com/pthm-cable/habitat/telemetry"
)

// PerformReproduction pairs every female with her nearest compatible male
// within reproduction distance and places one offspring per pair. Mates are
// drawn from the roster as it stood when the phase began, so newborns never
// mate in the pass that created them. A male may father several offspring.
func (s *Simulation) PerformReproduction() {
	snapshot := make([]ecs.Entity, len(s.roster))
	copy(snapshot, s.roster)

	limit := s.cfg.Reproduction.Distance
	for _, female := range snapshot {
		f := *s.orgMap.Get(female)
		if f.Gender != components.Female {
			continue
		}
		fp := *s.posMap.Get(female)

		var suitors []systems.Suitor
		for i, male := range snapshot {
			m := *s.orgMap.Get(male)
			if m.Gender != components.Male || !systems.Compatible(f, m) {
				continue
			}
			mp := s.posMap.Get(male)
			if !systems.Within(fp.X, fp.Y, mp.X, mp.Y, limit) {
				continue
			}
			suitors = append(suitors, systems.Suitor{Index: i, DistSq: systems.DistSq(fp.X, fp.Y, mp.X, mp.Y)})
		}

		chosen, ok := systems.ChooseSuitor(s.rng, suitors)
		if !ok {
			continue
		}
		s.reproduce(female, snapshot[chosen.Index])
	}
}

// reproduce creates the offspring of mother and father, if the pair is
// compatible and the birth ring has a free cell. It reports whether a birth
// happened.
func (s *Simulation) reproduce(mother, father ecs.Entity) bool {
	m := *s.orgMap.Get(mother)
	f := *s.orgMap.Get(father)
	if !systems.Compatible(m, f) {
		return false
	}

	mp := *s.posMap.Get(mother)
	fp := *s.posMap.Get(father)
	cx, cy := systems.Midpoint(mp.X, mp.Y, fp.X, fp.Y)
	pos, ok := s.FindBirthPosition(cx, cy)
	if !ok {
		return false
	}

	gender := systems.RandomGender(s.rng)
	species := systems.OffspringSpecies(m.Species, f.Species, gender)

	child := s.spawnAnimal(species, gender, pos.X, pos.Y, m.ID, f.ID)
	s.born[species]++
	s.collector.RecordBirth()
	s.lifetime.RecordChild(m.ID)
	s.lifetime.RecordChild(f.ID)

	s.emit(telemetry.NewBirthEvent(s.tick, s.actor(child), s.actor(mother), s.actor(father)))
	return true
}

// FindBirthPosition picks a free cell uniformly from the birth ring around
// (cx, cy). Ring points that round to the same cell are kept as separate
// candidates. ok is false when no ring point is on the board and free.
func (s *Simulation) FindBirthPosition(cx, cy int) (pos components.Position, ok bool) {
	ring := systems.BirthRing(cx, cy, s.cfg.Reproduction.BirthRadius, s.cfg.Reproduction.RingStepDeg)

	valid := ring[:0]
	for _, c := range ring {
		if systems.InBounds(c.X, c.Y, s.boardSize) && s.IsPositionAvailable(c.X, c.Y, 0) {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return components.Position{}, false
	}

	c := valid[s.rng.Intn(len(valid))]
	return components.Position{X: c.X, Y: c.Y}, true
}
