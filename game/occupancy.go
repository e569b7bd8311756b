package game

import "github.com/pthm-cable/habitat/components"

// IsPositionAvailable reports whether no live entity stands on (x, y).
// The animal with ID exclude is ignored; 0 ignores nobody. The hunter is
// always checked. Positions are read at call time, so the answer reflects
// every move, birth and removal made so far.
func (s *Simulation) IsPositionAvailable(x, y int, exclude uint32) bool {
	for _, e := range s.roster {
		if exclude != 0 && s.orgMap.Get(e).ID == exclude {
			continue
		}
		if p := s.posMap.Get(e); p.X == x && p.Y == y {
			return false
		}
	}
	h := s.posMap.Get(s.hunter)
	return h.X != x || h.Y != y
}

// FindEmptyPosition samples random cells until it finds an available one.
// ok is false after placement.attempts misses.
func (s *Simulation) FindEmptyPosition() (pos components.Position, ok bool) {
	for i := 0; i < s.cfg.Placement.Attempts; i++ {
		x := s.rng.Intn(s.boardSize)
		y := s.rng.Intn(s.boardSize)
		if s.IsPositionAvailable(x, y, 0) {
			return components.Position{X: x, Y: y}, true
		}
	}
	return components.Position{}, false
}
