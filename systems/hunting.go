package systems

import (
	"sort"

	"github.com/pthm-cable/habitat/components"
)

// Contender is a predator able to reach a given prey this tick.
type Contender struct {
	ID      uint32
	Species components.Species
	Pos     components.Position
}

// rank returns the priority tier: Hunter, then Lion, then Wolf, then the rest.
func rank(s components.Species) int {
	switch s {
	case components.Hunter:
		return 0
	case components.Lion:
		return 1
	case components.Wolf:
		return 2
	default:
		return 3
	}
}

// RankContenders sorts contenders in priority order, lowest ID first within a tier.
func RankContenders(cs []Contender) {
	sort.SliceStable(cs, func(i, j int) bool {
		ri, rj := rank(cs[i].Species), rank(cs[j].Species)
		if ri != rj {
			return ri < rj
		}
		return cs[i].ID < cs[j].ID
	})
}

// SelectPredator returns the contender credited with the kill.
// ok is false when cs is empty. cs is reordered.
func SelectPredator(cs []Contender) (c Contender, ok bool) {
	if len(cs) == 0 {
		return Contender{}, false
	}
	RankContenders(cs)
	return cs[0], true
}

// CanHunt reports whether a predator of species hunter may take prey of species prey.
func CanHunt(hunter, prey components.Species) bool {
	return hunter != prey
}
