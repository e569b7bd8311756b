package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/traits"
)

// Compatible reports whether two animals can mate: opposite genders and the
// same species, except that Chicken and Rooster always pair with each other.
func Compatible(a, b components.Organism) bool {
	if a.Gender == b.Gender {
		return false
	}
	if traits.IsPoultry(a.Species) && traits.IsPoultry(b.Species) {
		return true
	}
	return a.Species == b.Species
}

// OffspringSpecies returns the species of a newborn with the given gender.
// Poultry offspring are Chicken when female and Rooster when male.
func OffspringSpecies(mother, father components.Species, g components.Gender) components.Species {
	if traits.IsPoultry(mother) || traits.IsPoultry(father) {
		if g == components.Female {
			return components.Chicken
		}
		return components.Rooster
	}
	return mother
}

// BirthRing samples the circle of the given radius around (cx, cy) every
// stepDeg degrees starting at 0, rounding each point half-to-even onto the grid.
// Points are not filtered and may repeat.
func BirthRing(cx, cy int, radius float64, stepDeg int) []Cell {
	ring := make([]Cell, 0, 360/stepDeg)
	for angle := 0; angle < 360; angle += stepDeg {
		rad := float64(angle) * math.Pi / 180
		ring = append(ring, Cell{
			X: int(math.RoundToEven(float64(cx) + radius*math.Cos(rad))),
			Y: int(math.RoundToEven(float64(cy) + radius*math.Sin(rad))),
		})
	}
	return ring
}

// Suitor is a candidate mate with its distance to the female.
type Suitor struct {
	Index  int // Position in the caller's candidate slice
	DistSq int
}

// ChooseSuitor picks the nearest suitor, breaking ties uniformly at random.
// ok is false when suitors is empty.
func ChooseSuitor(rng *rand.Rand, suitors []Suitor) (s Suitor, ok bool) {
	if len(suitors) == 0 {
		return Suitor{}, false
	}
	best := suitors[0].DistSq
	for _, c := range suitors[1:] {
		if c.DistSq < best {
			best = c.DistSq
		}
	}
	closest := make([]Suitor, 0, len(suitors))
	for _, c := range suitors {
		if c.DistSq == best {
			closest = append(closest, c)
		}
	}
	return closest[rng.Intn(len(closest))], true
}

// RandomGender draws a gender uniformly.
func RandomGender(rng *rand.Rand) components.Gender {
	if rng.Intn(2) == 0 {
		return components.Male
	}
	return components.Female
}
