package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/habitat/components"
)

func TestInBounds(t *testing.T) {
	tests := []struct {
		x, y, size int
		want       bool
	}{
		{0, 0, 10, true},
		{9, 9, 10, true},
		{10, 0, 10, false},
		{0, 10, 10, false},
		{-1, 5, 10, false},
		{5, -1, 10, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.x, tt.y, tt.size); got != tt.want {
			t.Errorf("InBounds(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.size, got, tt.want)
		}
	}
}

func TestWithin(t *testing.T) {
	// (0,0)-(3,0) is exactly 3 apart and counts as within
	if !Within(0, 0, 3, 0, 3) {
		t.Error("distance 3 should be within limit 3")
	}
	// (0,0)-(3,1) is ~3.16
	if Within(0, 0, 3, 1, 3) {
		t.Error("distance 3.16 should not be within limit 3")
	}
	if !Within(0, 0, 1, 1, 5) {
		t.Error("distance 1.41 should be within limit 5")
	}
}

func TestMidpointFloors(t *testing.T) {
	x, y := Midpoint(2, 3, 5, 6)
	if x != 3 || y != 4 {
		t.Errorf("Midpoint = (%d, %d), want (3, 4)", x, y)
	}
}

func TestValidDirections(t *testing.T) {
	all := func(x, y int) bool { return true }

	// Corner (0,0): only South and East stay on the board
	dirs := ValidDirections(0, 0, 10, all)
	if len(dirs) != 2 || dirs[0] != South || dirs[1] != East {
		t.Errorf("corner directions = %v, want [South East]", dirs)
	}

	// Centre with everything free keeps evaluation order
	dirs = ValidDirections(5, 5, 10, all)
	if len(dirs) != 4 {
		t.Fatalf("centre directions = %v, want 4", dirs)
	}
	for i, d := range Directions {
		if dirs[i] != d {
			t.Errorf("dirs[%d] = %v, want %v", i, dirs[i], d)
		}
	}

	// Occupied neighbours are excluded
	blocked := func(x, y int) bool { return !(x == 5 && y == 4) && !(x == 4 && y == 5) }
	dirs = ValidDirections(5, 5, 10, blocked)
	if len(dirs) != 2 || dirs[0] != South || dirs[1] != East {
		t.Errorf("blocked directions = %v, want [South East]", dirs)
	}

	// Boxed in
	none := func(x, y int) bool { return false }
	if dirs := ValidDirections(5, 5, 10, none); len(dirs) != 0 {
		t.Errorf("boxed directions = %v, want none", dirs)
	}
}

func TestPickDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := PickDirection(rng, nil); ok {
		t.Error("PickDirection(nil) should report no direction")
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		d, ok := PickDirection(rng, Directions[:])
		if !ok {
			t.Fatal("expected a direction")
		}
		seen[d.Name] = true
	}
	if len(seen) != 4 {
		t.Errorf("picked %d distinct directions in 200 draws, want 4", len(seen))
	}
}

func TestStepBudget(t *testing.T) {
	if got := StepBudget(4, 10); got != 4 {
		t.Errorf("StepBudget(4, 10) = %d, want 4", got)
	}
	if got := StepBudget(4, 1); got != 1 {
		t.Errorf("StepBudget(4, 1) = %d, want 1", got)
	}
}

func org(s components.Species, g components.Gender) components.Organism {
	return components.Organism{Species: s, Gender: g}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Organism
		want bool
	}{
		{"sheep pair", org(components.Sheep, components.Male), org(components.Sheep, components.Female), true},
		{"same gender", org(components.Sheep, components.Female), org(components.Sheep, components.Female), false},
		{"cross species", org(components.Sheep, components.Male), org(components.Cow, components.Female), false},
		{"chicken rooster", org(components.Chicken, components.Female), org(components.Rooster, components.Male), true},
		{"chicken rooster same gender", org(components.Chicken, components.Male), org(components.Rooster, components.Male), false},
		{"wolf lion", org(components.Wolf, components.Male), org(components.Lion, components.Female), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.a, tt.b); got != tt.want {
				t.Errorf("Compatible(a, b) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompatibleSymmetric(t *testing.T) {
	genders := []components.Gender{components.Male, components.Female}
	for _, s1 := range components.AnimalSpecies {
		for _, s2 := range components.AnimalSpecies {
			for _, g1 := range genders {
				for _, g2 := range genders {
					a, b := org(s1, g1), org(s2, g2)
					if Compatible(a, b) != Compatible(b, a) {
						t.Errorf("Compatible not symmetric for %v/%v and %v/%v", s1, g1, s2, g2)
					}
					if g1 == g2 && Compatible(a, b) {
						t.Errorf("same-gender pair %v/%v and %v/%v reported compatible", s1, g1, s2, g2)
					}
				}
			}
		}
	}
}

func TestOffspringSpecies(t *testing.T) {
	tests := []struct {
		mother, father components.Species
		g              components.Gender
		want           components.Species
	}{
		{components.Sheep, components.Sheep, components.Male, components.Sheep},
		{components.Lion, components.Lion, components.Female, components.Lion},
		{components.Chicken, components.Rooster, components.Female, components.Chicken},
		{components.Chicken, components.Rooster, components.Male, components.Rooster},
	}
	for _, tt := range tests {
		if got := OffspringSpecies(tt.mother, tt.father, tt.g); got != tt.want {
			t.Errorf("OffspringSpecies(%v, %v, %v) = %v, want %v", tt.mother, tt.father, tt.g, got, tt.want)
		}
	}
}

func TestBirthRing(t *testing.T) {
	ring := BirthRing(10, 10, 4, 10)
	if len(ring) != 36 {
		t.Fatalf("len(ring) = %d, want 36", len(ring))
	}

	// Cardinal samples land exactly on the circle
	want := map[int]Cell{
		0:  {14, 10},
		9:  {10, 14},
		18: {6, 10},
		27: {10, 6},
	}
	for i, c := range want {
		if ring[i] != c {
			t.Errorf("ring[%d] = %v, want %v", i, ring[i], c)
		}
	}

	for i, c := range ring {
		d := Distance(10, 10, c.X, c.Y)
		if d < 3 || d > 5 {
			t.Errorf("ring[%d] = %v is %.2f from centre, want about 4", i, c, d)
		}
	}
}

func TestChooseSuitor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	if _, ok := ChooseSuitor(rng, nil); ok {
		t.Error("ChooseSuitor(nil) should report no suitor")
	}

	suitors := []Suitor{{Index: 0, DistSq: 5}, {Index: 1, DistSq: 2}, {Index: 2, DistSq: 9}, {Index: 3, DistSq: 2}}
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		s, ok := ChooseSuitor(rng, suitors)
		if !ok {
			t.Fatal("expected a suitor")
		}
		if s.DistSq != 2 {
			t.Fatalf("chose suitor at distSq %d, want 2", s.DistSq)
		}
		seen[s.Index] = true
	}
	if !seen[1] || !seen[3] {
		t.Errorf("tie break never picked both nearest suitors: %v", seen)
	}
}

func TestSelectPredator(t *testing.T) {
	tests := []struct {
		name   string
		cs     []Contender
		wantID uint32
	}{
		{
			"hunter outranks lion",
			[]Contender{{ID: 3, Species: components.Lion}, {ID: 1, Species: components.Hunter}},
			1,
		},
		{
			"lion outranks wolf",
			[]Contender{{ID: 2, Species: components.Wolf}, {ID: 9, Species: components.Lion}},
			9,
		},
		{
			"lowest id within tier",
			[]Contender{{ID: 12, Species: components.Wolf}, {ID: 4, Species: components.Wolf}, {ID: 8, Species: components.Wolf}},
			4,
		},
		{
			"single contender",
			[]Contender{{ID: 6, Species: components.Lion}},
			6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := SelectPredator(tt.cs)
			if !ok {
				t.Fatal("expected a predator")
			}
			if c.ID != tt.wantID {
				t.Errorf("selected ID %d, want %d", c.ID, tt.wantID)
			}
		})
	}

	if _, ok := SelectPredator(nil); ok {
		t.Error("SelectPredator(nil) should report none")
	}
}

func TestCanHunt(t *testing.T) {
	if CanHunt(components.Wolf, components.Wolf) {
		t.Error("wolves must not hunt wolves")
	}
	if !CanHunt(components.Wolf, components.Lion) {
		t.Error("wolf should be able to hunt lion")
	}
}
