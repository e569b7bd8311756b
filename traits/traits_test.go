package traits

import (
	"testing"

	"github.com/pthm-cable/habitat/components"
)

func TestSpeciesTable(t *testing.T) {
	tests := []struct {
		species  components.Species
		steps    int
		reach    int
		predator bool
	}{
		{components.Sheep, 2, 0, false},
		{components.Cow, 2, 0, false},
		{components.Wolf, 3, 4, true},
		{components.Lion, 4, 5, true},
		{components.Chicken, 1, 0, false},
		{components.Rooster, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.species.String(), func(t *testing.T) {
			m := Mobility(tt.species)
			if m.Steps != tt.steps {
				t.Errorf("Steps = %d, want %d", m.Steps, tt.steps)
			}
			if m.Reach != tt.reach {
				t.Errorf("Reach = %d, want %d", m.Reach, tt.reach)
			}
			if m.Predator != tt.predator {
				t.Errorf("Predator = %v, want %v", m.Predator, tt.predator)
			}
		})
	}
}

func TestPoultry(t *testing.T) {
	for _, s := range components.AnimalSpecies {
		want := s == components.Chicken || s == components.Rooster
		if got := IsPoultry(s); got != want {
			t.Errorf("IsPoultry(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestHunterMobility(t *testing.T) {
	m := HunterMobility(1, 8)
	if m.Steps != 1 || m.Reach != 8 || !m.Predator {
		t.Errorf("HunterMobility(1, 8) = %+v", m)
	}
}

func TestTraitSet(t *testing.T) {
	var set Trait
	set = set.Add(Predator).Add(Poultry)
	if !set.Has(Predator) || !set.Has(Poultry) {
		t.Error("expected Predator and Poultry")
	}
	set = set.Remove(Predator)
	if set.Has(Predator) {
		t.Error("Predator should have been removed")
	}
}
