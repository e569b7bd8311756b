// Package traits defines the fixed per-species behaviour table.
package traits

import "github.com/pthm-cable/habitat/components"

// Trait is a behavioural flag carried by a species.
type Trait uint32

const (
	Predator Trait = 1 << iota // Hunts other species within its reach
	Poultry                    // Chicken/Rooster: interbreed, offspring species follows gender
	Grazer                     // Pure prey
)

// Has checks if a trait set contains a trait.
func (t Trait) Has(other Trait) bool {
	return t&other != 0
}

// Add adds a trait to the set.
func (t Trait) Add(other Trait) Trait {
	return t | other
}

// Remove removes a trait from the set.
func (t Trait) Remove(other Trait) Trait {
	return t &^ other
}

// Profile is the lookup entry for one species.
type Profile struct {
	Steps  int   // Movement capacity per phase
	Reach  int   // Hunt reach; zero unless Traits has Predator
	Traits Trait
}

// table holds the animal species profiles. The hunter is configured separately.
var table = map[components.Species]Profile{
	components.Sheep:   {Steps: 2, Traits: Grazer},
	components.Cow:     {Steps: 2, Traits: Grazer},
	components.Wolf:    {Steps: 3, Reach: 4, Traits: Predator},
	components.Lion:    {Steps: 4, Reach: 5, Traits: Predator},
	components.Chicken: {Steps: 1, Traits: Grazer | Poultry},
	components.Rooster: {Steps: 1, Traits: Grazer | Poultry},
}

// Of returns the profile for an animal species.
// Unknown species (including Hunter) get the zero profile.
func Of(s components.Species) Profile {
	return table[s]
}

// Mobility builds the Mobility component for an animal species.
func Mobility(s components.Species) components.Mobility {
	p := Of(s)
	return components.Mobility{
		Steps:    p.Steps,
		Reach:    p.Reach,
		Predator: p.Traits.Has(Predator),
	}
}

// HunterMobility builds the Mobility component for the hunter.
func HunterMobility(steps, reach int) components.Mobility {
	return components.Mobility{Steps: steps, Reach: reach, Predator: true}
}

// IsPoultry reports whether a species takes part in the Chicken/Rooster exception.
func IsPoultry(s components.Species) bool {
	return Of(s).Traits.Has(Poultry)
}
