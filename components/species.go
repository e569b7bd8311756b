package components

import "fmt"

// Species identifies an animal kind. Hunter is reserved for the hunter entity.
type Species uint8

const (
	Sheep Species = iota
	Cow
	Wolf
	Lion
	Chicken
	Rooster
	Hunter
)

// AnimalSpecies lists the animal species in report order.
var AnimalSpecies = []Species{Sheep, Cow, Wolf, Lion, Chicken, Rooster}

// SpeciesNames returns the display names for all species.
// The order matches the Species constants.
func SpeciesNames() []string {
	return []string{"Sheep", "Cow", "Wolf", "Lion", "Chicken", "Rooster", "Hunter"}
}

// String returns the display name for a Species.
func (s Species) String() string {
	names := SpeciesNames()
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// ParseSpecies returns the species with the given display name.
func ParseSpecies(name string) (Species, error) {
	for i, n := range SpeciesNames() {
		if n == name {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("unknown species %q", name)
}

// MarshalText implements encoding.TextMarshaler so species serialize by name.
func (s Species) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Species) UnmarshalText(text []byte) error {
	v, err := ParseSpecies(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Gender of an animal.
type Gender uint8

const (
	Male Gender = iota
	Female
)

// String returns "Male" or "Female".
func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// MarshalCSV writes the species name in CSV output.
func (s Species) MarshalCSV() (string, error) {
	return s.String(), nil
}

// UnmarshalCSV parses a species name from CSV input.
func (s *Species) UnmarshalCSV(field string) error {
	return s.UnmarshalText([]byte(field))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gender) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Male":
		*g = Male
	case "Female":
		*g = Female
	default:
		return fmt.Errorf("unknown gender %q", text)
	}
	return nil
}
