package systems

import "math/rand"

// Direction is a cardinal unit step.
type Direction struct {
	Name   string
	DX, DY int
}

// Cardinal directions. Y grows southwards.
var (
	North = Direction{Name: "North", DX: 0, DY: -1}
	South = Direction{Name: "South", DX: 0, DY: 1}
	East  = Direction{Name: "East", DX: 1, DY: 0}
	West  = Direction{Name: "West", DX: -1, DY: 0}
)

// Directions lists the cardinal directions in evaluation order.
var Directions = [4]Direction{North, South, East, West}

// ValidDirections returns the directions whose target cell is on the board
// and accepted by free. Order follows Directions.
func ValidDirections(x, y, size int, free func(x, y int) bool) []Direction {
	valid := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		nx, ny := x+d.DX, y+d.DY
		if InBounds(nx, ny, size) && free(nx, ny) {
			valid = append(valid, d)
		}
	}
	return valid
}

// PickDirection chooses one direction uniformly. ok is false when dirs is empty.
func PickDirection(rng *rand.Rand, dirs []Direction) (d Direction, ok bool) {
	if len(dirs) == 0 {
		return Direction{}, false
	}
	return dirs[rng.Intn(len(dirs))], true
}

// StepBudget returns how many unit steps an entity may take: its capacity
// clipped to what is left of the caller's allowance.
func StepBudget(capacity, allowance int) int {
	if allowance < capacity {
		return allowance
	}
	return capacity
}
