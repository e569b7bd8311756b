// Package systems provides the pure rules the simulation applies each tick.
package systems

import "math"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// InBounds reports whether (x, y) lies on a size x size board.
func InBounds(x, y, size int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// DistSq returns the squared Euclidean distance between two cells.
func DistSq(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two cells.
func Distance(x1, y1, x2, y2 int) float64 {
	return math.Sqrt(float64(DistSq(x1, y1, x2, y2)))
}

// Within reports whether two cells are at most limit apart.
func Within(x1, y1, x2, y2 int, limit float64) bool {
	return Distance(x1, y1, x2, y2) <= limit
}

// Midpoint returns the integer midpoint of two cells, rounding down.
// Coordinates are never negative so integer division floors.
func Midpoint(x1, y1, x2, y2 int) (int, int) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}
