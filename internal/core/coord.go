package core

import (
	"fmt"
	"math"
)

// Coord represents a 2D coordinate on a board.
// X increases to the right, Y increases upward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
// MoveNone returns c unchanged.
func (c Coord) Step(m Move) Coord {
	dx, dy := m.Delta()
	return c.Add(dx, dy)
}

// Distance returns the euclidean distance to another coordinate.
func (c Coord) Distance(other Coord) float64 {
	return math.Hypot(float64(c.X-other.X), float64(c.Y-other.Y))
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.X-other.X) + Abs(c.Y-other.Y)
}
