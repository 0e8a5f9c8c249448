// Package core provides fundamental types shared by the gridmind packages:
// coordinates, cardinal moves and runtime configuration.
// It has no external dependencies so search code stays pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
