package core

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent is returned when a step does not connect two orthogonal neighbours.
var ErrNotAdjacent = errors.New("core: cells are not orthogonally adjacent")

// Move is one of the four cardinal moves an agent can make in a tick.
// MoveNone is the terminal "idle" signal.
type Move int

const (
	MoveNone Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "None"
	case MoveUp:
		return "Up"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the coordinate offset of the move.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case MoveUp:
		return 0, 1
	case MoveDown:
		return 0, -1
	case MoveLeft:
		return -1, 0
	case MoveRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse move.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	default:
		return MoveNone
	}
}

// DirectionTo resolves the move that takes an agent from current to adjacent.
// adjacent must be exactly one unit away along exactly one axis.
func DirectionTo(current, adjacent Coord) (Move, error) {
	dx := adjacent.X - current.X
	dy := adjacent.Y - current.Y

	switch {
	case dx == 1 && dy == 0:
		return MoveRight, nil
	case dx == -1 && dy == 0:
		return MoveLeft, nil
	case dx == 0 && dy == 1:
		return MoveUp, nil
	case dx == 0 && dy == -1:
		return MoveDown, nil
	}
	return MoveNone, fmt.Errorf("%w: %s -> %s", ErrNotAdjacent, current, adjacent)
}
