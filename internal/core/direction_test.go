package core

import (
	"errors"
	"testing"
)

func TestDirectionTo(t *testing.T) {
	tests := []struct {
		name     string
		to       Coord
		expected Move
	}{
		{"right", C(1, 0), MoveRight},
		{"left", C(-1, 0), MoveLeft},
		{"up", C(0, 1), MoveUp},
		{"down", C(0, -1), MoveDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DirectionTo(C(0, 0), tc.to)
			if err != nil {
				t.Fatalf("DirectionTo() error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("DirectionTo((0,0), %v) = %v, expected %v", tc.to, result, tc.expected)
			}
		})
	}
}

func TestDirectionToRejectsNonAdjacent(t *testing.T) {
	invalid := []Coord{
		C(0, 0),  // no movement
		C(1, 1),  // diagonal
		C(2, 0),  // two cells away
		C(0, -3), // far below
	}

	for _, to := range invalid {
		m, err := DirectionTo(C(0, 0), to)
		if !errors.Is(err, ErrNotAdjacent) {
			t.Errorf("DirectionTo((0,0), %v) error = %v, expected ErrNotAdjacent", to, err)
		}
		if m != MoveNone {
			t.Errorf("DirectionTo((0,0), %v) = %v, expected None", to, m)
		}
	}
}

func TestMoveRoundTrip(t *testing.T) {
	for _, m := range []Move{MoveUp, MoveDown, MoveLeft, MoveRight} {
		from := C(3, 3)
		got, err := DirectionTo(from, from.Step(m))
		if err != nil || got != m {
			t.Errorf("DirectionTo(Step(%v)) = %v, %v", m, got, err)
		}
		if m.Opposite().Opposite() != m {
			t.Errorf("Opposite twice of %v is not identity", m)
		}
	}
}
