package search

import (
	"testing"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
)

// positions converts a path to its coordinates.
func positions(p Path) []core.Coord {
	out := make([]core.Coord, len(p))
	for i, cell := range p {
		out[i] = cell.Pos
	}
	return out
}

func assertPath(t *testing.T, got Path, want ...core.Coord) {
	t.Helper()
	gotPos := positions(got)
	if len(gotPos) != len(want) {
		t.Fatalf("path = %v, expected %v", gotPos, want)
	}
	for i := range want {
		if gotPos[i] != want[i] {
			t.Fatalf("path = %v, expected %v", gotPos, want)
		}
	}
}

// assertContiguous checks that every step of the path moves one cell orthogonally.
func assertContiguous(t *testing.T, start *board.Cell, p Path) {
	t.Helper()
	prev := start
	for i, cell := range p {
		if _, err := core.DirectionTo(prev.Pos, cell.Pos); err != nil {
			t.Fatalf("step %d from %v to %v is not adjacent", i, prev.Pos, cell.Pos)
		}
		prev = cell
	}
}
