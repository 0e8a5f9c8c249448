package search

import (
	"fmt"

	"github.com/vovakirdan/gridmind/internal/board"
)

// Path is an ordered sequence of cells from (excluding) the start to
// (including) the endpoint.
type Path []*board.Cell

// Last returns the final cell of the path, or nil if the path is empty.
func (p Path) Last() *board.Cell {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Cost returns the summed euclidean step length starting from start.
func (p Path) Cost(start *board.Cell) float64 {
	total := 0.0
	prev := start
	for _, cell := range p {
		total += distance(prev, cell)
		prev = cell
	}
	return total
}

// reconstruct walks predecessor links from end back to start and reverses them.
// A chain longer than the table cannot reach start and fails fast.
func reconstruct(t *table, start, end *board.Cell, obs Observer) (Path, error) {
	var path Path
	for current := end; current != start; {
		if len(path) > t.len() {
			return nil, fmt.Errorf("%w: cycle after %d steps from %s", ErrBrokenChain, len(path), end)
		}
		rec, ok := t.get(current)
		if !ok || rec.parent == nil {
			return nil, fmt.Errorf("%w: %s has no predecessor", ErrBrokenChain, current)
		}
		path = append(path, current)
		current = rec.parent
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, cell := range path {
		obs.Chosen(cell)
	}
	return path, nil
}
