package search

import (
	"math"

	"github.com/vovakirdan/gridmind/internal/board"
)

// UnevaluatedHeuristic marks horizon records whose heuristic was never computed.
// It loses against any evaluated cell when picking a fallback endpoint.
const UnevaluatedHeuristic = math.MaxFloat64

// record is the per-search state of one cell.
type record struct {
	cell      *board.Cell
	parent    *board.Cell
	g         float64
	h         float64
	depth     int
	heuristic float64
	seq       int // insertion order, used for stable tie-breaks
	index     int // position in the A* queue, -1 when not queued
	closed    bool
}

func (r *record) f() float64 {
	return r.g + r.h
}

// table maps cells to their records for the duration of one search.
type table struct {
	byCell map[*board.Cell]*record
	order  []*record
}

func newTable() *table {
	return &table{byCell: make(map[*board.Cell]*record)}
}

func (t *table) get(cell *board.Cell) (*record, bool) {
	rec, ok := t.byCell[cell]
	return rec, ok
}

func (t *table) add(cell, parent *board.Cell) *record {
	rec := &record{
		cell:      cell,
		parent:    parent,
		heuristic: UnevaluatedHeuristic,
		seq:       len(t.order),
		index:     -1,
	}
	t.byCell[cell] = rec
	t.order = append(t.order, rec)
	return rec
}

func (t *table) len() int {
	return len(t.order)
}
