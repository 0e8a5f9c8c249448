// Package search implements the graph searches behind gridmind strategies:
// best-first A*, breadth-first search that consumes the cells it visits, and
// depth-limited "horizon" breadth-first search that falls back to the most
// promising frontier cell when the goal lies beyond its reach.
//
// Transient bookkeeping (costs, depth, predecessors) lives in a table owned by
// a single call, so A* and horizon searches can share a board between
// goroutines. BreadthFirst mutates walkability and cannot.
package search

import (
	"errors"

	"github.com/vovakirdan/gridmind/internal/board"
)

var (
	// ErrNoCell is returned when the start or goal cell is nil.
	ErrNoCell = errors.New("search: start or goal cell is nil")
	// ErrInvalidDepth is returned by Horizon for a depth below 1.
	ErrInvalidDepth = errors.New("search: horizon depth must be at least 1")
	// ErrBrokenChain is returned when predecessor links never lead back to the start.
	ErrBrokenChain = errors.New("search: predecessor chain does not reach start")
)

// Result contains the outcome of a search.
type Result struct {
	Path     Path        // Cells after the start up to and including Endpoint
	Endpoint *board.Cell // Goal on an exact hit, fallback cell otherwise, nil when nothing was found
	Found    bool        // Whether Endpoint is the requested goal
	Expanded int         // Nodes taken off the frontier
	Cost     float64     // Accumulated path cost (euclidean for A*, steps for BFS variants)
}

// Options defines parameters for a search.
type Options struct {
	Observer Observer
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithObserver routes search events to o.
func WithObserver(o Observer) Option {
	return func(options *Options) { options.Observer = o }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{Observer: NopObserver{}}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Observer == nil {
		searchOptions.Observer = NopObserver{}
	}
	return searchOptions
}

// distance is the euclidean metric shared by every search.
func distance(a, b *board.Cell) float64 {
	return a.Pos.Distance(b.Pos)
}
