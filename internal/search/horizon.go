package search

import (
	"fmt"

	"github.com/vovakirdan/gridmind/internal/board"
)

// Horizon runs a breadth-first search that stops expanding at maxDepth hops.
//
// Cells discovered at depth maxDepth form the frontier boundary: they are
// scored with distance-to-goal plus distance-to-start and never expanded.
// Shallower cells carry UnevaluatedHeuristic and are expanded normally.
// Reaching the goal at any depth is an exact hit. Otherwise the recorded
// cell with the lowest score becomes the endpoint (the first one recorded
// wins ties), and Found is false. Walkability is left untouched.
func Horizon(b *board.Board, start, goal *board.Cell, maxDepth int, options ...Option) (Result, error) {
	res, _, err := runHorizon(b, start, goal, maxDepth, buildOptions(options))
	return res, err
}

func runHorizon(b *board.Board, start, goal *board.Cell, maxDepth int, opts Options) (Result, *table, error) {
	if start == nil || goal == nil {
		return Result{}, nil, ErrNoCell
	}
	if maxDepth < 1 {
		return Result{}, nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}
	obs := opts.Observer

	records := newTable()
	records.add(start, nil)
	if start == goal {
		return Result{Endpoint: goal, Found: true}, records, nil
	}

	queue := []*board.Cell{start}
	obs.Opened(start)

	expanded := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		nodeRecord, _ := records.get(node)
		expanded++
		obs.Closed(node)

		for _, neighbour := range node.WalkableNeighbours(b) {
			if neighbour == nil {
				continue
			}
			if _, seen := records.get(neighbour); seen {
				continue
			}

			rec := records.add(neighbour, node)
			rec.depth = nodeRecord.depth + 1
			if nodeRecord.depth == maxDepth-1 {
				rec.heuristic = distance(neighbour, goal) + distance(neighbour, start)
			} else {
				queue = append(queue, neighbour)
			}
			obs.Opened(neighbour)

			if neighbour == goal {
				return finishHorizon(records, start, goal, true, expanded, obs)
			}
		}
	}

	best := records.order[0]
	for _, rec := range records.order[1:] {
		if rec.heuristic < best.heuristic {
			best = rec
		}
	}
	return finishHorizon(records, start, best.cell, false, expanded, obs)
}

func finishHorizon(records *table, start, end *board.Cell, found bool, expanded int, obs Observer) (Result, *table, error) {
	path, err := reconstruct(records, start, end, obs)
	if err != nil {
		return Result{Expanded: expanded}, records, err
	}
	return Result{
		Path:     path,
		Endpoint: end,
		Found:    found,
		Expanded: expanded,
		Cost:     float64(len(path)),
	}, records, nil
}
