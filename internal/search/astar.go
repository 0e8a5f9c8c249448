package search

import (
	"container/heap"

	"github.com/vovakirdan/gridmind/internal/board"
)

// AStar runs a best-first search from start to goal over walkable cells.
//
// The frontier cell with the lowest f = g + h is expanded first; ties go to
// the strictly lower h, then to the cell that joined the frontier first.
// Step cost and heuristic are both euclidean distances.
// An unreachable goal yields an empty path with Found == false and no error.
func AStar(b *board.Board, start, goal *board.Cell, options ...Option) (Result, error) {
	res, _, err := runAStar(b, start, goal, buildOptions(options))
	return res, err
}

func runAStar(b *board.Board, start, goal *board.Cell, opts Options) (Result, *table, error) {
	if start == nil || goal == nil {
		return Result{}, nil, ErrNoCell
	}
	obs := opts.Observer

	records := newTable()
	open := make(openQueue, 0)
	heap.Init(&open)

	startRecord := records.add(start, nil)
	startRecord.h = distance(start, goal)
	heap.Push(&open, startRecord)
	obs.Opened(start)

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(&open).(*record)
		current.closed = true
		expanded++
		obs.Closed(current.cell)

		if current.cell == goal {
			path, err := reconstruct(records, start, goal, obs)
			if err != nil {
				return Result{Expanded: expanded}, records, err
			}
			return Result{
				Path:     path,
				Endpoint: goal,
				Found:    true,
				Expanded: expanded,
				Cost:     current.g,
			}, records, nil
		}

		for _, neighbour := range current.cell.WalkableNeighbours(b) {
			if neighbour == nil {
				continue
			}
			rec, seen := records.get(neighbour)
			if seen && rec.closed {
				continue
			}

			tentativeG := current.g + distance(current.cell, neighbour)
			if seen && tentativeG >= rec.g {
				continue
			}

			if !seen {
				rec = records.add(neighbour, current.cell)
			}
			rec.g = tentativeG
			rec.h = distance(neighbour, goal)
			rec.parent = current.cell

			if rec.index < 0 {
				heap.Push(&open, rec)
				obs.Opened(neighbour)
			} else {
				heap.Fix(&open, rec.index)
			}
		}
	}

	return Result{Expanded: expanded}, records, nil
}
