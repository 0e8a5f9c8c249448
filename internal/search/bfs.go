package search

import (
	"github.com/vovakirdan/gridmind/internal/board"
)

// BreadthFirst runs an unweighted breadth-first search from start to goal.
//
// Every discovered cell, the goal included, is marked non-walkable on b as
// soon as it is recorded. Later searches over the same board cannot pass
// through those cells; callers that search the same board twice should hand
// in a clone. Neighbours are explored right, left, up, down, so the path is
// deterministic for a given board and start.
func BreadthFirst(b *board.Board, start, goal *board.Cell, options ...Option) (Result, error) {
	res, _, err := runBreadthFirst(b, start, goal, buildOptions(options))
	return res, err
}

func runBreadthFirst(b *board.Board, start, goal *board.Cell, opts Options) (Result, *table, error) {
	if start == nil || goal == nil {
		return Result{}, nil, ErrNoCell
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
		expanded++
		obs.Closed(node)

		for _, neighbour := range node.WalkableNeighbours(b) {
			if neighbour == nil {
				continue
			}
			if _, seen := records.get(neighbour); seen {
				continue
			}

			records.add(neighbour, node)
			neighbour.ChangeToNoWalkable()

			if neighbour == goal {
				path, err := reconstruct(records, start, goal, obs)
				if err != nil {
					return Result{Expanded: expanded}, records, err
				}
				return Result{
					Path:     path,
					Endpoint: goal,
					Found:    true,
					Expanded: expanded,
					Cost:     float64(len(path)),
				}, records, nil
			}

			queue = append(queue, neighbour)
			obs.Opened(neighbour)
		}
	}

	return Result{Expanded: expanded}, records, nil
}
