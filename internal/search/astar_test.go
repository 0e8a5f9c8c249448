package search

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
)

func TestAStarCorridor(t *testing.T) {
	for n := 1; n <= 8; n++ {
		row := "S"
		for i := 1; i < n; i++ {
			row += "."
		}
		row += "E"
		b := board.MustParse(row)

		res, err := AStar(b, b.Start(), b.Exit())
		if err != nil {
			t.Fatalf("n=%d: AStar failed: %v", n, err)
		}
		if !res.Found {
			t.Fatalf("n=%d: expected a path", n)
		}
		if len(res.Path) != n {
			t.Errorf("n=%d: path has %d steps", n, len(res.Path))
		}
		if res.Cost != float64(n) {
			t.Errorf("n=%d: cost = %v", n, res.Cost)
		}
		if c := res.Path.Cost(b.Start()); c != float64(n) {
			t.Errorf("n=%d: stepwise cost = %v", n, c)
		}
		if res.Path.Last() != b.Exit() {
			t.Errorf("n=%d: path does not end at exit", n)
		}
	}
}

func TestAStarPrefersLowerHeuristicOnEqualCost(t *testing.T) {
	// Two four-step routes around the wall. After (2,0) is closed the frontier
	// holds (0,2) with f=4,h=2 (queued first) and (2,1) with f=4,h=1.
	b := board.MustParse(
		"..E",
		".#.",
		"S..",
	)
	trace := &Trace{}

	res, err := AStar(b, b.Start(), b.Exit(), WithObserver(trace))
	if err != nil {
		t.Fatalf("AStar failed: %v", err)
	}

	assertPath(t, res.Path, core.C(1, 0), core.C(2, 0), core.C(2, 1), core.C(2, 2))

	expectedClosed := []core.Coord{
		core.C(0, 0), core.C(1, 0), core.C(0, 1), core.C(2, 0), core.C(2, 1), core.C(2, 2),
	}
	closed := positions(trace.ClosedCells)
	if len(closed) != len(expectedClosed) {
		t.Fatalf("closed order = %v, expected %v", closed, expectedClosed)
	}
	for i := range expectedClosed {
		if closed[i] != expectedClosed[i] {
			t.Fatalf("closed order = %v, expected %v", closed, expectedClosed)
		}
	}
	if res.Expanded != len(expectedClosed) {
		t.Errorf("Expanded = %d, expected %d", res.Expanded, len(expectedClosed))
	}
}

func TestOpenQueueOrder(t *testing.T) {
	records := newTable()
	b := board.New(4, 1)
	a := records.add(b.Cell(core.C(0, 0)), nil)
	a.g, a.h = 1, 3 // f=4 h=3
	c := records.add(b.Cell(core.C(1, 0)), nil)
	c.g, c.h = 2, 2 // f=4 h=2
	d := records.add(b.Cell(core.C(2, 0)), nil)
	d.g, d.h = 2, 2 // f=4 h=2, queued after c
	e := records.add(b.Cell(core.C(3, 0)), nil)
	e.g, e.h = 0, 5 // f=5

	queue := openQueue{a, c, d, e}
	for i, rec := range queue {
		rec.index = i
	}

	expected := []*record{c, d, a, e}
	for i, rec := range expected {
		best := 0
		for j := range queue {
			if queue.Less(j, best) {
				best = j
			}
		}
		if queue[best] != rec {
			t.Fatalf("pick %d = %v, expected %v", i, queue[best].cell, rec.cell)
		}
		queue = append(queue[:best], queue[best+1:]...)
	}
}

func TestAStarNoPath(t *testing.T) {
	b := board.MustParse(
		"S#E",
		".#.",
	)

	res, err := AStar(b, b.Start(), b.Exit())
	if err != nil {
		t.Fatalf("AStar failed: %v", err)
	}
	if res.Found {
		t.Error("expected no path")
	}
	if len(res.Path) != 0 {
		t.Errorf("expected empty path, got %v", positions(res.Path))
	}
	if res.Expanded != 2 {
		t.Errorf("Expanded = %d, expected 2", res.Expanded)
	}
}

func TestAStarStartIsGoal(t *testing.T) {
	b := board.New(2, 2)
	cell := b.Cell(core.C(1, 1))

	res, err := AStar(b, cell, cell)
	if err != nil {
		t.Fatalf("AStar failed: %v", err)
	}
	if !res.Found || len(res.Path) != 0 {
		t.Errorf("expected found with empty path, got found=%v path=%v", res.Found, positions(res.Path))
	}
}

func TestAStarNilCell(t *testing.T) {
	b := board.New(2, 2)
	if _, err := AStar(b, nil, b.Cell(core.C(0, 0))); !errors.Is(err, ErrNoCell) {
		t.Errorf("expected ErrNoCell, got %v", err)
	}
}

func TestAStarLeavesBoardUntouched(t *testing.T) {
	b := board.MustParse(
		".....",
		".###.",
		"S#..E",
		".#.#.",
		"...#.",
	)
	before := b.WalkableCount()

	res, err := AStar(b, b.Start(), b.Exit())
	if err != nil || !res.Found {
		t.Fatalf("AStar failed: found=%v err=%v", res.Found, err)
	}
	if b.WalkableCount() != before {
		t.Errorf("walkable cells changed from %d to %d", before, b.WalkableCount())
	}
	assertContiguous(t, b.Start(), res.Path)
	if len(res.Path) != 8 {
		t.Errorf("expected 8 steps, got %d", len(res.Path))
	}
}

func TestAStarPathRoundTrip(t *testing.T) {
	b := board.MustParse(
		"......",
		".##.#.",
		"S#...E",
		"...#..",
	)

	res, records, err := runAStar(b, b.Start(), b.Exit(), buildOptions(nil))
	if err != nil || !res.Found {
		t.Fatalf("AStar failed: found=%v err=%v", res.Found, err)
	}

	i := len(res.Path) - 1
	for cell := res.Path.Last(); cell != b.Start(); i-- {
		if res.Path[i] != cell {
			t.Fatalf("predecessor walk diverged at index %d", i)
		}
		rec, ok := records.get(cell)
		if !ok {
			t.Fatalf("no record for %v", cell.Pos)
		}
		cell = rec.parent
	}
	if i != -1 {
		t.Errorf("predecessor walk stopped early at index %d", i)
	}
}

func TestAStarConcurrentSearches(t *testing.T) {
	b := board.MustParse(
		"..........",
		".########.",
		"S.......#.",
		"########..",
		".........E",
	)
	expected, err := AStar(b, b.Start(), b.Exit())
	if err != nil || !expected.Found {
		t.Fatalf("AStar failed: found=%v err=%v", expected.Found, err)
	}

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = AStar(b, b.Start(), b.Exit())
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		if math.Abs(res.Cost-expected.Cost) > 1e-9 || len(res.Path) != len(expected.Path) {
			t.Errorf("search %d: cost %v len %d, expected cost %v len %d",
				i, res.Cost, len(res.Path), expected.Cost, len(expected.Path))
		}
	}
}
