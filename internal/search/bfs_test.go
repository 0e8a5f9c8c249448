package search

import (
	"testing"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
)

var mazeRows = []string{
	".....",
	".###.",
	"S#..E",
	".#.#.",
	"...#.",
}

func TestBreadthFirstCorridor(t *testing.T) {
	b := board.MustParse("S.....E")

	res, err := BreadthFirst(b, b.Start(), b.Exit())
	if err != nil {
		t.Fatalf("BreadthFirst failed: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a path")
	}
	assertPath(t, res.Path,
		core.C(1, 0), core.C(2, 0), core.C(3, 0), core.C(4, 0), core.C(5, 0), core.C(6, 0))
	if res.Cost != 6 {
		t.Errorf("Cost = %v, expected 6", res.Cost)
	}
}

func TestBreadthFirstDeterminism(t *testing.T) {
	first := board.MustParse(mazeRows...)
	second := board.MustParse(mazeRows...)

	res1, err := BreadthFirst(first, first.Start(), first.Exit())
	if err != nil {
		t.Fatalf("BreadthFirst failed: %v", err)
	}
	res2, err := BreadthFirst(second, second.Start(), second.Exit())
	if err != nil {
		t.Fatalf("BreadthFirst failed: %v", err)
	}

	assertPath(t, res1.Path, positions(res2.Path)...)
	assertPath(t, res1.Path,
		core.C(0, 3), core.C(0, 4), core.C(1, 4), core.C(2, 4),
		core.C(3, 4), core.C(4, 4), core.C(4, 3), core.C(4, 2))
	assertContiguous(t, first.Start(), res1.Path)
}

func TestBreadthFirstConsumesVisitedCells(t *testing.T) {
	b := board.MustParse(mazeRows...)
	start := b.Start()

	res, err := BreadthFirst(b, start, b.Exit())
	if err != nil || !res.Found {
		t.Fatalf("BreadthFirst failed: found=%v err=%v", res.Found, err)
	}

	for _, cell := range res.Path {
		if cell.Walkable {
			t.Errorf("path cell %v is still walkable", cell.Pos)
		}
	}
	if !start.Walkable {
		t.Error("start cell should stay walkable")
	}

	again, err := BreadthFirst(b, start, b.Exit())
	if err != nil {
		t.Fatalf("second BreadthFirst failed: %v", err)
	}
	if again.Found || len(again.Path) != 0 {
		t.Errorf("second run should find no path, got %v", positions(again.Path))
	}
}

func TestBreadthFirstOnCloneKeepsOriginal(t *testing.T) {
	b := board.MustParse(mazeRows...)
	before := b.WalkableCount()
	work := b.Clone()

	res, err := BreadthFirst(work, work.Start(), work.Exit())
	if err != nil || !res.Found {
		t.Fatalf("BreadthFirst failed: found=%v err=%v", res.Found, err)
	}
	if b.WalkableCount() != before {
		t.Errorf("original board changed: %d walkable, expected %d", b.WalkableCount(), before)
	}
	if work.WalkableCount() >= before {
		t.Error("working copy should have lost walkable cells")
	}
}

func TestBreadthFirstNoPath(t *testing.T) {
	b := board.MustParse("S.#.E")
	trace := &Trace{}

	res, err := BreadthFirst(b, b.Start(), b.Exit(), WithObserver(trace))
	if err != nil {
		t.Fatalf("BreadthFirst failed: %v", err)
	}
	if res.Found || len(res.Path) != 0 || res.Endpoint != nil {
		t.Errorf("expected empty result, got %+v", res)
	}
	if len(trace.ChosenCells) != 0 {
		t.Errorf("no path cells should be reported, got %d", len(trace.ChosenCells))
	}
	if res.Expanded != 2 {
		t.Errorf("Expanded = %d, expected 2", res.Expanded)
	}
}

func TestBreadthFirstStartIsGoal(t *testing.T) {
	b := board.New(3, 3)
	cell := b.Cell(core.C(1, 1))

	res, err := BreadthFirst(b, cell, cell)
	if err != nil {
		t.Fatalf("BreadthFirst failed: %v", err)
	}
	if !res.Found || len(res.Path) != 0 {
		t.Errorf("expected found with empty path, got %+v", res)
	}
	if b.WalkableCount() != 9 {
		t.Errorf("no cell should be consumed, %d walkable", b.WalkableCount())
	}
}

func TestBreadthFirstPathRoundTrip(t *testing.T) {
	b := board.MustParse(mazeRows...)
	res, records, err := runBreadthFirst(b, b.Start(), b.Exit(), buildOptions(nil))
	if err != nil || !res.Found {
		t.Fatalf("BreadthFirst failed: found=%v err=%v", res.Found, err)
	}

	var walked []core.Coord
	for cell := res.Path.Last(); cell != b.Start(); {
		walked = append(walked, cell.Pos)
		rec, _ := records.get(cell)
		cell = rec.parent
	}
	for i, pos := range walked {
		if res.Path[len(res.Path)-1-i].Pos != pos {
			t.Fatalf("walk %v does not mirror path %v", walked, positions(res.Path))
		}
	}
	if len(walked) != len(res.Path) {
		t.Errorf("walked %d cells, path has %d", len(walked), len(res.Path))
	}
}
