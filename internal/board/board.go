// Package board provides the grid model searched by gridmind strategies:
// cells with a walkability flag, fixed-order adjacency, an exit cell and
// enemy-like entities that expose their current cell.
package board

import (
	"github.com/vovakirdan/gridmind/internal/core"
)

// Cell is a single square of the board.
// Cells are handed out as pointers; pointer identity is the cell identity.
type Cell struct {
	Pos      core.Coord // Position on the board
	Walkable bool       // False for walls and, after a BFS run, for visited cells
}

// ChangeToNoWalkable marks the cell as not traversable.
func (c *Cell) ChangeToNoWalkable() {
	c.Walkable = false
}

// WalkableNeighbours returns the orthogonal neighbours in the fixed order
// right, left, up, down. Entries are nil for out-of-bounds or non-walkable cells.
func (c *Cell) WalkableNeighbours(b *Board) [4]*Cell {
	var out [4]*Cell
	for i, m := range neighbourOrder {
		n := b.Cell(c.Pos.Step(m))
		if n != nil && n.Walkable {
			out[i] = n
		}
	}
	return out
}

// String returns the cell position.
func (c *Cell) String() string {
	return c.Pos.String()
}

var neighbourOrder = [4]core.Move{core.MoveRight, core.MoveLeft, core.MoveUp, core.MoveDown}

// Entity is anything on the board with a current position, such as an enemy.
type Entity interface {
	CurrentPosition() *Cell
}

// Board is a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	W       int
	H       int
	cells   []*Cell
	start   *Cell
	exit    *Cell
	enemies []Entity
}

// New creates a board of the given size with every cell walkable.
func New(w, h int) *Board {
	b := &Board{
		W:     w,
		H:     h,
		cells: make([]*Cell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.cells[b.index(core.C(x, y))] = &Cell{Pos: core.C(x, y), Walkable: true}
		}
	}
	return b
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c core.Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board boundaries.
func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Cell returns the cell at the given coordinate, or nil if out of bounds.
func (b *Board) Cell(c core.Coord) *Cell {
	if !b.InBounds(c) {
		return nil
	}
	return b.cells[b.index(c)]
}

// Cells returns all cells ordered by row then column.
func (b *Board) Cells() []*Cell {
	return b.cells
}

// SetWalkable sets the walkability of the cell at the given coordinate.
func (b *Board) SetWalkable(c core.Coord, walkable bool) {
	if cell := b.Cell(c); cell != nil {
		cell.Walkable = walkable
	}
}

// Start returns the agent spawn cell, or nil if none was set.
func (b *Board) Start() *Cell {
	return b.start
}

// SetStart sets the agent spawn cell.
func (b *Board) SetStart(c core.Coord) {
	b.start = b.Cell(c)
}

// Exit returns the exit cell, or nil if the board has none.
func (b *Board) Exit() *Cell {
	return b.exit
}

// SetExit sets the exit cell.
func (b *Board) SetExit(c core.Coord) {
	b.exit = b.Cell(c)
}

// Enemies returns the entities on the board in insertion order.
func (b *Board) Enemies() []Entity {
	return b.enemies
}

// AddEnemy appends an entity to the board.
func (b *Board) AddEnemy(e Entity) {
	b.enemies = append(b.enemies, e)
}

// WalkableCount returns the number of walkable cells.
func (b *Board) WalkableCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Walkable {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board.
// Entities on the copy report cells of the copy.
func (b *Board) Clone() *Board {
	nb := &Board{
		W:     b.W,
		H:     b.H,
		cells: make([]*Cell, len(b.cells)),
	}
	for i, cell := range b.cells {
		c := *cell
		nb.cells[i] = &c
	}
	if b.start != nil {
		nb.start = nb.Cell(b.start.Pos)
	}
	if b.exit != nil {
		nb.exit = nb.Cell(b.exit.Pos)
	}
	for _, e := range b.enemies {
		nb.enemies = append(nb.enemies, relocated{entity: e, board: nb})
	}
	return nb
}

// relocated maps an entity's position onto another board with the same shape.
type relocated struct {
	entity Entity
	board  *Board
}

func (r relocated) CurrentPosition() *Cell {
	cell := r.entity.CurrentPosition()
	if cell == nil {
		return nil
	}
	return r.board.Cell(cell.Pos)
}
