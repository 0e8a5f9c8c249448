package board

import "github.com/vovakirdan/gridmind/internal/core"

// Patrol is an enemy that walks a fixed route, one waypoint per Advance.
// The route wraps around to its first waypoint.
type Patrol struct {
	board *Board
	route []core.Coord
	index int
}

// NewPatrol creates a patrol on b. A single waypoint is a stationary enemy.
func NewPatrol(b *Board, route ...core.Coord) *Patrol {
	return &Patrol{board: b, route: route}
}

// CurrentPosition returns the cell the patrol currently occupies.
func (p *Patrol) CurrentPosition() *Cell {
	if len(p.route) == 0 {
		return nil
	}
	return p.board.Cell(p.route[p.index])
}

// Advance moves the patrol to its next waypoint.
func (p *Patrol) Advance() {
	if len(p.route) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.route)
}

// Route returns the waypoints of the patrol.
func (p *Patrol) Route() []core.Coord {
	return p.route
}
