package mind

import (
	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/registry"
	"github.com/vovakirdan/gridmind/internal/search"
)

// HorizonMind re-plans with a depth-limited search on every move request,
// chasing an enemy when the board has one and the exit otherwise.
type HorizonMind struct {
	maxDepth int
	options  settings

	goal   *board.Cell
	result search.Result
}

// NewHorizon creates a horizon mind exploring up to maxDepth hops per tick.
// A depth below 1 falls back to core.DefaultMaxDepth.
func NewHorizon(maxDepth int, options ...Option) *HorizonMind {
	if maxDepth < 1 {
		maxDepth = core.DefaultMaxDepth
	}
	return &HorizonMind{
		maxDepth: maxDepth,
		options:  buildSettings(options),
	}
}

// ID returns the strategy identifier.
func (m *HorizonMind) ID() string { return IDHorizon }

// Title returns the display name.
func (m *HorizonMind) Title() string { return "Horizon breadth-first search" }

// MaxDepth returns the configured horizon.
func (m *HorizonMind) MaxDepth() int { return m.maxDepth }

// NextMove selects the goal, searches up to the horizon and returns the first step.
// Standing on the goal yields ErrPathExhausted.
func (m *HorizonMind) NextMove(b *board.Board, current *board.Cell, _ []*board.Cell) (core.Move, error) {
	if current == nil {
		return core.MoveNone, ErrNoPosition
	}

	goal := m.selectGoal(b, current)
	if goal == nil {
		return core.MoveNone, ErrNoGoal
	}
	m.goal = goal

	res, err := search.Horizon(b, current, goal, m.maxDepth, search.WithObserver(m.options.observer))
	if err != nil {
		return core.MoveNone, err
	}
	m.result = res

	if len(res.Path) == 0 {
		if res.Found {
			return core.MoveNone, ErrPathExhausted
		}
		return core.MoveNone, ErrNoPath
	}
	return stepToward(current, res.Path[0])
}

// selectGoal returns the first (or nearest) enemy cell, or the exit when there are no enemies.
func (m *HorizonMind) selectGoal(b *board.Board, current *board.Cell) *board.Cell {
	var target *board.Cell
	for _, enemy := range b.Enemies() {
		pos := enemy.CurrentPosition()
		if pos == nil {
			continue
		}
		if !m.options.nearest {
			return pos
		}
		if target == nil || current.Pos.Distance(pos.Pos) < current.Pos.Distance(target.Pos) {
			target = pos
		}
	}
	if target != nil {
		return target
	}
	return b.Exit()
}

// Goal returns the target chosen on the most recent call.
func (m *HorizonMind) Goal() *board.Cell {
	return m.goal
}

// LastResult returns the result of the most recent search.
func (m *HorizonMind) LastResult() search.Result {
	return m.result
}

// Reset forgets the last goal and result.
func (m *HorizonMind) Reset() {
	m.goal = nil
	m.result = search.Result{}
}

var _ registry.Strategy = (*HorizonMind)(nil)
