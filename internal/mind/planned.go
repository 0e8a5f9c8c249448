package mind

import (
	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/registry"
	"github.com/vovakirdan/gridmind/internal/search"
)

// planner is the signature shared by search.AStar and search.BreadthFirst.
type planner func(b *board.Board, start, goal *board.Cell, options ...search.Option) (search.Result, error)

// plannedMind searches once toward the board exit and then walks the cached path.
type plannedMind struct {
	id      string
	title   string
	plan    planner
	options settings

	planned bool
	result  search.Result
	cursor  cursor
}

// ID returns the strategy identifier.
func (m *plannedMind) ID() string { return m.id }

// Title returns the display name.
func (m *plannedMind) Title() string { return m.title }

// NextMove plans on the first call and returns one step of the cached path per call.
// An unreachable exit yields ErrNoPath; a fully walked path yields ErrPathExhausted.
func (m *plannedMind) NextMove(b *board.Board, current *board.Cell, _ []*board.Cell) (core.Move, error) {
	if current == nil {
		return core.MoveNone, ErrNoPosition
	}

	if !m.planned {
		goal := b.Exit()
		if goal == nil {
			return core.MoveNone, ErrNoGoal
		}
		res, err := m.plan(b, current, goal, search.WithObserver(m.options.observer))
		if err != nil {
			return core.MoveNone, err
		}
		m.planned = true
		m.result = res
		m.cursor.load(res.Path)
	}

	if !m.result.Found {
		return core.MoveNone, ErrNoPath
	}

	next, ok := m.cursor.peek()
	if !ok {
		return core.MoveNone, ErrPathExhausted
	}
	move, err := stepToward(current, next)
	if err != nil {
		return core.MoveNone, err
	}
	m.cursor.advance()
	return move, nil
}

// Reset drops the cached path.
func (m *plannedMind) Reset() {
	m.planned = false
	m.result = search.Result{}
	m.cursor.load(nil)
}

// LastResult returns the result of the most recent search.
func (m *plannedMind) LastResult() search.Result {
	return m.result
}

// Remaining returns the number of path steps not yet handed out.
func (m *plannedMind) Remaining() int {
	return m.cursor.remaining()
}

// AStarMind plans once with A* toward the exit.
type AStarMind struct {
	plannedMind
}

// NewAStar creates an A* mind.
func NewAStar(options ...Option) *AStarMind {
	return &AStarMind{plannedMind{
		id:      IDAStar,
		title:   "A* search",
		plan:    search.AStar,
		options: buildSettings(options),
	}}
}

// BFSMind plans once with breadth-first search toward the exit.
// Planning marks every discovered cell of the board non-walkable.
type BFSMind struct {
	plannedMind
}

// NewBFS creates a breadth-first mind.
func NewBFS(options ...Option) *BFSMind {
	return &BFSMind{plannedMind{
		id:      IDBFS,
		title:   "Breadth-first search",
		plan:    search.BreadthFirst,
		options: buildSettings(options),
	}}
}

var (
	_ registry.Strategy = (*AStarMind)(nil)
	_ registry.Strategy = (*BFSMind)(nil)
)
