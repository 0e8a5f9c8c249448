// Package sim drives a strategy across a board one tick at a time and reports
// how the run ended.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/mind"
	"github.com/vovakirdan/gridmind/internal/registry"
	"github.com/vovakirdan/gridmind/internal/search"
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeArrived   Outcome = "arrived"   // Agent reached the exit or an enemy
	OutcomeExhausted Outcome = "exhausted" // Strategy ran out of path away from any goal
	OutcomeNoPath    Outcome = "no_path"   // Strategy found no route
	OutcomeBlocked   Outcome = "blocked"   // Strategy asked to move into a wall or off the board
	OutcomeTimeout   Outcome = "timeout"   // Tick limit reached
	OutcomeError     Outcome = "error"     // Strategy failed or the run was cancelled
)

// ErrNoStart is returned when the board has no agent start cell.
var ErrNoStart = errors.New("sim: board has no start cell")

// Job describes a single run.
type Job struct {
	BoardID  string
	Board    *board.Board // Terrain; left untouched apart from patrol movement
	Strategy string       // Registered strategy ID
	Config   core.RuntimeConfig
	Observer search.Observer // Optional, receives every search event of the run
}

// Report contains the result of a run.
type Report struct {
	RunID    string
	BoardID  string
	Strategy string
	Outcome  Outcome
	Steps    int
	Expanded int // Nodes expanded by every search of the run
	Moves    []core.Move
	Final    core.Coord
	Err      error // Cause of OutcomeError, OutcomeNoPath and OutcomeBlocked
}

// Runner executes runs.
type Runner struct {
	logger *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for run events.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner. Without WithLogger, events are discarded.
func NewRunner(options ...Option) *Runner {
	r := &Runner{logger: log.New(io.Discard)}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run plays job.Strategy on job.Board until the agent arrives, the strategy
// gives up, or the tick limit is reached.
//
// The strategy plans on a private clone of the board, so destructive searches
// never alter the terrain that moves are validated against. Enemy patrols
// advance once after every agent move.
func (r *Runner) Run(ctx context.Context, job Job) (Report, error) {
	terrain := job.Board
	if terrain == nil || terrain.Start() == nil {
		return Report{}, ErrNoStart
	}

	var expanded counter
	var observer search.Observer = &expanded
	if job.Observer != nil {
		observer = search.Fanout{&expanded, job.Observer}
	}
	strategy, err := registry.Create(job.Strategy, job.Config, observer)
	if err != nil {
		return Report{}, err
	}

	maxTicks := job.Config.MaxTicks
	if maxTicks <= 0 {
		maxTicks = core.DefaultConfig().MaxTicks
	}

	report := Report{
		RunID:    uuid.NewString(),
		BoardID:  job.BoardID,
		Strategy: strategy.ID(),
	}
	logger := r.logger.With("run", report.RunID, "board", job.BoardID, "strategy", report.Strategy)
	logger.Info("run started", "max_ticks", maxTicks)

	view := terrain.Clone()
	pos := terrain.Start().Pos

	report.Outcome, report.Err = r.loop(ctx, logger, terrain, view, strategy, maxTicks, &pos, &report.Moves)
	report.Steps = len(report.Moves)
	report.Expanded = expanded.closed
	report.Final = pos

	if report.Err != nil {
		logger.Warn("run finished", "outcome", report.Outcome, "steps", report.Steps, "expanded", report.Expanded, "err", report.Err)
	} else {
		logger.Info("run finished", "outcome", report.Outcome, "steps", report.Steps, "expanded", report.Expanded)
	}
	return report, nil
}

func (r *Runner) loop(ctx context.Context, logger *log.Logger, terrain, view *board.Board, strategy registry.Strategy, maxTicks int, pos *core.Coord, moves *[]core.Move) (Outcome, error) {
	for tick := 0; tick < maxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return OutcomeError, err
		}
		if arrived(terrain, *pos) {
			return OutcomeArrived, nil
		}

		move, err := strategy.NextMove(view, view.Cell(*pos), goals(view))
		switch {
		case errors.Is(err, mind.ErrPathExhausted):
			return OutcomeExhausted, nil
		case errors.Is(err, mind.ErrNoPath):
			return OutcomeNoPath, err
		case err != nil:
			return OutcomeError, err
		}

		next := pos.Step(move)
		if cell := terrain.Cell(next); cell == nil || !cell.Walkable {
			return OutcomeBlocked, fmt.Errorf("tick %d: move %s from %s into %s", tick, move, *pos, next)
		}
		*pos = next
		*moves = append(*moves, move)
		logger.Debug("tick", "n", tick, "move", move, "pos", next)

		if arrived(terrain, *pos) {
			return OutcomeArrived, nil
		}
		advancePatrols(terrain)
	}

	if arrived(terrain, *pos) {
		return OutcomeArrived, nil
	}
	return OutcomeTimeout, nil
}

// arrived reports whether pos is the exit or holds an enemy.
func arrived(b *board.Board, pos core.Coord) bool {
	if exit := b.Exit(); exit != nil && exit.Pos == pos {
		return true
	}
	for _, e := range b.Enemies() {
		if cell := e.CurrentPosition(); cell != nil && cell.Pos == pos {
			return true
		}
	}
	return false
}

// goals lists the exit followed by every enemy cell.
func goals(b *board.Board) []*board.Cell {
	var out []*board.Cell
	if exit := b.Exit(); exit != nil {
		out = append(out, exit)
	}
	for _, e := range b.Enemies() {
		if cell := e.CurrentPosition(); cell != nil {
			out = append(out, cell)
		}
	}
	return out
}

type advancer interface {
	Advance()
}

func advancePatrols(b *board.Board) {
	for _, e := range b.Enemies() {
		if a, ok := e.(advancer); ok {
			a.Advance()
		}
	}
}

// counter counts expanded nodes across every search of a run.
type counter struct {
	closed int
}

func (c *counter) Opened(*board.Cell) {}
func (c *counter) Closed(*board.Cell) { c.closed++ }
func (c *counter) Chosen(*board.Cell) {}
