// Package mind implements the agent strategies that answer one move request
// per tick: A* and breadth-first minds plan once and follow a cached path,
// the horizon mind re-plans toward a possibly moving target on every call.
package mind

import (
	"errors"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/registry"
	"github.com/vovakirdan/gridmind/internal/search"
)

var (
	// ErrNoPath is returned when the search found no route to the goal.
	ErrNoPath = errors.New("mind: no path to goal")
	// ErrPathExhausted is the terminal signal once every step of the plan was handed out.
	ErrPathExhausted = errors.New("mind: path exhausted")
	// ErrNoGoal is returned when the board has neither an exit nor an enemy to chase.
	ErrNoGoal = errors.New("mind: board has no goal")
	// ErrNoPosition is returned when the agent position is nil.
	ErrNoPosition = errors.New("mind: current position is nil")
)

// Strategy IDs.
const (
	IDAStar   = "astar"
	IDBFS     = "bfs"
	IDHorizon = "horizon"
)

func init() {
	registry.Register(IDAStar, func(_ core.RuntimeConfig, observer search.Observer) registry.Strategy {
		return NewAStar(WithObserver(observer))
	})
	registry.Register(IDBFS, func(_ core.RuntimeConfig, observer search.Observer) registry.Strategy {
		return NewBFS(WithObserver(observer))
	})
	registry.Register(IDHorizon, func(cfg core.RuntimeConfig, observer search.Observer) registry.Strategy {
		opts := []Option{WithObserver(observer)}
		if cfg.NearestTarget {
			opts = append(opts, WithNearestTarget())
		}
		return NewHorizon(cfg.MaxDepth, opts...)
	})
}

type settings struct {
	observer search.Observer
	nearest  bool
}

// Option configures a mind.
type Option func(*settings)

// WithObserver routes the searches' events to o. A nil observer is ignored.
func WithObserver(o search.Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithNearestTarget makes the horizon mind chase the nearest enemy instead of the first one.
func WithNearestTarget() Option {
	return func(s *settings) { s.nearest = true }
}

func buildSettings(options []Option) settings {
	s := settings{observer: search.NopObserver{}}
	for _, option := range options {
		option(&s)
	}
	return s
}

// stepToward resolves the move from current onto next.
func stepToward(current, next *board.Cell) (core.Move, error) {
	return core.DirectionTo(current.Pos, next.Pos)
}
