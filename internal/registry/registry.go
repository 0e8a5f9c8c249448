// Package registry provides a global registry of agent strategy factories.
// Strategies register themselves in init() functions, allowing the CLI and
// the simulator to discover and instantiate them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/search"
)

// Strategy is the interface every agent strategy implements.
// A strategy belongs to one agent and keeps its plan between calls.
type Strategy interface {
	// ID returns a unique identifier for this strategy (e.g., "astar", "bfs").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// NextMove returns the move to make this tick from current.
	// goals is accepted for interface parity; each strategy picks its own target.
	NextMove(b *board.Board, current *board.Cell, goals []*board.Cell) (core.Move, error)

	// Reset drops any cached plan so the next call searches again.
	Reset()
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory creates a new strategy instance.
// observer may be nil.
type Factory func(cfg core.RuntimeConfig, observer search.Observer) Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f(core.DefaultConfig(), nil)
	titles[id] = s.Title()
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new strategy by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg core.RuntimeConfig, observer search.Observer) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(cfg, observer), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
