package search

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridmind/internal/board"
)

// Observer receives search events. Calls are fire-and-forget and never
// influence the search.
type Observer interface {
	// Opened is called when a cell joins the frontier.
	Opened(cell *board.Cell)
	// Closed is called when a cell is taken off the frontier and expanded.
	Closed(cell *board.Cell)
	// Chosen is called for every cell of the reconstructed path, start side first.
	Chosen(cell *board.Cell)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) Opened(*board.Cell) {}
func (NopObserver) Closed(*board.Cell) {}
func (NopObserver) Chosen(*board.Cell) {}

// LogObserver writes search events to a logger at debug level.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an observer that logs through logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Opened(cell *board.Cell) {
	o.logger.Debug("opened", "cell", cell.Pos)
}

func (o *LogObserver) Closed(cell *board.Cell) {
	o.logger.Debug("closed", "cell", cell.Pos)
}

func (o *LogObserver) Chosen(cell *board.Cell) {
	o.logger.Debug("path", "cell", cell.Pos)
}

// Trace records every event in order.
type Trace struct {
	OpenedCells []*board.Cell
	ClosedCells []*board.Cell
	ChosenCells []*board.Cell
}

func (t *Trace) Opened(cell *board.Cell) { t.OpenedCells = append(t.OpenedCells, cell) }
func (t *Trace) Closed(cell *board.Cell) { t.ClosedCells = append(t.ClosedCells, cell) }
func (t *Trace) Chosen(cell *board.Cell) { t.ChosenCells = append(t.ChosenCells, cell) }

// Reset clears the recorded events.
func (t *Trace) Reset() {
	t.OpenedCells = nil
	t.ClosedCells = nil
	t.ChosenCells = nil
}

// Fanout forwards every event to each observer in order.
type Fanout []Observer

func (f Fanout) Opened(cell *board.Cell) {
	for _, o := range f {
		o.Opened(cell)
	}
}

func (f Fanout) Closed(cell *board.Cell) {
	for _, o := range f {
		o.Closed(cell)
	}
}

func (f Fanout) Chosen(cell *board.Cell) {
	for _, o := range f {
		o.Chosen(cell)
	}
}
