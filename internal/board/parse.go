package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridmind/internal/core"
)

// Board glyphs used by Parse.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
	GlyphStart = 'S'
	GlyphExit  = 'E'
	GlyphEnemy = 'M'
)

var (
	ErrEmptyBoard      = errors.New("board: no rows")
	ErrRaggedRows      = errors.New("board: rows have different widths")
	ErrBadGlyph        = errors.New("board: unknown glyph")
	ErrNoStart         = errors.New("board: no start cell")
	ErrDuplicateMarker = errors.New("board: marker appears more than once")
)

// Parse builds a board from text rows. Row 0 is the top of the board,
// so the cell at row r has y = len(rows)-1-r.
// Enemy glyphs become stationary patrols in reading order.
func Parse(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBoard
	}

	w := len(rows[0])
	h := len(rows)
	b := New(w, h)

	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrRaggedRows, r, len(row), w)
		}
		y := h - 1 - r
		for x := 0; x < w; x++ {
			pos := core.C(x, y)
			switch row[x] {
			case GlyphWall:
				b.SetWalkable(pos, false)
			case GlyphFloor:
			case GlyphStart:
				if b.start != nil {
					return nil, fmt.Errorf("%w: %q", ErrDuplicateMarker, GlyphStart)
				}
				b.SetStart(pos)
			case GlyphExit:
				if b.exit != nil {
					return nil, fmt.Errorf("%w: %q", ErrDuplicateMarker, GlyphExit)
				}
				b.SetExit(pos)
			case GlyphEnemy:
				b.AddEnemy(NewPatrol(b, pos))
			default:
				return nil, fmt.Errorf("%w %q at %s", ErrBadGlyph, row[x], pos)
			}
		}
	}

	if b.start == nil {
		return nil, ErrNoStart
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(rows ...string) *Board {
	b, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return b
}
