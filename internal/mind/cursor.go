package mind

import (
	"github.com/vovakirdan/gridmind/internal/board"
	"github.com/vovakirdan/gridmind/internal/core"
	"github.com/vovakirdan/gridmind/internal/search"
)

// cursor hands out path cells in order. It only moves forward and stops at the end.
type cursor struct {
	path search.Path
	next int
}

func (c *cursor) load(p search.Path) {
	c.path = p
	c.next = 0
}

// peek returns the next cell without consuming it.
func (c *cursor) peek() (*board.Cell, bool) {
	if c.next >= len(c.path) {
		return nil, false
	}
	return c.path[c.next], true
}

func (c *cursor) advance() {
	c.next = core.Clamp(c.next+1, 0, len(c.path))
}

func (c *cursor) remaining() int {
	return len(c.path) - c.next
}
