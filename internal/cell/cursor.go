package cell

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor is a byte position inside a single cell.
type Cursor struct {
	Text string
	Off  uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text string) Cursor {
	limit, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("cell length overflow: %w", err))
	}
	return Cursor{Text: text, Limit: limit}
}

// EOF reports whether the whole cell has been consumed.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Bump advances by one byte and returns the byte it stepped over.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Text[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// TakeWhile consumes the longest run of bytes accepted by pred and returns it.
// The run may be empty.
func (c *Cursor) TakeWhile(pred func(byte) bool) string {
	start := c.Off
	for !c.EOF() && pred(c.Text[c.Off]) {
		c.Off++
	}
	return c.Text[start:c.Off]
}

