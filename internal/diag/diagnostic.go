package diag

import (
	"fmt"

	"fortio.org/safecast"
)

// Pos is a 1-based location in the input table. Line is the physical input
// line where the record starts; Column is the field index (0 means whole row).
type Pos struct {
	Line   uint32
	Column uint32
}

// At builds a Pos from int coordinates, clamping overflow to the maximum.
func At(line, column int) Pos {
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		l = ^uint32(0)
	}
	c, err := safecast.Conv[uint32](column)
	if err != nil {
		c = ^uint32(0)
	}
	return Pos{Line: l, Column: c}
}

func (p Pos) String() string {
	if p.Column == 0 {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Note struct {
	Pos Pos
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Pos
	Notes    []Note
}
