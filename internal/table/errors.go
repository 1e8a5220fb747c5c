package table

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader means the first record could not be read.
	ErrHeader = errors.New("failed to read CSV header")
	// ErrMalformedRow is returned in strict mode when any data row was rejected.
	ErrMalformedRow = errors.New("malformed CSV rows")
)

// CellError locates a cell that could not be rendered.
type CellError struct {
	Line   int
	Column int // 1-based
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
