package table

import (
	"strings"

	"csvtex/internal/cell"
)

const (
	cellSeparator = "&"
	rowTerminator = ` \\`
	hline         = `\hline`
)

// RenderRow joins rendered cells and appends the row terminator.
func RenderRow(cells []string) string {
	return strings.Join(cells, cellSeparator) + rowTerminator
}

// RenderHeader is RenderRow followed by a horizontal rule.
func RenderHeader(cells []string) string {
	return RenderRow(cells) + " " + hline
}

// renderCells classifies and renders one data row. On failure it returns the
// 0-based index of the offending cell.
func renderCells(c cell.Classifier, raw []string) ([]string, int, error) {
	out := make([]string, len(raw))
	for i, s := range raw {
		v, err := c.Classify(s)
		if err != nil {
			return nil, i, err
		}
		out[i] = cell.Render(v)
	}
	return out, -1, nil
}
