package table

import "strings"

const (
	columnSpec      = 'c'
	columnSeparator = '|'
)

// ComputeLayout returns the tabular column spec: one 'c' per column, with '|'
// between adjacent columns when bordered is set.
func ComputeLayout(columns int, bordered bool) string {
	if columns <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(columns * 2)
	for i := range columns {
		if bordered && i > 0 {
			sb.WriteByte(columnSeparator)
		}
		sb.WriteByte(columnSpec)
	}
	return sb.String()
}
