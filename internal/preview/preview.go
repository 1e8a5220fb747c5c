// Package preview renders a classified table as an aligned terminal grid so
// users can check which cells will be typeset as powers of ten.
package preview

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"csvtex/internal/cell"
)

// Options controls the grid.
type Options struct {
	Exponent cell.ExponentMode
	// MaxWidth truncates cells wider than this many columns; 0 disables truncation.
	MaxWidth int
	// MaxRows limits the number of data rows shown; 0 shows all.
	MaxRows int
	Color   bool
}

// Cell is one classified grid cell.
type Cell struct {
	Display string
	Kind    cell.Kind
	Bad     bool
}

// Grid is a header plus classified rows.
type Grid struct {
	Header []string
	Rows   [][]Cell
	// Hidden counts rows cut by MaxRows; Rejected counts malformed records.
	Hidden   int
	Rejected int
}

// Build reads r and classifies every data cell.
func Build(ctx context.Context, r io.Reader, opts Options) (*Grid, error) {
	rd := csv.NewReader(r)
	rd.LazyQuotes = true
	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	g := &Grid{Header: header}
	c := cell.Classifier{Exponent: opts.Exponent}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				g.Rejected++
				continue
			}
			return nil, err
		}
		if opts.MaxRows > 0 && len(g.Rows) >= opts.MaxRows {
			g.Hidden++
			continue
		}
		row := make([]Cell, len(rec))
		for i, raw := range rec {
			v, err := c.Classify(raw)
			row[i] = Cell{Display: cell.Render(v), Kind: v.Kind, Bad: err != nil}
		}
		g.Rows = append(g.Rows, row)
	}
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	scientificStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	badStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	footerStyle     = lipgloss.NewStyle().Faint(true)
)

// Render writes the grid with columns padded to their display width.
func (g *Grid) Render(w io.Writer, opts Options) error {
	widths := g.columnWidths(opts.MaxWidth)
	style := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder
	for i, h := range g.Header {
		if i > 0 {
			sb.WriteString(" │ ")
		}
		sb.WriteString(style(headerStyle, pad(fit(h, opts.MaxWidth), widths[i])))
	}
	sb.WriteByte('\n')
	for _, row := range g.Rows {
		for i, c := range row {
			if i > 0 {
				sb.WriteString(" │ ")
			}
			text := pad(fit(c.Display, opts.MaxWidth), widthAt(widths, i))
			switch {
			case c.Bad:
				text = style(badStyle, text)
			case c.Kind == cell.KindScientific:
				text = style(scientificStyle, text)
			}
			sb.WriteString(text)
		}
		sb.WriteByte('\n')
	}
	if g.Hidden > 0 || g.Rejected > 0 {
		sb.WriteString(style(footerStyle, fmt.Sprintf("(%d more row(s), %d rejected)", g.Hidden, g.Rejected)))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (g *Grid) columnWidths(maxWidth int) []int {
	n := len(g.Header)
	for _, row := range g.Rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, h := range g.Header {
		widths[i] = runewidth.StringWidth(fit(h, maxWidth))
	}
	for _, row := range g.Rows {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(fit(c.Display, maxWidth)))
		}
	}
	return widths
}

func widthAt(widths []int, i int) int {
	if i < len(widths) {
		return widths[i]
	}
	return 0
}

func fit(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
