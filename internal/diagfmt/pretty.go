package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"csvtex/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	pathColor    = color.New(color.Bold)
	noteColor    = color.New(color.FgHiBlack)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	}
	return infoColor
}

// sprint applies c only when enabled; color.Color honours its own global
// NoColor switch, which we do not want to depend on here.
func sprint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// Pretty prints one line per diagnostic:
//
//	<path>:<line>[:<col>]: <SEV> <CODE>: <Message>
//
// Expects bag.Sort() to have been called.
func Pretty(w io.Writer, bag *diag.Bag, path string, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		loc := sprint(opts.Color, pathColor, location(path, d.Primary)+":")
		sev := sprint(opts.Color, severityColor(d.Severity), d.Severity.String())
		if _, err := fmt.Fprintf(w, "%s %s %s: %s\n", loc, sev, d.Code.ID(), d.Message); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			line := fmt.Sprintf("  note: %s: %s", location(path, n.Pos), n.Msg)
			if _, err := fmt.Fprintln(w, sprint(opts.Color, noteColor, line)); err != nil {
				return err
			}
		}
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", n); err != nil {
			return err
		}
	}
	return nil
}

// location is "path:line[:col]", or just path for diagnostics not tied to a row.
func location(path string, p diag.Pos) string {
	if p.Line == 0 {
		return path
	}
	return path + ":" + p.String()
}
