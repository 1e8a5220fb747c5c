package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"csvtex/internal/cell"
	"csvtex/internal/diag"
)

// Options configures Convert. The zero value produces the unbordered layout
// with canonical exponents, default title/label and lenient row handling.
type Options struct {
	Title    string
	Label    string
	Bordered bool
	Exponent cell.ExponentMode
	// Strict turns any rejected data row into a fatal ErrMalformedRow.
	Strict bool
	// Jobs bounds parallel row rendering; <= 0 means GOMAXPROCS.
	Jobs           int
	MaxDiagnostics int
	Logger         *slog.Logger
}

// Result is returned by Convert. Bag is always populated, even when Convert fails.
type Result struct {
	Document *Document
	Bag      *diag.Bag
	// Rows is the number of rendered data rows, Skipped the number rejected.
	Rows    int
	Skipped int
}

const rawExponentHint = "use --exponent raw to keep it verbatim"

type pendingRow struct {
	line  int
	cells []string
}

// Convert reads a CSV table from r and renders it as a LaTeX table.
// The first record is the header and is emitted verbatim.
func Convert(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger
	res := &Result{Bag: diag.NewBag(opts.MaxDiagnostics)}
	rep := diag.BagReporter{Bag: res.Bag}

	rd := csv.NewReader(r)
	rd.LazyQuotes = true
	header, err := rd.Read()
	if err != nil {
		line := 1
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			line = pe.StartLine
		}
		if errors.Is(err, io.EOF) {
			err = errors.New("input is empty")
		}
		diag.ReportError(rep, diag.CSVHeader, diag.At(line, 0), err.Error()).Emit()
		return res, fmt.Errorf("%w: %w", ErrHeader, err)
	}
	log.Debug("header read", "columns", len(header))

	pending, err := readRows(ctx, rd, rep, res)
	if err != nil {
		return res, err
	}
	if len(pending) == 0 {
		diag.NewReportBuilder(rep, diag.SevInfo, diag.CSVEmptyInput, diag.At(1, 0), "table has no data rows").Emit()
	}

	rows, err := renderRows(ctx, cell.Classifier{Exponent: opts.Exponent}, pending, opts.Jobs, rep)
	if err != nil {
		return res, err
	}
	res.Rows = len(rows)
	log.Debug("rows rendered", "rows", res.Rows, "skipped", res.Skipped)

	if opts.Strict && res.Skipped > 0 {
		return res, fmt.Errorf("%w: %d row(s) rejected", ErrMalformedRow, res.Skipped)
	}

	res.Document = &Document{
		Title:  opts.Title,
		Label:  opts.Label,
		Layout: ComputeLayout(len(header), opts.Bordered),
		Header: RenderHeader(header),
		Rows:   rows,
	}
	return res, nil
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// readRows collects data records in input order. Structurally malformed
// records are reported and counted in res.Skipped; IO errors are fatal.
func readRows(ctx context.Context, rd *csv.Reader, rep diag.Reporter, res *Result) ([]pendingRow, error) {
	var rows []pendingRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read CSV: %w", err)
			}
			code := diag.CSVMalformedRow
			if errors.Is(pe.Err, csv.ErrFieldCount) {
				code = diag.CSVFieldCount
			}
			diag.ReportWarning(rep, code, diag.At(pe.StartLine, 0), "row skipped: "+pe.Err.Error()).Emit()
			res.Skipped++
			continue
		}
		line, _ := rd.FieldPos(0)
		rows = append(rows, pendingRow{line: line, cells: rec})
	}
}

// renderRows renders rows concurrently; output order equals input order.
// Every bad cell is reported, and the first one in input order is returned.
func renderRows(ctx context.Context, c cell.Classifier, rows []pendingRow, jobs int, rep diag.Reporter) ([]string, error) {
	out := make([]string, len(rows))
	errs := make([]*CellError, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(rows))))
	for i, row := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells, col, err := renderCells(c, row.cells)
			if err != nil {
				errs[i] = &CellError{Line: row.line, Column: col + 1, Err: err}
				return nil
			}
			out[i] = RenderRow(cells)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var first error
	for _, ce := range errs {
		if ce == nil {
			continue
		}
		pos := diag.At(ce.Line, ce.Column)
		diag.ReportError(rep, diag.CellBadExponent, pos, ce.Err.Error()).
			WithNote(pos, rawExponentHint).
			Emit()
		if first == nil {
			first = ce
		}
	}
	if first != nil {
		return nil, first
	}
	return out, nil
}
