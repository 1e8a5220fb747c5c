// Package table assembles classified CSV rows into a LaTeX table environment.
//
// Convert drives the whole pipeline: read the header, read data rows in order,
// classify and render every cell, and collect structural problems as
// diagnostics. The rendered Document is only returned once every cell has been
// rendered, so callers never see a partially written table.
package table
