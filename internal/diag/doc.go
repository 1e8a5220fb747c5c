// Package diag defines the diagnostic model shared by the conversion phases.
//
// A Diagnostic records a finding about the input table: its severity, a stable
// code, a human message and the row/column it points to. Producers emit through
// a Reporter so they stay decoupled from storage; BagReporter collects into a
// capped Bag which can be sorted and de-duplicated for deterministic output.
//
// Package diag performs no formatting or IO. Rendering lives in internal/diagfmt.
package diag
