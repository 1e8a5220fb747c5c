// Package cell classifies and renders individual CSV cells.
//
// A cell is either opaque text or a number written in the `<mantissa>E<exponent>`
// form (uppercase marker only, e.g. `6.02E23`). Scientific cells render as
// `$<mantissa> \times 10^{<exponent>}$`; every other cell passes through with
// surrounding whitespace removed. No LaTeX escaping is performed.
//
// Classification is a two-production ordered alternation: the scientific form
// is tried first and the plain form always succeeds. Degenerate scientific
// matches (no mantissa digits, empty exponent, trailing garbage) are rejected
// and fall back to plain text.
package cell
