package cell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadExponent is returned when an exponent is not a base-10 32-bit integer.
var ErrBadExponent = errors.New("invalid exponent")

// ExponentMode selects how a captured exponent is rendered.
type ExponentMode uint8

const (
	// ExponentCanonical re-parses the exponent and prints it without leading zeros or '+'.
	ExponentCanonical ExponentMode = iota
	// ExponentRaw keeps the captured exponent text as is.
	ExponentRaw
)

func (m ExponentMode) String() string {
	switch m {
	case ExponentCanonical:
		return "canonical"
	case ExponentRaw:
		return "raw"
	}
	return "unknown"
}

// ParseExponentMode parses "canonical" or "raw". The empty string means canonical.
func ParseExponentMode(s string) (ExponentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "canonical":
		return ExponentCanonical, nil
	case "raw":
		return ExponentRaw, nil
	}
	return ExponentCanonical, fmt.Errorf("unknown exponent mode %q (must be canonical or raw)", s)
}

// NormalizeExponent canonicalizes a signed decimal integer: "007" -> "7",
// "-0" -> "0", "+12" -> "12".
func NormalizeExponent(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrBadExponent)
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrBadExponent, raw)
	}
	return strconv.FormatInt(n, 10), nil
}

// ExponentError reports a cell shaped like scientific notation whose exponent
// could not be canonicalized.
type ExponentError struct {
	Cell     string
	Exponent string
	Err      error
}

func (e *ExponentError) Error() string {
	return fmt.Sprintf("cell %q: %v", e.Cell, e.Err)
}

func (e *ExponentError) Unwrap() error { return e.Err }
