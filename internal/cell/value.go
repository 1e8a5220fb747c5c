package cell

import "fmt"

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindPlain is opaque trimmed text.
	KindPlain Kind = iota
	// KindScientific is a mantissa/exponent pair.
	KindScientific
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindScientific:
		return "scientific"
	}
	return "unknown"
}

// Value is a classified cell.
// For KindPlain only Text is set; for KindScientific only Mantissa and Exponent.
type Value struct {
	Kind     Kind
	Text     string
	Mantissa string
	Exponent string
}

// PlainText builds a KindPlain value.
func PlainText(text string) Value {
	return Value{Kind: KindPlain, Text: text}
}

// ScientificValue builds a KindScientific value without validating its parts.
// Use NewScientific when the parts come from untrusted input.
func ScientificValue(mantissa, exponent string) Value {
	return Value{Kind: KindScientific, Mantissa: mantissa, Exponent: exponent}
}

// NewScientific validates mantissa and exponent and builds a KindScientific value.
// It reports false for an empty exponent or a mantissa that is not a decimal literal.
func NewScientific(mantissa, exponent string) (Value, bool) {
	if exponent == "" || !isDecimalLiteral(mantissa) {
		return Value{}, false
	}
	return ScientificValue(mantissa, exponent), true
}

// IsScientific reports whether v holds a mantissa/exponent pair.
func (v Value) IsScientific() bool { return v.Kind == KindScientific }

func (v Value) String() string {
	if v.Kind == KindScientific {
		return fmt.Sprintf("ScientificValue(%q, %q)", v.Mantissa, v.Exponent)
	}
	return fmt.Sprintf("PlainText(%q)", v.Text)
}

// isDecimalLiteral accepts an optional sign followed by digits with at most one '.',
// requiring at least one digit.
func isDecimalLiteral(s string) bool {
	cur := NewCursor(s)
	if !cur.Eat('+') {
		cur.Eat('-')
	}
	digits, dots := 0, 0
	for !cur.EOF() {
		switch b := cur.Bump(); {
		case isDigit(b):
			digits++
		case b == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
