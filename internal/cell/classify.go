package cell

import "strings"

// Classifier turns raw cells into Values. The zero value canonicalizes exponents.
type Classifier struct {
	Exponent ExponentMode
}

// Classify classifies raw with canonical exponents.
func Classify(raw string) (Value, error) {
	return Classifier{}.Classify(raw)
}

// Classify tries the scientific production first and falls back to plain text.
// The only error is *ExponentError, returned alongside the scientific Value
// whose Exponent holds the raw capture.
func (c Classifier) Classify(raw string) (Value, error) {
	text := strings.TrimSpace(raw)
	mantissa, exponent, ok := matchScientific(text)
	if ok {
		if v, valid := NewScientific(mantissa, exponent); valid {
			if c.Exponent == ExponentRaw {
				return v, nil
			}
			norm, err := NormalizeExponent(exponent)
			if err != nil {
				return v, &ExponentError{Cell: text, Exponent: exponent, Err: err}
			}
			v.Exponent = norm
			return v, nil
		}
	}
	return PlainText(text), nil
}

// matchScientific matches [0-9.+-]* 'E' [0-9+-]* against the whole of text.
func matchScientific(text string) (mantissa, exponent string, ok bool) {
	cur := NewCursor(text)
	mantissa = cur.TakeWhile(isMantissaByte)
	if !cur.Eat('E') {
		return "", "", false
	}
	exponent = cur.TakeWhile(isExponentByte)
	if !cur.EOF() {
		return "", "", false
	}
	return mantissa, exponent, true
}
