package cell

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{"negative exponent", "1.23E-4", ScientificValue("1.23", "-4")},
		{"plus exponent", "3.0E+5", ScientificValue("3.0", "5")},
		{"integer mantissa", "1E2", ScientificValue("1", "2")},
		{"leading zeros", "6.02E023", ScientificValue("6.02", "23")},
		{"signed mantissa", "-2.5E3", ScientificValue("-2.5", "3")},
		{"surrounding whitespace", "  1.5E10\t", ScientificValue("1.5", "10")},
		{"plain text", "hello world", PlainText("hello world")},
		{"plain trimmed", "  hello  ", PlainText("hello")},
		{"empty", "", PlainText("")},
		{"only spaces", "   ", PlainText("")},
		{"lowercase marker", "1.5e3", PlainText("1.5e3")},
		{"empty mantissa", "E5", PlainText("E5")},
		{"sign-only mantissa", "-E5", PlainText("-E5")},
		{"empty exponent", "1.5E", PlainText("1.5E")},
		{"two dots", "1.2.3E4", PlainText("1.2.3E4")},
		{"sign in middle", "1-2E4", PlainText("1-2E4")},
		{"trailing garbage", "1E5abc", PlainText("1E5abc")},
		{"inner space", "1.5 E3", PlainText("1.5 E3")},
		{"word with E", "Energy", PlainText("Energy")},
		{"plain number", "3.14", PlainText("3.14")},
		{"japanese", "　値　", PlainText("値")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.in)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"1.23E-4", "x", "E5", "", " 7E007 ", "1E+-3"}
	for _, in := range inputs {
		a, errA := Classify(in)
		b, errB := Classify(in)
		if a != b {
			t.Errorf("Classify(%q) not deterministic: %v vs %v", in, a, b)
		}
		if (errA == nil) != (errB == nil) {
			t.Errorf("Classify(%q) error not deterministic: %v vs %v", in, errA, errB)
		}
	}
}

func TestClassifyBadExponent(t *testing.T) {
	for _, in := range []string{"1E+-3", "1E-", "2.0E5-3", "1E99999999999"} {
		v, err := Classify(in)
		if err == nil {
			t.Fatalf("Classify(%q) expected error, got %v", in, v)
		}
		var expErr *ExponentError
		if !errors.As(err, &expErr) {
			t.Fatalf("Classify(%q) error type %T, want *ExponentError", in, err)
		}
		if !errors.Is(err, ErrBadExponent) {
			t.Errorf("Classify(%q) error does not wrap ErrBadExponent: %v", in, err)
		}
		if !v.IsScientific() {
			t.Errorf("Classify(%q) = %v, want scientific shape", in, v)
		}
	}
}

func TestClassifyRawExponent(t *testing.T) {
	c := Classifier{Exponent: ExponentRaw}
	tests := []struct {
		in   string
		want Value
	}{
		{"1.23E-004", ScientificValue("1.23", "-004")},
		{"3.0E+5", ScientificValue("3.0", "+5")},
		// в raw-режиме экспонента не парсится
		{"1E+-3", ScientificValue("1", "+-3")},
		{"E5", PlainText("E5")},
	}
	for _, tt := range tests {
		got, err := c.Classify(tt.in)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderRoundTripPlain(t *testing.T) {
	for _, in := range []string{"hello world", "  padded ", "a&b", `\alpha`, "", "1.5e3", "E5"} {
		v, err := Classify(in)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", in, err)
		}
		got := Render(v)
		want := trimForTest(in)
		if got != want {
			t.Errorf("Render(Classify(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderedOutputIsNotReclassified(t *testing.T) {
	for _, in := range []string{"1.23E-4", "3.0E+5", "1E2", "-7E0"} {
		v, err := Classify(in)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", in, err)
		}
		rendered := Render(v)
		again, err := Classify(rendered)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", rendered, err)
		}
		if again.IsScientific() {
			t.Errorf("rendered %q was classified as scientific again", rendered)
		}
		if Render(again) != rendered {
			t.Errorf("re-render of %q changed it to %q", rendered, Render(again))
		}
	}
}

func trimForTest(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
