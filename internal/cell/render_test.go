package cell

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{ScientificValue("1.23", "-4"), `$1.23 \times 10^{-4}$`},
		{ScientificValue("1", "2"), `$1 \times 10^{2}$`},
		{PlainText("hello world"), "hello world"},
		{PlainText("50%"), "50%"},
		{PlainText(""), ""},
	}
	for _, tt := range tests {
		if got := Render(tt.in); got != tt.want {
			t.Errorf("Render(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewScientific(t *testing.T) {
	tests := []struct {
		mantissa, exponent string
		ok                 bool
	}{
		{"1.5", "3", true},
		{"+.5", "3", true},
		{"1.", "3", true},
		{"", "3", false},
		{".", "3", false},
		{"+", "3", false},
		{"1.5", "", false},
		{"1..5", "3", false},
		{"+-1", "3", false},
	}
	for _, tt := range tests {
		_, ok := NewScientific(tt.mantissa, tt.exponent)
		if ok != tt.ok {
			t.Errorf("NewScientific(%q, %q) ok = %v, want %v", tt.mantissa, tt.exponent, ok, tt.ok)
		}
	}
}
