package cell

// Render returns the LaTeX form of v. Text is not escaped.
func Render(v Value) string {
	if v.Kind == KindScientific {
		return "$" + v.Mantissa + ` \times 10^{` + v.Exponent + "}$"
	}
	return v.Text
}
