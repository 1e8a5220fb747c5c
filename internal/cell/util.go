package cell

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isMantissaByte: [0-9.+-]
func isMantissaByte(b byte) bool {
	return isDigit(b) || b == '.' || b == '-' || b == '+'
}

// isExponentByte: [0-9+-]
func isExponentByte(b byte) bool {
	return isDigit(b) || b == '-' || b == '+'
}
