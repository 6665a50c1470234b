package numberutils

import "unicode"

// IsDigits checks if the given string contains only digits (0-9).
// It returns false for an empty string.
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
