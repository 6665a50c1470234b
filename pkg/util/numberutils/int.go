package numberutils

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ToIntWithError converts the given string to an integer and returns any error that occurred during conversion.
// Only an optional sign followed by decimal digits is accepted; leading zeros are not read as octal.
func ToIntWithError(str string) (int, error) {
	trimmed := strings.TrimSpace(str)
	sign := ""
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "+") {
		sign, trimmed = trimmed[:1], trimmed[1:]
	}
	if !IsDigits(trimmed) {
		return 0, fmt.Errorf("invalid integer %q", str)
	}
	if digits := strings.TrimLeft(trimmed, "0"); digits == "" {
		trimmed = "0"
	} else {
		trimmed = digits
	}
	if sign == "+" {
		sign = ""
	}
	return cast.ToIntE(sign + trimmed)
}

// IsIntInRange checks if num lies in [min, max], both ends included.
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

// IsIntNegative checks if the given number is lower than zero.
func IsIntNegative(number int) bool {
	return number < 0
}
