package ordinal

import (
	"fmt"
	"strconv"
)

// Append returns the decimal form of n followed by its ordinal suffix.
func Append(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeInteger, n)
	}
	return strconv.Itoa(n) + Suffix(n), nil
}

// Suffix returns "st", "nd", "rd" or "th" for n.
// The sign of n is ignored.
func Suffix(n int) string {
	if n < 0 {
		n = -n
	}

	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
