package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Text that would not survive the round trip ("007", "2.10", "1e3", "NaN") stays a string.
func ParseValue(s string) interface{} {
	if s == "" || strings.HasPrefix(s, "+") || hasLeadingZero(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) &&
		strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	return s
}

func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
