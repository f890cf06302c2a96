package scorer

import (
	"strconv"
	"strings"
)

// ParseNumeric parses s as a float, returning def when the cell is empty or
// does not parse. Coercion is fail-open: malformed numeric input never
// aborts scoring of the record.
func ParseNumeric(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// ParseCount parses s as an integer count, returning def when the cell does
// not parse. Fractional values truncate toward zero, matching spreadsheet
// cells that render counts as floats.
func ParseCount(s string, def int) int {
	t := strings.TrimSpace(s)
	if v, err := strconv.Atoi(t); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return int(f)
	}
	return def
}
