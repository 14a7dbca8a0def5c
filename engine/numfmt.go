package engine

import (
	"math"
	"strconv"
)

// formatNumber renders v the way spec.md §9 calls for: "a short general
// format equivalent to shortest representation that round-trips", with
// integral values rendered without a fractional part. Go's strconv
// 'g'/-1 verb already produces the shortest round-tripping decimal, so
// no grow-and-retry buffer dance (as the original's snprintf-based
// ldouble_to_string needed) is required here.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// nan is the literal spec.md §4.6 requires sum/avg to store when any
// operand in the region is non-numeric.
const nan = "NaN"

// parseNumericRaw parses s as a number with no quote unwrapping, per
// spec.md §4.6 (sum/avg) and §4.8 (inc): unlike min/max's
// parseNumericCell, a quoted cell such as `"5"` is not numeric here.
func parseNumericRaw(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
