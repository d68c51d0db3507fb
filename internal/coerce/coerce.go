// Package coerce implements the numeric coercion rules of a dynamically
// typed host language. It exists so arith/loose can reproduce the behavior
// a loosely typed square has before type annotations are added.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// Number converts v to a number the way dynamic arithmetic would:
// nil is 0, booleans are 0 or 1, numeric values pass through, strings are
// parsed (an empty or blank string is 0, an unparsable one is NaN), and
// anything else is NaN. It never fails.
func Number(v any) float64 {
	switch v := v.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return n
	default:
		return math.NaN()
	}
}
