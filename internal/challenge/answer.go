package challenge

import (
	"strconv"
	"strings"
)

// tolerance for numeric comparison. Answers typed by a player go through
// string parsing, so exact float equality would be too strict.
const tolerance = 1e-9

// Match grades a submitted answer against the stored correct answer.
// The comparison policy depends on the correct answer's type:
//
//   - bool: exact equality
//   - int/float64: numeric comparison with a small tolerance; numeric
//     strings are coerced
//   - string: case-insensitive, whitespace-trimmed equality
//   - []int: order-sensitive element equality
//
// Match is total: anything it cannot classify compares as false.
// It never panics, because a grading failure has no recovery path
// in the engine.
func Match(correct, got Answer) bool {
	switch want := correct.(type) {
	case bool:
		b, ok := got.(bool)
		return ok && b == want
	case int:
		return matchNumeric(float64(want), got)
	case int64:
		return matchNumeric(float64(want), got)
	case float64:
		return matchNumeric(want, got)
	case string:
		s, ok := got.(string)
		return ok && strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(want))
	case []int:
		gs, ok := got.([]int)
		if !ok || len(gs) != len(want) {
			return false
		}
		for i := range want {
			if gs[i] != want[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// matchNumeric compares a numeric correct answer against whatever the
// player submitted, coercing numeric strings.
func matchNumeric(want float64, got Answer) bool {
	switch v := got.(type) {
	case int:
		return abs(float64(v)-want) <= tolerance
	case int64:
		return abs(float64(v)-want) <= tolerance
	case float64:
		return abs(v-want) <= tolerance
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return false
		}
		return abs(f-want) <= tolerance
	default:
		return false
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
