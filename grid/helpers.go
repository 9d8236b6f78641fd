package grid

import "math"

// roundAway rounds half away from zero, staying in float64 — tier 2 feeds
// rounded transform outputs to the predicate without risking an undefined
// float→int conversion on huge magnitudes.
func roundAway(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Round(v)
}

// roundI64 rounds and clamps to the int64 range.
func roundI64(v float64) int64 {
	r := roundAway(v)
	if r >= math.MaxInt64 {
		return math.MaxInt64
	}
	if r <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(r)
}

// gcdInt is the non-negative gcd of two int64 values.
func gcdInt(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
