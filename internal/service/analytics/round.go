package analytics

import "math"

// roundHalfUp rounds half-way values toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// round10 rounds to one decimal place, half-up.
func round10(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
