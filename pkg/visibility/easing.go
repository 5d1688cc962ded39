package visibility

import (
	"math"
	"strconv"
)

// EaseOutCubic maps an elapsed fraction to animation progress using the
// curve 1 - (1-p)^3. Input is clamped to [0,1], so the curve is monotone and
// lands exactly on 1.
func EaseOutCubic(p float64) float64 {
	p = clamp01(p)
	inv := 1 - p
	return 1 - inv*inv*inv
}

// CounterValue returns the integer a counter displays at elapsed fraction p:
// round(target * easeOutCubic(p)).
func CounterValue(target int, p float64) int {
	return int(math.Round(float64(target) * EaseOutCubic(p)))
}

// FormatCount renders the displayed counter text, appending the suffix
// verbatim.
func FormatCount(target int, p float64, suffix string) string {
	return strconv.Itoa(CounterValue(target, p)) + suffix
}

func clamp01(p float64) float64 {
	switch {
	case p < 0 || math.IsNaN(p):
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
