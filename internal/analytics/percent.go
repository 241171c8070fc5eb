package analytics

import "math"

// Percent returns correct/(correct+wrong)*100, or 0 for an empty tally.
// Not rounded here; presentation may round.
func Percent(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// RoundTo5 rounds to the nearest multiple of 5 with arithmetic half-up
// (away from zero), the platform's score-reporting rule. 87 -> 85, 88 -> 90.
func RoundTo5(v float64) int {
	return int(math.Round(v/5) * 5)
}
