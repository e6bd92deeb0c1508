package session

import "math"

// Result is the tally of one finished session.
type Result struct {
	Correct   int
	Incorrect int
}

// Total returns the number of questions answered.
func (r Result) Total() int {
	return r.Correct + r.Incorrect
}

// Percentage returns the share of correct answers in [0, 100].
func (r Result) Percentage() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total()) * 100
}

// TierIndex maps a percentage onto n equal-width bins over [0, 100] and
// returns the bin index, 0 being the weakest. A bin includes its upper
// bound, so 0 has to be special-cased into the first bin.
func TierIndex(pct float64, n int) int {
	if n <= 0 {
		return -1
	}
	if pct <= 0 {
		return 0
	}
	width := 100 / float64(n)
	idx := int(math.Ceil(pct/width)) - 1
	return max(0, min(idx, n-1))
}

// Tier returns the label of the bin containing pct. tiers are ordered
// weakest to strongest.
func Tier(pct float64, tiers []string) string {
	idx := TierIndex(pct, len(tiers))
	if idx < 0 {
		return ""
	}
	return tiers[idx]
}
