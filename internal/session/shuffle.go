package session

import "math/rand/v2"

// Shuffle returns a uniformly permuted copy of items (Fisher-Yates: walk from
// the last index down to 1, swapping with a random index at or below it).
func Shuffle(rng *rand.Rand, items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
