package chain_test

import (
	"math/rand/v2"
)

// bruteForce enumerates every full parenthesization of M1..Mn-1 and
// returns the cheapest. Exponential; use for n ≤ 8 only.
func bruteForce(p []int) int64 {
	costs := enumerate(p, 1, len(p)-1)
	best := costs[0]
	for _, c := range costs[1:] {
		best = min(best, c)
	}

	return best
}

// enumerate returns the cost of every distinct parenthesization of Mi..Mj.
func enumerate(p []int, i, j int) []int64 {
	if i == j {
		return []int64{0}
	}
	var out []int64
	for k := i; k < j; k++ {
		join := int64(p[i-1]) * int64(p[k]) * int64(p[j])
		for _, left := range enumerate(p, i, k) {
			for _, right := range enumerate(p, k+1, j) {
				out = append(out, left+right+join)
			}
		}
	}

	return out
}

// randomDims returns n dimensions in [1, maxDim] from a seeded stream.
func randomDims(r *rand.Rand, n, maxDim int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = 1 + r.IntN(maxDim)
	}

	return p
}
