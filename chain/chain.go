package chain

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// MinCost — Matrix Chain Multiplication cost
//
// Description:
//
//	Given boundary dimensions p (matrix Mi is p[i-1]×p[i], i = 1..n-1),
//	MinCost returns the minimum number of scalar multiplications needed
//	to compute M1·M2·…·Mn-1 over all parenthesizations.
//
// Algorithm Outline (bottom-up interval DP):
//  1. Let n = len(p). Allocate n×n table dp; only 1 ≤ i ≤ j ≤ n-1 is used.
//  2. dp[i][i] = 0 for i = 1..n-1 (single matrix, nothing to multiply).
//  3. For chain length l = 2..n-1:
//     For i = 1..n-l, j = i+l-1:
//     dp[i][j] = min over k∈[i, j-1] of
//     dp[i][k] + dp[k+1][j] + p[i-1]·p[k]·p[j]
//  4. cost = dp[1][n-1].
//
// Every dp[i][j] reads only strictly shorter intervals, so finishing one
// diagonal (fixed l) before starting the next is sufficient. The parallel
// mode relies on exactly that.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²)
//
// Errors (all wrap ErrInvalidInput):
//   - len(p) < 2
//   - any p[i] ≤ 0
//   - the optimal cost does not fit into int64
//
// Example:
//
//	cost, err := MinCost([]int{10, 20, 30}) // 6000, nil
func MinCost(p []int, opts ...Option) (int64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)

	n := len(p)
	dp := make([][]uint64, n)
	for i := range dp {
		dp[i] = make([]uint64, n) // diagonal is already 0
	}

	if o.parallel(n - 1) {
		fillParallel(dp, p, o.Workers)
	} else {
		for l := 2; l < n; l++ {
			fillDiagonal(dp, p, l, 1, n-l+1)
		}
	}

	cost := dp[1][n-1]
	if cost > maxCost {
		return 0, fmt.Errorf("%w: cost exceeds int64 range", ErrInvalidInput)
	}

	return int64(cost), nil
}

// Validate checks that p describes at least one matrix and that every
// dimension is positive. It does not detect overflow; MinCost does.
func Validate(p []int) error {
	if len(p) < 2 {
		return fmt.Errorf("%w: need at least 2 dimensions, got %d", ErrInvalidInput, len(p))
	}
	for i, d := range p {
		if d <= 0 {
			return fmt.Errorf("%w: dimension p[%d]=%d must be positive", ErrInvalidInput, i, d)
		}
	}

	return nil
}

// Describe renders the chain implied by p, e.g. "M1(1x2) × M2(2x3)".
// It returns "" when p holds fewer than two dimensions.
func Describe(p []int) string {
	if len(p) < 2 {
		return ""
	}
	var sb strings.Builder
	for i := 1; i < len(p); i++ {
		if i > 1 {
			sb.WriteString(" × ")
		}
		fmt.Fprintf(&sb, "M%d(%dx%d)", i, p[i-1], p[i])
	}

	return sb.String()
}

// The table is kept in uint64 so that the overflow marker lies outside
// the int64 range: every finite cost is ≤ maxCost, and saturated behaves
// as +∞ in the min-recurrence, so an overflowing split never beats a
// finite one.
const (
	maxCost   = math.MaxInt64
	saturated = math.MaxUint64
)

// fillDiagonal computes dp[i][i+l-1] for start indices i in [from, to).
// All diagonals shorter than l must already be complete.
func fillDiagonal(dp [][]uint64, p []int, l, from, to int) {
	var (
		i, j, k   int
		best, cur uint64
		row       []uint64
	)
	for i = from; i < to; i++ {
		j = i + l - 1
		row = dp[i]
		best = saturated
		for k = i; k < j; k++ {
			cur = addSat(addSat(row[k], dp[k+1][j]), mulSat3(p[i-1], p[k], p[j]))
			if cur < best {
				best = cur
			}
		}
		row[j] = best
	}
}

// mulSat3 returns a·b·c for positive a, b, c, or saturated when the
// product exceeds maxCost.
func mulSat3(a, b, c int) uint64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > maxCost {
		return saturated
	}
	hi, lo = bits.Mul64(lo, uint64(c))
	if hi != 0 || lo > maxCost {
		return saturated
	}

	return lo
}

// addSat returns a+b, or saturated when the sum exceeds maxCost.
// Saturated operands stay saturated.
func addSat(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum > maxCost {
		return saturated
	}

	return sum
}
