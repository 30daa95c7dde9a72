// Package chain computes the minimum scalar-multiplication cost of a
// matrix chain product (the classic Matrix Chain Multiplication problem).
//
// 🚀 What is Matrix Chain Multiplication?
//
//	Multiplying A·B·C·D gives the same result for every parenthesization,
//	but the number of scalar multiplications depends heavily on the order.
//	Given the boundary dimensions p = [p0, p1, …, pn-1], matrix Mi has shape
//	p[i-1]×p[i] and multiplying a×b by b×c costs a·b·c. MinCost finds the
//	cheapest order's total cost.
//
// ✨ Key features:
//   - exact bottom-up interval DP, O(n³) time & O(n²) memory
//   - int64 costs with saturating arithmetic; overflow is reported, never wrapped
//   - optional diagonal-parallel fill (WithWorkers), identical results
//   - single sentinel ErrInvalidInput for every rejected input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chainmul/chain"
//
//	cost, err := chain.MinCost([]int{10, 20, 30, 40})
//	if errors.Is(err, chain.ErrInvalidInput) {
//	  // n < 2, non-positive dimension, or int64 overflow
//	}
//
//	// large chains: fill each diagonal with 8 goroutines
//	cost, err = chain.MinCost(p, chain.WithWorkers(8))
//
// Only the cost is reported; the optimal parenthesization itself is not
// reconstructed.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²)
package chain
