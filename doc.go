// Package chainmul computes optimal matrix chain multiplication costs.
//
// 🚀 What is in chainmul?
//
//	A small, dependency-light module built around one algorithm:
//		• chain/    — minimum scalar-multiplication cost of M1·M2·…·Mk
//		              via bottom-up interval DP, with an optional
//		              diagonal-parallel fill
//		• cmd/mcm/  — batch driver: reads "n p0 … pn-1", prints the cost
//
// ✨ Guarantees:
//
//   - Exact optimum for every chain length; no shortcut groupings
//   - int64 costs; overflow is an error, never a wrapped number
//   - One sentinel, chain.ErrInvalidInput, for every rejected input
//   - Pure library code: no logging, no global state
//
// Quick example, four matrices 1×2, 2×3, 3×4, 4×3:
//
//	((M1·M2)·M3)·M4  →  6 + 12 + 12 = 30 scalar multiplications
//
//	go install github.com/katalvlaran/chainmul/cmd/mcm@latest
//	echo "5 1 2 3 4 3" | mcm
package chainmul
