package chain

import "golang.org/x/sync/errgroup"

// fillParallel fills the cost table diagonal by diagonal. Within one
// diagonal the start indices are split into contiguous blocks that are
// computed concurrently; entries of the same diagonal never read each
// other, so the blocks share dp without locking. g.Wait is the barrier
// between diagonals.
//
// Complexity: O(n³) work, O(n) barriers.
func fillParallel(dp [][]uint64, p []int, workers int) {
	n := len(p)
	for l := 2; l < n; l++ {
		count := n - l // number of start indices on this diagonal
		size := (count + workers - 1) / workers
		if size < 1 {
			size = 1
		}

		var g errgroup.Group
		g.SetLimit(workers)
		for from := 1; from <= count; from += size {
			to := min(from+size, count+1)
			g.Go(func() error {
				fillDiagonal(dp, p, l, from, to)

				return nil
			})
		}
		_ = g.Wait() // blocks never fail
	}
}
