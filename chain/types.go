package chain

import "errors"

// ErrInvalidInput is the single failure kind of this package. It covers
// dimension vectors shorter than two entries, non-positive dimensions, and
// costs that do not fit into int64. Detail is attached with %w wrapping;
// callers match it via errors.Is.
var ErrInvalidInput = errors.New("chain: invalid input")

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs the DP sequentially.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum number of matrices for which
	// the diagonal-parallel fill is used when Workers > 1. Below it the
	// goroutine overhead outweighs the O(n³) work.
	DefaultParallelThreshold = 64
)

const (
	panicWorkersInvalid   = "chain: WithWorkers: workers must be non-negative"
	panicThresholdInvalid = "chain: WithParallelThreshold: threshold must be non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); user data never causes a panic.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
//
// Fields:
//   - Workers           — goroutines per diagonal; ≤1 means sequential.
//   - ParallelThreshold — chains with fewer matrices always run sequentially.
type Options struct {
	Workers           int
	ParallelThreshold int
}

// DefaultOptions returns Options with Workers=DefaultWorkers and
// ParallelThreshold=DefaultParallelThreshold.
func DefaultOptions() Options {
	return Options{
		Workers:           DefaultWorkers,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// WithWorkers sets the number of goroutines used to fill one diagonal of
// the cost table. 0 and 1 both mean sequential.
//
// Panics if w < 0.
func WithWorkers(w int) Option {
	if w < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = w }
}

// WithParallelThreshold sets the minimum chain length (in matrices) at
// which the parallel fill kicks in. 0 forces parallel mode whenever
// Workers > 1.
//
// Panics if n < 0.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.ParallelThreshold = n }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// parallel reports whether a chain of m matrices should use the parallel fill.
func (o Options) parallel(m int) bool {
	return o.Workers > 1 && m >= o.ParallelThreshold
}
