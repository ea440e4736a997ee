package closestpair

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Point is an integer point of the plane. Two Points with equal
// coordinates are still distinct elements of a point set.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// R2 converts p to a float64 r2.Point for use with github.com/golang/geo.
func (p Point) R2() r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Pair is a closest pair together with its Euclidean distance.
// P and Q are copies of input elements; their order carries no meaning.
type Pair struct {
	P, Q     Point
	Distance float64
}

// noPair is the identity element for "keep the smaller Pair".
var noPair = Pair{Distance: math.Inf(1)}

// less reports whether a is strictly closer than b.
func (a Pair) less(b Pair) bool { return a.Distance < b.Distance }

// minPair returns the closer of a and b, preferring a on ties.
func minPair(a, b Pair) Pair {
	if b.less(a) {
		return b
	}
	return a
}

// DefaultParallelCutoff is the subproblem size below which the parallel
// recursion falls back to sequential calls.
const DefaultParallelCutoff = 2048

// Options configures Closest/ClosestWithOptions.
//
// Fields:
//   - Parallel       — run the left and right recursive halves concurrently.
//   - ParallelCutoff — subproblems smaller than this run sequentially.
//     0 means DefaultParallelCutoff; negative values are rejected.
//
// Parallel execution never changes the result, only the wall-clock time.
type Options struct {
	Parallel       bool
	ParallelCutoff int
}

// DefaultOptions returns the sequential configuration.
func DefaultOptions() Options {
	return Options{
		Parallel:       false,
		ParallelCutoff: DefaultParallelCutoff,
	}
}

// validate checks option domains and resolves defaults.
func (o Options) validate() (Options, error) {
	if o.ParallelCutoff < 0 {
		return o, fmt.Errorf("ParallelCutoff=%d: %w", o.ParallelCutoff, ErrBadOptions)
	}
	if o.ParallelCutoff == 0 {
		o.ParallelCutoff = DefaultParallelCutoff
	}
	return o, nil
}
