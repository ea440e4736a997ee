package closestpair

import (
	"cmp"
	"slices"
	"sync"
)

// DivideAndConquer returns the minimum Euclidean distance over all
// unordered pairs of points in O(n log n) time.
//
// Algorithm Outline:
//  1. Copy the input twice; sort one copy by X, the other by Y.
//  2. closestPair(byX, byY):
//     - size ≤ 3: brute force.
//     - mid = size/2, split = byX[mid]; byX[:mid] goes left, byX[mid:] right.
//     byY is partitioned into the same two multisets, keeping y-order.
//     - Recurse on both halves, δ = min(left, right).
//     - strip = points of byY with |x − split.X| < δ, in y-order.
//     - Scan the strip: compare strip[i] with strip[j>i] while
//     strip[j].Y − strip[i].Y < current best, tightening the bound.
//  3. Return the smaller of δ and the strip result.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) live views
//
// Errors:
//   - ErrTooFewPoints — len(points) < 2.
func DivideAndConquer(points []Point) (float64, error) {
	pair, err := Closest(points)
	if err != nil {
		return 0, err
	}
	return pair.Distance, nil
}

// Closest is DivideAndConquer returning the closest Pair itself,
// using DefaultOptions.
func Closest(points []Point) (Pair, error) {
	return ClosestWithOptions(points, DefaultOptions())
}

// ClosestWithOptions runs the divide-and-conquer search with opts.
// With opts.Parallel the two recursive halves of every subproblem of at
// least opts.ParallelCutoff points run on separate goroutines; the result
// is the same as the sequential run.
//
// Errors:
//   - ErrTooFewPoints — len(points) < 2.
//   - ErrBadOptions   — opts.ParallelCutoff < 0.
func ClosestWithOptions(points []Point, opts Options) (Pair, error) {
	opts, err := opts.validate()
	if err != nil {
		return Pair{}, err
	}
	if len(points) < 2 {
		return Pair{}, fmtTooFew("Closest", len(points))
	}

	byX := slices.Clone(points)
	slices.SortStableFunc(byX, compareXY)
	byY := slices.Clone(points)
	slices.SortStableFunc(byY, compareYX)

	s := solver{opts: opts}
	return s.closestPair(byX, byY), nil
}

// compareXY orders points by X, then Y.
func compareXY(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// compareYX orders points by Y, then X.
func compareYX(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// solver carries the resolved options through the recursion.
type solver struct {
	opts Options
}

// closestPair solves one subproblem. byX and byY hold the same multiset,
// sorted by compareXY and compareYX respectively, and are owned by this call.
func (s solver) closestPair(byX, byY []Point) Pair {
	n := len(byX)
	if n <= 3 {
		return bruteForce(byX)
	}

	mid := n / 2
	split := byX[mid]

	leftByX := slices.Clone(byX[:mid])
	rightByX := slices.Clone(byX[mid:])
	leftByY, rightByY := partitionByY(byY, leftByX, split)

	var left, right Pair
	if s.opts.Parallel && n >= s.opts.ParallelCutoff {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			left = s.closestPair(leftByX, leftByY)
		}()
		right = s.closestPair(rightByX, rightByY)
		wg.Wait()
	} else {
		left = s.closestPair(leftByX, leftByY)
		right = s.closestPair(rightByX, rightByY)
	}

	best := minPair(left, right)
	strip := buildStrip(byY, split.X, best.Distance)

	return minPair(best, stripClosest(strip, best))
}

// partitionByY splits byY into the multisets of leftByX and its complement,
// preserving y-order.
//
// Points with x < split.X go left and x > split.X go right. Points on the
// split line go left until the number of them already in leftByX is used
// up. Because byX orders equal-X points by Y, leftByX holds the split-line
// points of smallest Y, which are exactly the first ones met in y-order
// (points equal in both coordinates are interchangeable).
func partitionByY(byY, leftByX []Point, split Point) (leftByY, rightByY []Point) {
	onLine := 0
	for _, p := range leftByX {
		if p.X == split.X {
			onLine++
		}
	}

	leftByY = make([]Point, 0, len(leftByX))
	rightByY = make([]Point, 0, len(byY)-len(leftByX))
	for _, p := range byY {
		switch {
		case p.X < split.X:
			leftByY = append(leftByY, p)
		case p.X > split.X:
			rightByY = append(rightByY, p)
		case onLine > 0:
			leftByY = append(leftByY, p)
			onLine--
		default:
			rightByY = append(rightByY, p)
		}
	}
	return leftByY, rightByY
}
