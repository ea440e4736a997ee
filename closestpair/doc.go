// Package closestpair finds the two nearest points of a planar point set.
//
// 🚀 What is the closest-pair problem?
//
//	Given n points in the plane, find the pair (p, q), p ≠ q, that
//	minimizes the Euclidean distance |pq|. It shows up in:
//	  • Collision detection & proximity alerts
//	  • Clustering seeds & duplicate detection
//	  • Computational geometry pipelines (as a sub-step)
//
// ✨ Key features:
//   - BruteForce: every unordered pair once, O(n²) time, O(1) extra memory
//   - DivideAndConquer: split by x, recurse, merge via the y-ordered strip,
//     O(n log n) time
//   - Closest / ClosestBrute: same algorithms, but also report the pair
//   - optional parallel left/right recursion (Options.Parallel)
//   - overflow-free distance on the full int range (int64 widening)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/closestpair/closestpair"
//
//	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 9, Y: 9}}
//
//	d, err := closestpair.DivideAndConquer(pts)
//	if errors.Is(err, closestpair.ErrTooFewPoints) {
//	  // need at least two points
//	}
//
//	pair, _ := closestpair.Closest(pts) // pair.P, pair.Q, pair.Distance
//
// Guarantees:
//   - The caller's slice is never mutated; every recursive call owns its
//     own x-ordered and y-ordered copies.
//   - DivideAndConquer(points) == BruteForce(points) up to floating-point
//     rounding of the final sqrt.
//   - Duplicate points yield exactly 0.
//
// Performance:
//
//   - BruteForce:       Time O(n²),      Memory O(1)
//   - DivideAndConquer: Time O(n log n), Memory O(n) live, O(n log n) allocated
package closestpair
