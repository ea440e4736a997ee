package closestpair

import "math"

// DistanceSquared returns (p.X−q.X)² + (p.Y−q.Y)² as float64.
//
// Coordinate differences are taken in uint64, so they are exact for any
// pair of int coordinates, and are squared in float64, so the sum cannot
// overflow. The result is exact while it stays below 2⁵³.
func DistanceSquared(p, q Point) float64 {
	dx := absDiff(p.X, q.X)
	dy := absDiff(p.Y, q.Y)
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
// Pure and total; see DistanceSquared for the overflow contract.
func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceSquared(p, q))
}

// absDiff returns |a−b| as float64. The subtraction wraps modulo 2⁶⁴,
// which yields the exact magnitude once the operands are ordered.
func absDiff(a, b int) float64 {
	if a >= b {
		return float64(uint64(a) - uint64(b))
	}
	return float64(uint64(b) - uint64(a))
}
