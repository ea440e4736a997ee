package closestpair

// BruteForce returns the minimum Euclidean distance over all unordered
// pairs of points.
//
// Algorithm:
//
//	for i in 0..n-1, for j in i+1..n-1: keep the smallest Distance(p[i], p[j])
//
// Every pair is visited exactly once; self-pairs are never compared.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(1) beyond the input
//
// Errors:
//   - ErrTooFewPoints — len(points) < 2.
func BruteForce(points []Point) (float64, error) {
	pair, err := ClosestBrute(points)
	if err != nil {
		return 0, err
	}
	return pair.Distance, nil
}

// ClosestBrute is BruteForce returning the closest Pair itself.
// On ties the first pair in (i, j) lexicographic order wins.
func ClosestBrute(points []Point) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, fmtTooFew("ClosestBrute", len(points))
	}
	return bruteForce(points), nil
}

// bruteForce assumes len(points) ≥ 2.
func bruteForce(points []Point) Pair {
	best := noPair
	var i, j int
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			d := Distance(points[i], points[j])
			if d < best.Distance {
				best = Pair{P: points[i], Q: points[j], Distance: d}
			}
		}
	}
	return best
}
