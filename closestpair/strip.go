package closestpair

// buildStrip returns, in y-order, the points of byY whose horizontal
// distance from the split line x = splitX is strictly less than delta.
func buildStrip(byY []Point, splitX int, delta float64) []Point {
	strip := make([]Point, 0, len(byY))
	for _, p := range byY {
		if absDiff(p.X, splitX) < delta {
			strip = append(strip, p)
		}
	}
	return strip
}

// stripClosest scans a y-ordered strip for a pair closer than best.
//
// strip[i] is compared with strip[j], j > i, only while
// strip[j].Y − strip[i].Y < best.Distance; the bound tightens as closer
// pairs are found. Packing bounds the inner loop to a constant number of
// steps, so the scan is linear in len(strip).
//
// Returns best unchanged when no closer pair exists.
func stripClosest(strip []Point, best Pair) Pair {
	var i, j int
	for i = 0; i < len(strip); i++ {
		for j = i + 1; j < len(strip) && absDiff(strip[j].Y, strip[i].Y) < best.Distance; j++ {
			d := Distance(strip[i], strip[j])
			if d < best.Distance {
				best = Pair{P: strip[i], Q: strip[j], Distance: d}
			}
		}
	}
	return best
}
