package closestpair_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closestpair/closestpair"
	"github.com/katalvlaran/closestpair/pointgen"
)

const (
	// epsTiny bounds the disagreement of two independently computed distances.
	epsTiny = 1e-9

	// seedDet is the base seed for randomized tests (0 => pointgen default).
	seedDet = int64(0)
)

// pts builds a point slice from flat (x, y) pairs.
func pts(xy ...int) []closestpair.Point {
	out := make([]closestpair.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, closestpair.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// uniform generates n points in [lo,hi]² with the given seed, failing t on error.
func uniform(t testing.TB, n, lo, hi int, seed int64) []closestpair.Point {
	t.Helper()
	out, err := pointgen.Uniform(n, pointgen.WithSeed(seed), pointgen.WithRange(lo, hi))
	require.NoError(t, err)
	return out
}

// requireSameDistance asserts both algorithms agree on points and returns the distance.
func requireSameDistance(t *testing.T, points []closestpair.Point) float64 {
	t.Helper()
	bf, err := closestpair.BruteForce(points)
	require.NoError(t, err)
	dc, err := closestpair.DivideAndConquer(points)
	require.NoError(t, err)
	require.InDelta(t, bf, dc, epsTiny*math.Max(1, bf), "brute=%v dc=%v n=%d", bf, dc, len(points))
	return dc
}
