package closestpair_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/closestpair/closestpair"
)

// TestDistance_Pythagorean checks the 3-4-5 triangle and symmetry.
func TestDistance_Pythagorean(t *testing.T) {
	p := closestpair.Point{X: 0, Y: 0}
	q := closestpair.Point{X: 3, Y: 4}

	assert.Equal(t, 5.0, closestpair.Distance(p, q))
	assert.Equal(t, closestpair.Distance(p, q), closestpair.Distance(q, p), "distance must be symmetric")
	assert.Equal(t, 25.0, closestpair.DistanceSquared(p, q))
	assert.Equal(t, 0.0, closestpair.Distance(q, q), "self distance must be zero")
}

// TestDistance_MatchesR2 cross-checks against github.com/golang/geo/r2 on small coordinates.
func TestDistance_MatchesR2(t *testing.T) {
	points := uniform(t, 64, -5000, 5000, seedDet)
	for i := 1; i < len(points); i++ {
		p, q := points[i-1], points[i]
		want := p.R2().Sub(q.R2()).Norm()
		assert.InDelta(t, want, closestpair.Distance(p, q), epsTiny*math.Max(1, want))
	}
}

// TestDistance_NoOverflow uses coordinates whose differences overflow int.
func TestDistance_NoOverflow(t *testing.T) {
	lo := closestpair.Point{X: math.MinInt, Y: 0}
	hi := closestpair.Point{X: math.MaxInt, Y: 0}

	want := 2 * float64(math.MaxInt)
	got := closestpair.Distance(lo, hi)
	assert.InEpsilon(t, want, got, 1e-15, "span of the whole int range")

	diag := closestpair.Distance(
		closestpair.Point{X: math.MinInt, Y: math.MinInt},
		closestpair.Point{X: math.MaxInt, Y: math.MaxInt},
	)
	assert.False(t, math.IsInf(diag, 0) || math.IsNaN(diag), "diagonal must stay finite")
	assert.InEpsilon(t, want*math.Sqrt2, diag, 1e-15)
}
