package pointgen_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closestpair/closestpair"
	"github.com/katalvlaran/closestpair/pointgen"
)

// TestUniform_DefaultRange checks count and the default [0,1000] bounds.
func TestUniform_DefaultRange(t *testing.T) {
	pts, err := pointgen.Uniform(1000)
	require.NoError(t, err)
	require.Len(t, pts, 1000)

	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, pointgen.DefaultMin)
		assert.LessOrEqual(t, p.X, pointgen.DefaultMax)
		assert.GreaterOrEqual(t, p.Y, pointgen.DefaultMin)
		assert.LessOrEqual(t, p.Y, pointgen.DefaultMax)
	}
}

// TestUniform_SeedDeterminism: same seed ⇒ same points; seed 0 is stable too.
func TestUniform_SeedDeterminism(t *testing.T) {
	a, err := pointgen.Uniform(50, pointgen.WithSeed(99))
	require.NoError(t, err)
	b, err := pointgen.Uniform(50, pointgen.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	z1, err := pointgen.Uniform(50)
	require.NoError(t, err)
	z2, err := pointgen.Uniform(50, pointgen.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, z1, z2, "seed 0 is the default stream")

	c, err := pointgen.Uniform(50, pointgen.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestUniform_Errors covers negative counts and inverted ranges.
func TestUniform_Errors(t *testing.T) {
	_, err := pointgen.Uniform(-1)
	assert.ErrorIs(t, err, pointgen.ErrBadCount)

	_, err = pointgen.Uniform(3, pointgen.WithRange(5, 4))
	assert.ErrorIs(t, err, pointgen.ErrBadRange)

	pts, err := pointgen.Uniform(0)
	require.NoError(t, err)
	assert.NotNil(t, pts)
	assert.Empty(t, pts)
}

// TestUniform_DegenerateAndWideRanges covers a single-value range and the full int range.
func TestUniform_DegenerateAndWideRanges(t *testing.T) {
	pts, err := pointgen.Uniform(10, pointgen.WithRange(-7, -7))
	require.NoError(t, err)
	for _, p := range pts {
		assert.Equal(t, closestpair.Point{X: -7, Y: -7}, p)
	}

	wide, err := pointgen.Uniform(100, pointgen.WithRange(minInt, maxInt), pointgen.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, wide, 100)
}

// TestWithRand_UsesProvidedSource and panics on nil.
func TestWithRand_UsesProvidedSource(t *testing.T) {
	a, err := pointgen.Uniform(20, pointgen.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	b, err := pointgen.Uniform(20, pointgen.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Panics(t, func() { pointgen.WithRand(nil) })
}

// TestShuffle_PermutesCopy keeps the multiset and leaves the input alone.
func TestShuffle_PermutesCopy(t *testing.T) {
	in, err := pointgen.Uniform(100, pointgen.WithSeed(1))
	require.NoError(t, err)
	before := slices.Clone(in)

	out := pointgen.Shuffle(in, pointgen.WithSeed(2))
	assert.Equal(t, before, in)
	assert.ElementsMatch(t, in, out)
	assert.NotEqual(t, in, out)

	assert.Empty(t, pointgen.Shuffle(nil))
}

// TestTranslate moves every point by the offset.
func TestTranslate(t *testing.T) {
	in := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: -4}}
	out := pointgen.Translate(in, 10, 20)
	assert.Equal(t, []closestpair.Point{{X: 10, Y: 20}, {X: 13, Y: 16}}, out)
	assert.Equal(t, closestpair.Point{X: 0, Y: 0}, in[0])
}

// TestDeriveSeed gives distinct, reproducible seeds per stream.
func TestDeriveSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for s := uint64(0); s < 64; s++ {
		v := pointgen.DeriveSeed(1, s)
		assert.Equal(t, v, pointgen.DeriveSeed(1, s))
		assert.False(t, seen[v], "stream %d collides", s)
		seen[v] = true
	}
}
