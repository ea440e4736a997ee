// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// pointgen.go — point-set generators and transforms.

package pointgen

import (
	"github.com/katalvlaran/closestpair/closestpair"
)

// Uniform returns n points whose X and Y are drawn independently and
// uniformly from the inclusive range (default [DefaultMin, DefaultMax]).
// n == 0 yields an empty, non-nil slice.
//
// Errors:
//   - ErrBadCount — n < 0.
//   - ErrBadRange — min > max.
//
// Complexity: O(n) time, O(n) space.
func Uniform(n int, opts ...Option) ([]closestpair.Point, error) {
	if n < 0 {
		return nil, wrapf("Uniform", "n=%d", ErrBadCount, n)
	}
	c := newConfig(opts...)
	if c.min > c.max {
		return nil, wrapf("Uniform", "min=%d,max=%d", ErrBadRange, c.min, c.max)
	}

	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{
			X: intInRange(c.rng, c.min, c.max),
			Y: intInRange(c.rng, c.min, c.max),
		}
	}
	return pts, nil
}

// Shuffle returns a permuted copy of pts (Fisher–Yates). The input is left
// untouched. Only the RNG options are consulted.
//
// Complexity: O(n) time, O(n) space.
func Shuffle(pts []closestpair.Point, opts ...Option) []closestpair.Point {
	c := newConfig(opts...)
	out := make([]closestpair.Point, len(pts))
	copy(out, pts)

	var i, j int
	for i = len(out) - 1; i > 0; i-- {
		j = c.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Translate returns a copy of pts with every point moved by (dx, dy).
func Translate(pts []closestpair.Point, dx, dy int) []closestpair.Point {
	out := make([]closestpair.Point, len(pts))
	for i, p := range pts {
		out[i] = closestpair.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}
