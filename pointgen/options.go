// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// options.go — functional options for the pointgen package.
//
// Contract:
//   • Option constructors PANIC on nil arguments (programmer error).
//     Generators themselves never panic.
//   • Range validity is checked by the generator, so a bad range surfaces
//     as ErrBadRange rather than a panic.

package pointgen

import "math/rand"

// Default sampling square, matching the classic [0,1000]×[0,1000] benchmark.
const (
	DefaultMin = 0
	DefaultMax = 1000
)

// Option customizes a generator call by mutating a config before sampling.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	min, max int
	rng      *rand.Rand
}

// newConfig applies opts on top of the defaults: [DefaultMin, DefaultMax]
// and the seed-0 RNG stream.
func newConfig(opts ...Option) config {
	c := config{min: DefaultMin, max: DefaultMax}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}
	return c
}

// WithRange sets the inclusive coordinate range [lo, hi] for both axes.
func WithRange(lo, hi int) Option {
	return func(c *config) {
		c.min, c.max = lo, hi
	}
}

// WithSeed creates a new deterministic *rand.Rand. Seed 0 uses
// defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
