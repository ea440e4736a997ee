// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// rng.go — deterministic random sources shared by the generators.

package pointgen

import "math/rand"

// defaultRNGSeed is the seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed with a
// SplitMix64 finalizer, so consecutive stream ids give unrelated seeds.
// Useful for per-trial seeds in repeated randomized runs.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// intInRange draws uniformly from [lo, hi]. Requires lo ≤ hi.
// Spans of 2⁶² or more use rejection sampling on full 64-bit draws.
func intInRange(r *rand.Rand, lo, hi int) int {
	span := uint64(hi) - uint64(lo)
	if span < 1<<62 {
		return lo + int(r.Int63n(int64(span)+1))
	}
	for {
		v := r.Uint64()
		if v <= span {
			return int(uint64(lo) + v)
		}
	}
}
