// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// Package pointgen produces deterministic point sets for the closest-pair
// algorithms: uniform random samples over an integer square, plus the
// permutation and translation helpers used by property tests and the CLI.
//
// Determinism is explicit: every stochastic call draws from a *rand.Rand
// resolved through WithSeed or WithRand. Seed 0 maps to a fixed default
// seed, so the zero configuration is reproducible too.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one RNG across
//     concurrent Uniform/Shuffle calls.
package pointgen
