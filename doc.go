// Package closestpair is a small, dependency-light toolkit for the planar
// closest-pair problem — from the distance primitive to an O(n log n)
// divide-and-conquer search and a benchmarking CLI.
//
// 🚀 What is inside?
//
//	• closestpair/ — Point, Distance, BruteForce (O(n²)) and
//	                 DivideAndConquer (O(n log n)), plus pair-reporting
//	                 and parallel variants
//	• pointgen/    — deterministic, seeded point-set generators and the
//	                 shuffle/translate transforms used by property tests
//	• cmd/closestpair — CLI that generates or loads points, runs both
//	                 algorithms and logs distance and elapsed time
//
// ✨ Guarantees:
//
//   - Inputs are never mutated; every call works on private copies
//   - Overflow-free distances over the whole int range
//   - Fewer than two points is an explicit ErrTooFewPoints, never a panic
//
// Quick ASCII example:
//
//	(0,2)
//	  │  (1,1)        (5,5)
//	(0,0)
//
//	closest pair: (0,0)–(1,1), distance √2.
//
//	go get github.com/katalvlaran/closestpair
package closestpair
