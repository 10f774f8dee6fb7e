// Package trial - RNG utilities shared by the sampling stages.
//
// This file centralizes deterministic random generation for the pipeline.
//
// Goals:
//   - Determinism: same seed ⇒ identical stimulus tables across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: the per-row wrap-up-noun stream and the per-group
//     wrap-up-format stream must not correlate; DeriveSeed exists so the
//     format assignment can mix its own stream ids instead of reusing the
//     row-offset formula.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, and the usage counters in
//     AssignWrapups are read-and-incremented strictly in row order.
//     Parallelizing the sampling stages would break the balance guarantee
//     and is disallowed.
package trial

import "math/rand"

// RowRNG returns the deterministic RNG for row i: a fresh generator
// seeded with seed+i. The offset keeps consecutive rows decorrelated
// while preserving exact reproducibility of each row's draw.
//
// Complexity: O(1).
func RowRNG(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(i)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style finalizer (Vigna 2014 constants),
// giving strong bit diffusion so nearby stream ids produce uncorrelated
// substreams.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
