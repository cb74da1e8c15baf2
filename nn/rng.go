// SPDX-License-Identifier: MIT
// Package nn - RNG utilities for weight initialization.
//
// Goals:
//   - Determinism on request: same seed ⇒ identical initial weights.
//   - One explicit factory per policy; no package-level generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package nn

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// rngFromClock returns a generator seeded from the wall clock. It is the
// fallback of New when no WithSeed or WithRand option is given.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// normals draws n standard-normal values from rng in order.
// Complexity: O(n).
func normals(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}
