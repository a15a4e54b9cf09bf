// Package nsga2 - RNG utilities for the evolutionary loop.
//
// This file centralizes deterministic random generation for sampling,
// selection, crossover and mutation.
//
// Goals:
//   - Determinism: same seed ⇒ identical offspring sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The loop draws from one stream on
//     a single goroutine; parallel evaluation never draws from it.
package nsga2

import (
	"math/rand"

	"github.com/katalvlaran/moea/core"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleWithin fills dst with one uniform draw per dimension inside bounds.
// Degenerate intervals (Lower == Upper) collapse to the single feasible value.
//
// Complexity: O(n).
func sampleWithin(dst []float64, bounds []core.Bounds, rng *rand.Rand) {
	var i int
	for i = 0; i < len(bounds); i++ {
		dst[i] = bounds[i].Lower + rng.Float64()*bounds[i].Span()
	}
}
