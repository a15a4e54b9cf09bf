// Package surrogate - candidate generation and RNG utilities.
//
// This file centralizes deterministic random generation for the training
// pipeline.
//
// Goals:
//   - Determinism: same seed ⇒ identical candidate sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
package surrogate

import (
	"math/rand"

	"github.com/katalvlaran/moea/core"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
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

// uniformCandidates draws m candidate vectors with every coordinate
// independent uniform inside its bounds.
//
// Complexity: O(m·n) time and space.
func uniformCandidates(m int, bounds []core.Bounds, rng *rand.Rand) [][]float64 {
	out := make([][]float64, m)

	var k, j int
	for k = 0; k < m; k++ {
		out[k] = make([]float64, len(bounds))
		for j = 0; j < len(bounds); j++ {
			out[k][j] = bounds[j].Lower + rng.Float64()*bounds[j].Span()
		}
	}

	return out
}

// latinHypercube draws m candidate vectors by stratified sampling: each
// dimension is split into m equal-width strata, the strata order is permuted
// independently per dimension, and each point is jittered uniformly within
// its stratum before scaling to the bounds. Every stratum of every dimension
// receives exactly one point.
//
// Complexity: O(m·n) time and space.
func latinHypercube(m int, bounds []core.Bounds, rng *rand.Rand) [][]float64 {
	out := make([][]float64, m)

	var k int
	for k = 0; k < m; k++ {
		out[k] = make([]float64, len(bounds))
	}

	var j int
	for j = 0; j < len(bounds); j++ {
		perm := rng.Perm(m)
		for k = 0; k < m; k++ {
			// Unit-interval position inside stratum perm[k], then scale.
			u := (float64(perm[k]) + rng.Float64()) / float64(m)
			out[k][j] = bounds[j].Lower + u*bounds[j].Span()
		}
	}

	return out
}

// candidates dispatches on the sampling method. The method is validated
// upfront by validateOptions; an unknown value here yields nil.
//
// Complexity: O(m·n).
func candidates(method Sampling, m int, bounds []core.Bounds, rng *rand.Rand) [][]float64 {
	switch method {
	case LatinHypercube:
		return latinHypercube(m, bounds, rng)
	case Uniform:
		return uniformCandidates(m, bounds, rng)
	default:
		return nil
	}
}
