// Package nsga2 - genetic operators.
//
// Pure, stateless-given-RNG implementations of the three NSGA-II operators:
//
//   - binary tournament selection via the rank/crowding comparator,
//   - SBX (simulated binary crossover) parameterized by a distribution
//     index η_c,
//   - polynomial mutation parameterized by η_m and a per-variable probability.
//
// The numeric kernels (sbxChildren, mutateValue) are split from their RNG
// wrappers so that boundary behavior is testable with a pinned u-draw.
//
// Invariants:
//   - Every produced variable value is clamped into its [Lower, Upper] pair.
//   - The per-variable 0.5 coin flip in SBX (roughly half of all variables
//     untouched even when crossover fires) is standard SBX behavior and is
//     preserved exactly.
package nsga2

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/moea/core"
)

// sbxEqualTol is the near-equality guard: parents closer than this per
// variable are copied unchanged to avoid a degenerate spread factor.
const sbxEqualTol = 1e-14

// tournament draws two individuals uniformly at random (with replacement)
// and returns the index favored by the rank/crowding comparator. On an exact
// tie the first draw wins.
//
// Complexity: O(1).
func tournament(pop core.Population, rng *rand.Rand) int {
	var (
		i = rng.Intn(len(pop))
		j = rng.Intn(len(pop))
	)
	if core.Better(&pop[j], &pop[i]) {
		return j
	}

	return i
}

// sbxChildren is the per-variable SBX kernel with a pinned u ∈ [0, 1):
// order the parents y1 ≤ y2, compute the spread factor
//
//	βq = (2u)^(1/(η+1))          when u ≤ 0.5
//	βq = (1/(2(1−u)))^(1/(η+1))  otherwise
//
// and return the children 0.5((y1+y2) ∓ βq(y2−y1)), both clamped into b.
//
// Complexity: O(1).
func sbxChildren(p1, p2 float64, b core.Bounds, eta, u float64) (float64, float64) {
	var (
		y1 = math.Min(p1, p2)
		y2 = math.Max(p1, p2)
	)

	var betaq float64
	if u <= 0.5 {
		betaq = math.Pow(2*u, 1/(eta+1))
	} else {
		betaq = math.Pow(1/(2*(1-u)), 1/(eta+1))
	}

	var (
		c1 = 0.5 * ((y1 + y2) - betaq*(y2-y1))
		c2 = 0.5 * ((y1 + y2) + betaq*(y2-y1))
	)

	return b.Clamp(c1), b.Clamp(c2)
}

// crossover applies SBX variable-by-variable to two parent vectors,
// writing two fresh child vectors. Per variable: with probability 0.5 skip
// (copy parents unchanged); skip as well when the parents differ by less
// than sbxEqualTol; otherwise run the sbxChildren kernel.
//
// Complexity: O(n).
func crossover(p1, p2 []float64, bounds []core.Bounds, eta float64, rng *rand.Rand) ([]float64, []float64) {
	var (
		n  = len(p1)
		c1 = make([]float64, n)
		c2 = make([]float64, n)
		i  int
	)
	for i = 0; i < n; i++ {
		c1[i] = p1[i]
		c2[i] = p2[i]

		// Per-variable coin flip: half of the variables stay untouched.
		if rng.Float64() > 0.5 {
			continue
		}
		if math.Abs(p1[i]-p2[i]) < sbxEqualTol {
			continue
		}

		c1[i], c2[i] = sbxChildren(p1[i], p2[i], bounds[i], eta, rng.Float64())
	}

	return c1, c2
}

// mutateValue is the per-variable polynomial-mutation kernel with a pinned
// u ∈ [0, 1): with δ1 = (y−lb)/(ub−lb) and δ2 = (ub−y)/(ub−lb),
//
//	δq = (2u + (1−2u)(1−δ1)^(η+1))^(1/(η+1)) − 1          when u ≤ 0.5
//	δq = 1 − (2(1−u) + 2(u−0.5)(1−δ2)^(η+1))^(1/(η+1))    otherwise
//
// and the new value is y + δq·(ub−lb), clamped into b.
//
// Complexity: O(1).
func mutateValue(y float64, b core.Bounds, eta, u float64) float64 {
	var span = b.Span()
	if span == 0 {
		// Degenerate interval: the single feasible value cannot move.
		return y
	}

	var (
		d1 = (y - b.Lower) / span
		d2 = (b.Upper - y) / span
		dq float64
	)
	if u <= 0.5 {
		dq = math.Pow(2*u+(1-2*u)*math.Pow(1-d1, eta+1), 1/(eta+1)) - 1
	} else {
		dq = 1 - math.Pow(2*(1-u)+2*(u-0.5)*math.Pow(1-d2, eta+1), 1/(eta+1))
	}

	return b.Clamp(y + dq*span)
}

// mutate applies polynomial mutation in place: each variable mutates
// independently with probability prob (the normalized rate divided by the
// dimension, computed by the caller).
//
// Complexity: O(n).
func mutate(x []float64, bounds []core.Bounds, eta, prob float64, rng *rand.Rand) {
	var i int
	for i = 0; i < len(x); i++ {
		if rng.Float64() > prob {
			continue
		}
		x[i] = mutateValue(x[i], bounds[i], eta, rng.Float64())
	}
}
