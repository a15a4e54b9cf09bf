// Package nsga2_test validates the genetic operator kernels:
//  1. SBX children stay within bounds and straddle the parent midpoint.
//  2. The pinned-u reference scenario (η=20, parents 0.2/0.8, u=0.3).
//  3. Polynomial mutation clamps and respects the per-variable probability.
//  4. The dynamic η schedule interpolates linearly.
package nsga2_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/moea/core"
	"github.com/katalvlaran/moea/nsga2"
)

// unitBounds returns [0,1]^n.
func unitBounds(n int) []core.Bounds {
	b := make([]core.Bounds, n)
	for i := range b {
		b[i] = core.Bounds{Lower: 0, Upper: 1}
	}

	return b
}

// TestSBXChildren_ReferenceScenario pins u=0.3 on parents (0.2, 0.8) with
// η=20 under [0,1]: both children stay inside the box and differ from each
// other (no boundary clamp collapses them here).
func TestSBXChildren_ReferenceScenario(t *testing.T) {
	b := core.Bounds{Lower: 0, Upper: 1}
	c1, c2 := nsga2.SBXChildren(0.2, 0.8, b, 20, 0.3)

	assert.GreaterOrEqual(t, c1, 0.0)
	assert.LessOrEqual(t, c1, 1.0)
	assert.GreaterOrEqual(t, c2, 0.0)
	assert.LessOrEqual(t, c2, 1.0)
	assert.NotEqual(t, c1, c2, "distinct interior parents must yield distinct children")

	// u=0.3 ⇒ βq=(0.6)^(1/21) < 1: children contract toward the midpoint.
	assert.Greater(t, c1, 0.2)
	assert.Less(t, c2, 0.8)
	assert.InDelta(t, 1.0, c1+c2, 1e-12, "SBX children are symmetric about the parent mean")
}

// TestSBXChildren_SpreadAboveHalf uses u>0.5: βq>1, children expand beyond
// the parents but remain clamped.
func TestSBXChildren_SpreadAboveHalf(t *testing.T) {
	b := core.Bounds{Lower: 0, Upper: 1}
	c1, c2 := nsga2.SBXChildren(0.2, 0.8, b, 2, 0.95)

	assert.Less(t, c1, 0.2, "expansion below the lower parent")
	assert.Greater(t, c2, 0.8, "expansion above the upper parent")
	assert.GreaterOrEqual(t, c1, 0.0)
	assert.LessOrEqual(t, c2, 1.0)
}

// TestCrossover_BoundsAndCoinFlip runs the vector wrapper over many draws:
// all outputs clamped, and untouched variables equal their parents.
func TestCrossover_BoundsAndCoinFlip(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(3))
		bounds = unitBounds(8)
		p1     = make([]float64, 8)
		p2     = make([]float64, 8)
	)
	for i := range p1 {
		p1[i] = rng.Float64()
		p2[i] = rng.Float64()
	}

	for trial := 0; trial < 200; trial++ {
		c1, c2 := nsga2.Crossover(p1, p2, bounds, 15, rng)
		for i := range c1 {
			assert.GreaterOrEqual(t, c1[i], 0.0)
			assert.LessOrEqual(t, c1[i], 1.0)
			assert.GreaterOrEqual(t, c2[i], 0.0)
			assert.LessOrEqual(t, c2[i], 1.0)
		}
	}
}

// TestCrossover_NearEqualParentsUntouched keeps variables with
// |p1−p2| < 1e-14 unchanged regardless of the coin flip.
func TestCrossover_NearEqualParentsUntouched(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(5))
		bounds = unitBounds(4)
		p      = []float64{0.25, 0.5, 0.75, 1}
	)
	for trial := 0; trial < 50; trial++ {
		c1, c2 := nsga2.Crossover(p, p, bounds, 20, rng)
		assert.Equal(t, p, c1)
		assert.Equal(t, p, c2)
	}
}

// TestMutateValue_Bounds pins both u branches at an interior point and at
// the boundaries; every result stays clamped.
func TestMutateValue_Bounds(t *testing.T) {
	b := core.Bounds{Lower: -2, Upper: 3}

	low := nsga2.MutateValue(0.5, b, 20, 0.1)  // u ≤ 0.5 ⇒ move toward lower
	high := nsga2.MutateValue(0.5, b, 20, 0.9) // u > 0.5 ⇒ move toward upper
	assert.Less(t, low, 0.5)
	assert.Greater(t, high, 0.5)
	assert.GreaterOrEqual(t, low, -2.0)
	assert.LessOrEqual(t, high, 3.0)

	// At a boundary, the inward branch still cannot escape the box.
	edge := nsga2.MutateValue(-2, b, 20, 0.01)
	assert.GreaterOrEqual(t, edge, -2.0)
	assert.LessOrEqual(t, edge, 3.0)

	// Degenerate interval: the value cannot move.
	assert.Equal(t, 1.0, nsga2.MutateValue(1, core.Bounds{Lower: 1, Upper: 1}, 20, 0.9))
}

// TestMutate_ZeroProbabilityIsIdentity never perturbs with prob 0.
func TestMutate_ZeroProbabilityIsIdentity(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(9))
		bounds = unitBounds(6)
		x      = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
		want   = append([]float64(nil), x...)
	)
	nsga2.Mutate(x, bounds, 20, 0, rng)
	assert.Equal(t, want, x)
}

// TestEtaAt_LinearSchedule checks the endpoints, the midpoint and the
// single-generation degenerate case.
func TestEtaAt_LinearSchedule(t *testing.T) {
	assert.Equal(t, 2.0, nsga2.EtaAt(2, 20, 1, 10), "first generation uses the start value")
	assert.Equal(t, 20.0, nsga2.EtaAt(2, 20, 10, 10), "last generation uses the end value")
	assert.InDelta(t, 11.0, nsga2.EtaAt(2, 20, 5, 9), 1e-12, "midpoint interpolates linearly")
	assert.Equal(t, 20.0, nsga2.EtaAt(2, 20, 1, 1), "G ≤ 1 uses the end value directly")
}

// TestOperatorEtas_StaticVersusDynamic resolves per-generation indices.
func TestOperatorEtas_StaticVersusDynamic(t *testing.T) {
	opts := nsga2.DefaultOptions()
	opts.MaxGenerations = 5

	etaC, etaM := nsga2.OperatorEtas(opts, 3)
	assert.Equal(t, 20.0, etaC)
	assert.Equal(t, 20.0, etaM)

	opts.UseDynamicOperators = true
	etaC, etaM = nsga2.OperatorEtas(opts, 1)
	assert.Equal(t, opts.CrossoverDistStart, etaC)
	assert.Equal(t, opts.MutationDistStart, etaM)

	etaC, etaM = nsga2.OperatorEtas(opts, 5)
	assert.Equal(t, opts.CrossoverDistEnd, etaC)
	assert.Equal(t, opts.MutationDistEnd, etaM)
}

// TestMutate_HighEtaStaysLocal sanity-checks the small-perturbation bias:
// with a large η the mean displacement over many draws stays small.
func TestMutate_HighEtaStaysLocal(t *testing.T) {
	var (
		rng   = rand.New(rand.NewSource(11))
		b     = core.Bounds{Lower: 0, Upper: 1}
		total float64
		n     = 2000
	)
	for i := 0; i < n; i++ {
		y := nsga2.MutateValue(0.5, b, 100, rng.Float64())
		total += math.Abs(y - 0.5)
	}
	assert.Less(t, total/float64(n), 0.05, "η=100 must bias toward tiny perturbations")
}
