// Package annsga2_test validates the surrogate-assisted pipeline:
//  1. Strict sentinels from every stage's validator, before any evaluation.
//  2. End-to-end on an exactly-representable bi-objective: the exact front
//     verifies, the decision is feasible and carries true values.
//  3. Verification switches: disabled, TOPSIS-only, capped limit.
//  4. No eligible candidate → no decision, not an error.
//  5. One-seed determinism through the derived training stream.
package annsga2_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moea/annsga2"
	"github.com/katalvlaran/moea/core"
	"github.com/katalvlaran/moea/nsga2"
	"github.com/katalvlaran/moea/surrogate"
	"github.com/katalvlaran/moea/topsis"
)

// biSphere is a two-objective quadratic with optima at (0.2, 0.5) and
// (0.8, 0.5); its Pareto set is the segment between them. Being quadratic,
// it is exactly representable by the poly2 surrogate.
var biSphere = core.EvaluatorFunc(func(x []float64) core.Evaluation {
	return core.Evaluation{
		Objectives: []float64{
			(x[0]-0.2)*(x[0]-0.2) + (x[1]-0.5)*(x[1]-0.5),
			(x[0]-0.8)*(x[0]-0.8) + (x[1]-0.5)*(x[1]-0.5),
		},
		OK: true,
	}
})

// unitProblem builds the [0,1]² box with m objectives and c constraints.
func unitProblem(t *testing.T, m, c int) core.Problem {
	t.Helper()
	p, err := core.NewSpec([]core.Bounds{{Lower: 0, Upper: 1}, {Lower: 0, Upper: 1}}, m, c)
	require.NoError(t, err)

	return p
}

// smallOpts returns a fast, deterministic pipeline configuration with a
// near-exact poly2 fit.
func smallOpts() annsga2.Options {
	opts := annsga2.DefaultOptions()
	opts.Evolution.PopulationSize = 20
	opts.Evolution.MaxGenerations = 10
	opts.Evolution.Seed = 5
	opts.Training.Samples = 40
	opts.Training.MaxAttempts = 40
	opts.Training.RidgeLambda = 1e-9

	return opts
}

// TestOptimize_Sentinels covers the upfront validation of every stage.
func TestOptimize_Sentinels(t *testing.T) {
	p := unitProblem(t, 2, 0)

	_, err := annsga2.Optimize(nil, biSphere, smallOpts())
	assert.ErrorIs(t, err, core.ErrNilProblem)

	_, err = annsga2.Optimize(p, nil, smallOpts())
	assert.ErrorIs(t, err, annsga2.ErrNilEvaluator)

	opts := smallOpts()
	opts.Evolution.PopulationSize = 1
	_, err = annsga2.Optimize(p, biSphere, opts)
	assert.ErrorIs(t, err, nsga2.ErrBadPopulationSize,
		"evolution options must be validated before training")

	opts = smallOpts()
	opts.Training.Samples = 0
	_, err = annsga2.Optimize(p, biSphere, opts)
	assert.ErrorIs(t, err, surrogate.ErrBadSampleCount)

	opts = smallOpts()
	opts.Verification.VerifyParetoLimit = -1
	_, err = annsga2.Optimize(p, biSphere, opts)
	assert.ErrorIs(t, err, annsga2.ErrBadVerifyLimit)

	opts = smallOpts()
	opts.Verification.TOPSISWeights = []float64{1}
	_, err = annsga2.Optimize(p, biSphere, opts)
	assert.ErrorIs(t, err, annsga2.ErrBadDecisionWeights)

	opts = smallOpts()
	opts.Verification.TOPSISWeights = []float64{1, -2}
	_, err = annsga2.Optimize(p, biSphere, opts)
	assert.ErrorIs(t, err, annsga2.ErrBadDecisionWeights)
}

// TestOptimize_EndToEnd runs the full pipeline with verification on and
// checks every result field.
func TestOptimize_EndToEnd(t *testing.T) {
	p := unitProblem(t, 2, 0)

	res, err := annsga2.Optimize(p, biSphere, smallOpts())
	require.NoError(t, err)

	// Training spent exactly its budget and accepted everything.
	assert.Equal(t, 40, res.Training.Accepted)
	assert.Equal(t, 40, res.Training.Attempts)
	require.NotNil(t, res.Model)

	// Evolution ran against the surrogate only.
	assert.Equal(t, 20, len(res.Evolution.Population))
	require.NotEmpty(t, res.SurrogateFront)

	// The whole front was verified exactly, and nothing more.
	require.NotEmpty(t, res.ExactFront)
	assert.Equal(t, len(res.SurrogateFront), res.ExactEvaluations)

	// The decision exists, is verified and carries the true values of its
	// own variable vector.
	dec := res.Decision
	require.NotNil(t, dec)
	assert.True(t, dec.Verified)
	assert.True(t, dec.Feasible)
	assert.GreaterOrEqual(t, dec.Closeness, 0.0)
	assert.LessOrEqual(t, dec.Closeness, 1.0)

	want := biSphere(dec.Variables).Objectives
	require.Len(t, dec.Objectives, 2)
	assert.InDelta(t, want[0], dec.Objectives[0], 1e-12)
	assert.InDelta(t, want[1], dec.Objectives[1], 1e-12)

	// The winner sits near the true Pareto segment x2 = 0.5, x1 ∈ [0.2, 0.8].
	assert.InDelta(t, 0.5, dec.Variables[1], 0.15)
	assert.Greater(t, dec.Variables[0], 0.05)
	assert.Less(t, dec.Variables[0], 0.95)
}

// TestOptimize_VerificationDisabled skips all exact calls after training.
func TestOptimize_VerificationDisabled(t *testing.T) {
	opts := smallOpts()
	opts.Verification.Enabled = false

	res, err := annsga2.Optimize(unitProblem(t, 2, 0), biSphere, opts)
	require.NoError(t, err)

	assert.Nil(t, res.ExactFront)
	assert.Equal(t, 0, res.ExactEvaluations)

	require.NotNil(t, res.Decision)
	assert.False(t, res.Decision.Verified, "the decision carries surrogate values only")
}

// TestOptimize_VerifyTOPSISOnly confirms just the winner with one exact call
// when the front itself is not verified.
func TestOptimize_VerifyTOPSISOnly(t *testing.T) {
	opts := smallOpts()
	opts.Verification.VerifyParetoFront = false

	res, err := annsga2.Optimize(unitProblem(t, 2, 0), biSphere, opts)
	require.NoError(t, err)

	assert.Nil(t, res.ExactFront)
	assert.Equal(t, 1, res.ExactEvaluations)

	dec := res.Decision
	require.NotNil(t, dec)
	assert.True(t, dec.Verified)

	want := biSphere(dec.Variables).Objectives
	assert.InDelta(t, want[0], dec.Objectives[0], 1e-12)
	assert.InDelta(t, want[1], dec.Objectives[1], 1e-12)
}

// TestOptimize_VerifyLimitCapsExactCalls re-evaluates at most the cap.
func TestOptimize_VerifyLimitCapsExactCalls(t *testing.T) {
	opts := smallOpts()
	opts.Verification.VerifyParetoLimit = 3

	res, err := annsga2.Optimize(unitProblem(t, 2, 0), biSphere, opts)
	require.NoError(t, err)

	assert.Equal(t, 3, res.ExactEvaluations)
	assert.NotEmpty(t, res.ExactFront)
	assert.LessOrEqual(t, len(res.ExactFront), 3)
}

// TestOptimize_NoFeasibleCandidate: a constraint violated everywhere leaves
// nothing to decide over; that is a nil Decision, not an error.
func TestOptimize_NoFeasibleCandidate(t *testing.T) {
	hopeless := core.EvaluatorFunc(func(x []float64) core.Evaluation {
		return core.Evaluation{
			Objectives:  []float64{x[0], x[1]},
			Constraints: []float64{1}, // violated for every x
			OK:          true,
		}
	})

	opts := smallOpts()
	opts.Training.RequireFeasible = false

	res, err := annsga2.Optimize(unitProblem(t, 2, 1), hopeless, opts)
	require.NoError(t, err)
	assert.Nil(t, res.Decision)
}

// TestOptimize_OneSeedDeterminism: setting only the evolution seed still
// reproduces the entire run through the derived training seed.
func TestOptimize_OneSeedDeterminism(t *testing.T) {
	p := unitProblem(t, 2, 0)

	a, err := annsga2.Optimize(p, biSphere, smallOpts())
	require.NoError(t, err)
	b, err := annsga2.Optimize(p, biSphere, smallOpts())
	require.NoError(t, err)

	require.NotNil(t, a.Decision)
	require.NotNil(t, b.Decision)
	assert.Equal(t, a.Decision.Variables, b.Decision.Variables)
	assert.Equal(t, a.ExactEvaluations, b.ExactEvaluations)

	// A different seed moves the run.
	opts := smallOpts()
	opts.Evolution.Seed = 6
	c, err := annsga2.Optimize(p, biSphere, opts)
	require.NoError(t, err)
	require.NotNil(t, c.Decision)
	assert.NotEqual(t, a.Decision.Variables, c.Decision.Variables)
}

// TestOptimize_WeightsSteerDecision: skewing the decision weights moves the
// winner along the Pareto segment toward the favored objective's optimum.
func TestOptimize_WeightsSteerDecision(t *testing.T) {
	p := unitProblem(t, 2, 0)

	heavy0 := smallOpts()
	heavy0.Verification.TOPSISWeights = []float64{20, 1}
	a, err := annsga2.Optimize(p, biSphere, heavy0)
	require.NoError(t, err)
	require.NotNil(t, a.Decision)

	heavy1 := smallOpts()
	heavy1.Verification.TOPSISWeights = []float64{1, 20}
	b, err := annsga2.Optimize(p, biSphere, heavy1)
	require.NoError(t, err)
	require.NotNil(t, b.Decision)

	// Favoring f1 pulls x1 toward 0.2; favoring f2 pulls it toward 0.8.
	assert.Less(t, a.Decision.Variables[0], b.Decision.Variables[0])
	assert.Less(t, math.Abs(a.Decision.Objectives[0]), math.Abs(b.Decision.Objectives[0]))
}

// TestScoresAgreement: the pipeline's decision matches a direct TOPSIS run
// over the exact front it reports.
func TestScoresAgreement(t *testing.T) {
	res, err := annsga2.Optimize(unitProblem(t, 2, 0), biSphere, smallOpts())
	require.NoError(t, err)
	require.NotNil(t, res.Decision)

	var rows [][]float64
	for i := range res.ExactFront {
		if res.ExactFront[i].Feasible && res.ExactFront[i].FiniteObjectives() {
			rows = append(rows, res.ExactFront[i].Objectives)
		}
	}
	direct, err := topsis.Select(rows, nil)
	require.NoError(t, err)
	assert.InDelta(t, direct.Closeness, res.Decision.Closeness, 1e-12)
}
