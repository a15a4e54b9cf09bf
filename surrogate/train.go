// Package surrogate - the training pipeline.
//
// Train samples the search space, queries the exact Evaluator under the
// acceptance rules, standardizes the accepted data and fits the requested
// model. Fatal errors (bad configuration, zero accepted samples) surface
// before — or instead of — a fitted model; a sample shortfall is recorded in
// Diagnostics and left to the caller's judgment.
package surrogate

import (
	"math"

	"github.com/katalvlaran/moea/core"
)

// Train builds a surrogate Model of the exact evaluator.
//
// Contracts:
//   - problem valid per core.ValidateProblem; exact non-nil.
//   - opts valid per validateOptions (ANN options are checked upfront so an
//     unusable configuration fails fast, before any evaluation is spent).
//
// Returns the fitted model and the collection Diagnostics. Diagnostics are
// meaningful even on error: a zero-accepted run reports its attempt count
// alongside ErrNoSamples.
//
// Complexity: O(MaxAttempts) evaluator calls plus the fit cost.
func Train(problem core.Problem, exact core.Evaluator, opts Options) (*Model, Diagnostics, error) {
	var diag Diagnostics

	if err := core.ValidateProblem(problem); err != nil {
		return nil, diag, err
	}
	if exact == nil {
		return nil, diag, ErrNilEvaluator
	}
	if err := validateOptions(opts); err != nil {
		return nil, diag, err
	}

	var (
		rng  = rngFromSeed(opts.Seed)
		m    = problem.NumObjectives()
		c    = problem.NumConstraints()
		pool = candidates(opts.Sampling, opts.MaxAttempts, problem.VarBounds(), rng)
	)
	diag.Requested = opts.Samples

	// Rejection sampling against the acceptance rules.
	var (
		inputs  [][]float64
		outputs [][]float64
		k       int
	)
	for k = 0; k < len(pool) && len(inputs) < opts.Samples; k++ {
		diag.Attempts++

		ev := exact.Evaluate(pool[k])
		if !accept(ev, m, c, opts) {
			continue
		}

		row := make([]float64, 0, m+c)
		row = append(row, ev.Objectives...)
		row = append(row, ev.Constraints...)

		inputs = append(inputs, pool[k])
		outputs = append(outputs, row)
	}
	diag.Accepted = len(inputs)

	if diag.Accepted == 0 {
		return nil, diag, ErrNoSamples
	}

	// Standardize both sides; std is floored to 1 inside columnStats.
	var (
		n           = problem.Dimension()
		xMean, xStd = columnStats(inputs, n)
		yMean, yStd = columnStats(outputs, m+c)
		xNorm       = standardize(inputs, xMean, xStd)
		yNorm       = standardize(outputs, yMean, yStd)
	)

	model := &Model{
		Kind:         opts.Kind,
		In:           n,
		Out:          m + c,
		Objectives:   m,
		Constraints:  c,
		XMean:        xMean,
		XStd:         xStd,
		YMean:        yMean,
		YStd:         yStd,
		PenaltyValue: opts.Penalty,
	}

	switch opts.Kind {
	case Poly2:
		w, err := fitPoly2(xNorm, yNorm, opts.RidgeLambda)
		if err != nil {
			return nil, diag, err
		}
		model.Weights = w
	case ANN:
		model.net = fitANN(xNorm, yNorm, opts, rng)
	default:
		// validateOptions already rejected unknown kinds.
		return nil, diag, ErrUnknownKind
	}

	return model, diag, nil
}

// accept applies the rejection rules to one evaluation:
//   - objective vector length must match the problem;
//   - constraint vector length must match when the problem is constrained;
//   - OK=false rejects when RequireSuccess;
//   - any violated constraint rejects when RequireFeasible;
//   - any non-finite output rejects unconditionally.
//
// Complexity: O(m + c).
func accept(ev core.Evaluation, m, c int, opts Options) bool {
	if len(ev.Objectives) != m {
		return false
	}
	if c > 0 && len(ev.Constraints) != c {
		return false
	}
	if opts.RequireSuccess && !ev.OK {
		return false
	}

	var i int
	if opts.RequireFeasible {
		for i = 0; i < len(ev.Constraints); i++ {
			if ev.Constraints[i] > 0 {
				return false
			}
		}
	}

	for i = 0; i < len(ev.Objectives); i++ {
		if math.IsNaN(ev.Objectives[i]) || math.IsInf(ev.Objectives[i], 0) {
			return false
		}
	}
	for i = 0; i < len(ev.Constraints); i++ {
		if math.IsNaN(ev.Constraints[i]) || math.IsInf(ev.Constraints[i], 0) {
			return false
		}
	}

	return true
}

// ValidateOptions checks internal consistency of Options without a problem
// or evaluator attached, for callers that stage training inside a larger
// pipeline.
//
// Complexity: O(1).
func ValidateOptions(opts Options) error {
	return validateOptions(opts)
}

// validateOptions checks internal consistency of Options without touching
// the problem or evaluator. ANN-specific fields are validated only for ANN
// models, but strictly — a broken ANN configuration must fail before any
// sampling work starts.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Samples < 1 {
		return ErrBadSampleCount
	}
	if opts.MaxAttempts < opts.Samples {
		return ErrBadAttemptBudget
	}
	switch opts.Sampling {
	case LatinHypercube, Uniform:
		// ok
	default:
		return ErrUnknownSampling
	}
	if math.IsNaN(opts.Penalty) || math.IsInf(opts.Penalty, 0) {
		return ErrBadPenalty
	}

	switch opts.Kind {
	case Poly2:
		if opts.RidgeLambda < 0 {
			return ErrBadRidgeLambda
		}
	case ANN:
		if len(opts.HiddenLayers) < 1 || len(opts.HiddenLayers) > 2 {
			return ErrBadHiddenLayer
		}
		for _, h := range opts.HiddenLayers {
			if h < 1 {
				return ErrBadHiddenLayer
			}
		}
		if opts.ValidationSplit < 0 || opts.ValidationSplit >= 1 {
			return ErrBadSplit
		}
		if opts.Epochs < 1 {
			return ErrBadEpochs
		}
		if opts.LearningRate <= 0 {
			return ErrBadLearningRate
		}
	default:
		return ErrUnknownKind
	}

	return nil
}
