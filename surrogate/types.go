// Package surrogate - sentinel errors, enums and diagnostics.
package surrogate

import "errors"

// Sentinel errors returned by Train, Predict and NewAdapter.
var (
	// ErrNilEvaluator indicates that a nil exact Evaluator was supplied.
	ErrNilEvaluator = errors.New("surrogate: exact evaluator is nil")

	// ErrNilModel indicates that a nil Model was supplied to NewAdapter.
	ErrNilModel = errors.New("surrogate: model is nil")

	// ErrBadSampleCount indicates Samples < 1.
	ErrBadSampleCount = errors.New("surrogate: sample count must be at least 1")

	// ErrBadAttemptBudget indicates MaxAttempts < Samples.
	ErrBadAttemptBudget = errors.New("surrogate: attempt budget must cover the sample count")

	// ErrUnknownSampling indicates an unrecognized sampling method.
	ErrUnknownSampling = errors.New("surrogate: unknown sampling method")

	// ErrUnknownKind indicates an unrecognized model kind; callers requesting
	// an unavailable capability should fall back to Poly2.
	ErrUnknownKind = errors.New("surrogate: unknown model kind (fall back to Poly2)")

	// ErrBadRidgeLambda indicates a negative ridge regularization weight.
	ErrBadRidgeLambda = errors.New("surrogate: ridge lambda must be non-negative")

	// ErrBadHiddenLayer indicates an empty hidden layout, more than two
	// hidden layers, or a non-positive layer size.
	ErrBadHiddenLayer = errors.New("surrogate: hidden layers must be one or two positive sizes")

	// ErrBadSplit indicates a validation split outside [0, 1).
	ErrBadSplit = errors.New("surrogate: validation split must lie in [0,1)")

	// ErrBadEpochs indicates a non-positive epoch budget.
	ErrBadEpochs = errors.New("surrogate: epoch budget must be positive")

	// ErrBadLearningRate indicates a non-positive learning rate.
	ErrBadLearningRate = errors.New("surrogate: learning rate must be positive")

	// ErrBadPenalty indicates a non-finite penalty value.
	ErrBadPenalty = errors.New("surrogate: penalty value must be finite")

	// ErrNoSamples indicates that the attempt budget produced zero accepted
	// samples; nothing can be fit.
	ErrNoSamples = errors.New("surrogate: no training samples were accepted")

	// ErrNotFitted indicates prediction on a model without fitted parameters.
	ErrNotFitted = errors.New("surrogate: model has no fitted parameters")

	// ErrSingularFit indicates that the ridge normal equations could not be
	// solved; raise RidgeLambda or collect more samples.
	ErrSingularFit = errors.New("surrogate: ridge system is singular")

	// ErrDimensionMismatch indicates a prediction input of the wrong length.
	ErrDimensionMismatch = errors.New("surrogate: input dimension mismatch")

	// ErrNonFinitePrediction indicates a NaN/±Inf model output.
	ErrNonFinitePrediction = errors.New("surrogate: non-finite prediction")
)

// Kind tags the surrogate model family.
type Kind int

const (
	// Poly2 is a ridge-regressed full quadratic response surface.
	Poly2 Kind = iota

	// ANN is a feed-forward network with ReLU hidden layers.
	ANN
)

// Sampling selects the candidate-generation strategy.
type Sampling int

const (
	// LatinHypercube stratifies each dimension into MaxAttempts equal-width
	// strata, permutes them independently per dimension and jitters within
	// each stratum.
	LatinHypercube Sampling = iota

	// Uniform draws every coordinate independently uniform within bounds.
	Uniform
)

// Diagnostics records the training-data collection outcome. A shortfall
// (Accepted < Requested) is non-fatal; the caller decides whether it is
// acceptable.
type Diagnostics struct {
	// Requested is the target sample count (Options.Samples).
	Requested int

	// Accepted is the number of samples that passed the acceptance rules.
	Accepted int

	// Attempts is the number of exact Evaluator calls spent.
	Attempts int
}
