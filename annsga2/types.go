// Package annsga2 - sentinel errors and result types.
package annsga2

import (
	"errors"

	"github.com/katalvlaran/moea/core"
	"github.com/katalvlaran/moea/nsga2"
	"github.com/katalvlaran/moea/surrogate"
)

// Sentinel errors returned by Optimize and its validators.
var (
	// ErrNilEvaluator indicates that a nil exact Evaluator was supplied.
	ErrNilEvaluator = errors.New("annsga2: exact evaluator is nil")

	// ErrBadVerifyLimit indicates a negative VerifyParetoLimit.
	ErrBadVerifyLimit = errors.New("annsga2: verification limit must be non-negative")

	// ErrBadDecisionWeights indicates TOPSIS weights that are non-positive,
	// non-finite or of the wrong length for the problem's objective count.
	ErrBadDecisionWeights = errors.New("annsga2: decision weights must be positive, finite and match the objective count")
)

// Decision is the recommended compromise candidate produced by the TOPSIS
// stage, with its provenance.
type Decision struct {
	// Index is the candidate's position in the front the decision was made
	// over (ExactFront when present, else SurrogateFront).
	Index int

	// Closeness is the TOPSIS relative closeness score in [0, 1].
	Closeness float64

	// Variables is the decision vector of the chosen candidate.
	Variables []float64

	// Objectives and Constraints are the chosen candidate's values. They are
	// exact when Verified, surrogate predictions otherwise.
	Objectives  []float64
	Constraints []float64

	// Feasible reports all constraints ≤ 0 under the reported values.
	Feasible bool

	// Verified reports whether Objectives/Constraints come from the exact
	// evaluator rather than the surrogate.
	Verified bool
}

// Result is the outcome of one surrogate-assisted run.
type Result struct {
	// Training reports the sample-collection diagnostics of the surrogate
	// stage (requested, accepted, attempts).
	Training surrogate.Diagnostics

	// Model is the fitted surrogate the evolution ran against.
	Model *surrogate.Model

	// Evolution is the full NSGA-II result against the surrogate, including
	// its (surrogate-valued) history.
	Evolution nsga2.Result

	// SurrogateFront is the first non-dominated front under surrogate values.
	SurrogateFront core.Population

	// ExactFront is the first non-dominated front of the verified subset
	// under exact values. Nil when verification is disabled or produced no
	// usable candidates.
	ExactFront core.Population

	// ExactEvaluations counts exact evaluator calls made during verification
	// and decision confirmation. Training calls are counted in Training.
	ExactEvaluations int

	// Decision is the TOPSIS recommendation. Nil when no feasible candidate
	// with finite objectives was available to decide over.
	Decision *Decision
}
