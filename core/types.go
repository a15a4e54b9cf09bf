// Package core - shared contracts and sentinel errors.
//
// This file defines the two narrow contracts every optimizer consumes
// (Problem, Evaluator), the Evaluation result record, and the strict
// sentinels used across the module.
package core

import "errors"

// Sentinel errors returned by core validation helpers.
var (
	// ErrNilProblem indicates that a nil Problem was supplied.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNilEvaluator indicates that a nil Evaluator was supplied.
	ErrNilEvaluator = errors.New("core: evaluator is nil")

	// ErrBadDimension indicates a non-positive variable count.
	ErrBadDimension = errors.New("core: dimension must be positive")

	// ErrNoObjectives indicates that the problem declares zero objectives.
	ErrNoObjectives = errors.New("core: problem must declare at least one objective")

	// ErrBadConstraintCount indicates a negative constraint count.
	ErrBadConstraintCount = errors.New("core: constraint count must be non-negative")

	// ErrBadBounds indicates a bounds slice whose length disagrees with the
	// dimension, or a pair with Lower > Upper, or a non-finite bound.
	ErrBadBounds = errors.New("core: invalid variable bounds")

	// ErrDimensionMismatch indicates a vector whose length disagrees with the
	// problem dimensionality or objective/constraint counts.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")
)

// Bounds is a per-dimension lower/upper pair. Invariant: Lower ≤ Upper.
// All generated and mutated variable values are clamped into [Lower, Upper].
type Bounds struct {
	Lower float64
	Upper float64
}

// Clamp returns x forced into [b.Lower, b.Upper].
//
// Complexity: O(1).
func (b Bounds) Clamp(x float64) float64 {
	if x < b.Lower {
		return b.Lower
	}
	if x > b.Upper {
		return b.Upper
	}

	return x
}

// Span returns the width of the interval (Upper − Lower).
func (b Bounds) Span() float64 { return b.Upper - b.Lower }

// Problem exposes the shape of an optimization problem. Everything else
// (constraint expression semantics, units, simulator wiring) is an external
// concern hidden behind the Evaluator.
type Problem interface {
	// Dimension returns the number of decision variables (> 0).
	Dimension() int

	// VarBounds returns one Bounds pair per variable; len == Dimension().
	VarBounds() []Bounds

	// NumObjectives returns the number of minimized objectives (> 0).
	NumObjectives() int

	// NumConstraints returns the number of constraints (≥ 0).
	// Convention: a constraint value ≤ 0 is feasible.
	NumConstraints() int
}

// Evaluation is the outcome of one Evaluator call.
//
// A failed evaluation carries OK=false and/or penalty-valued outputs; the
// optimizers never retry and never abort on it — ranking naturally pushes
// heavily penalized individuals to worse fronts.
type Evaluation struct {
	// Objectives holds one minimized value per problem objective.
	Objectives []float64

	// Constraints holds one value per problem constraint (≤ 0 feasible).
	// Nil when the problem is unconstrained.
	Constraints []float64

	// OK reports whether the evaluation succeeded. A false value is an
	// ordinary data path, not an error path.
	OK bool

	// Message optionally describes a failure for diagnostics.
	Message string
}

// Evaluator maps a variable vector to objective/constraint values.
//
// Contract:
//   - len(x) equals the problem dimensionality.
//   - Must never panic for ordinary evaluation failures; signal them through
//     OK=false and/or penalty values instead.
type Evaluator interface {
	Evaluate(x []float64) Evaluation
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(x []float64) Evaluation

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(x []float64) Evaluation { return f(x) }

// BatchEvaluator evaluates N input vectors and returns exactly N results in
// input order. Implementations are free to fan out across a worker pool; the
// caller blocks until all N results return (no partial consumption).
type BatchEvaluator interface {
	EvaluateBatch(xs [][]float64) []Evaluation
}

// Spec is a plain-value Problem implementation.
type Spec struct {
	bounds      []Bounds
	objectives  int
	constraints int
}

// NewSpec validates and builds a Spec.
//
// Contract:
//   - len(bounds) > 0; every pair finite with Lower ≤ Upper.
//   - objectives > 0; constraints ≥ 0.
//
// Errors: ErrBadDimension, ErrBadBounds, ErrNoObjectives,
// ErrBadConstraintCount.
//
// Complexity: O(n) over the bounds.
func NewSpec(bounds []Bounds, objectives, constraints int) (*Spec, error) {
	if len(bounds) == 0 {
		return nil, ErrBadDimension
	}
	if objectives <= 0 {
		return nil, ErrNoObjectives
	}
	if constraints < 0 {
		return nil, ErrBadConstraintCount
	}
	if err := ValidateBounds(bounds); err != nil {
		return nil, err
	}

	// Copy defensively; the Spec owns its bounds.
	own := make([]Bounds, len(bounds))
	copy(own, bounds)

	return &Spec{bounds: own, objectives: objectives, constraints: constraints}, nil
}

// Dimension implements Problem.
func (s *Spec) Dimension() int { return len(s.bounds) }

// VarBounds implements Problem. The returned slice must not be mutated.
func (s *Spec) VarBounds() []Bounds { return s.bounds }

// NumObjectives implements Problem.
func (s *Spec) NumObjectives() int { return s.objectives }

// NumConstraints implements Problem.
func (s *Spec) NumConstraints() int { return s.constraints }

// ValidateProblem checks a Problem for structural sanity: non-nil, positive
// dimension, bounds of matching length with Lower ≤ Upper, at least one
// objective, non-negative constraint count.
//
// Complexity: O(n) over the dimension.
func ValidateProblem(p Problem) error {
	if p == nil {
		return ErrNilProblem
	}
	if p.Dimension() <= 0 {
		return ErrBadDimension
	}
	if p.NumObjectives() <= 0 {
		return ErrNoObjectives
	}
	if p.NumConstraints() < 0 {
		return ErrBadConstraintCount
	}

	b := p.VarBounds()
	if len(b) != p.Dimension() {
		return ErrBadBounds
	}

	return ValidateBounds(b)
}

// ValidateBounds verifies every pair is finite with Lower ≤ Upper.
//
// Complexity: O(n).
func ValidateBounds(b []Bounds) error {
	var i int
	for i = 0; i < len(b); i++ {
		if !isFinite(b[i].Lower) || !isFinite(b[i].Upper) {
			return ErrBadBounds
		}
		if b[i].Lower > b[i].Upper {
			return ErrBadBounds
		}
	}

	return nil
}
