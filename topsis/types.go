// Package topsis - shared types and sentinel errors.
package topsis

import "errors"

// closenessEpsilon guards the closeness ratio against a zero denominator
// when a candidate coincides with both the ideal and anti-ideal points
// (possible only when all candidates are identical).
const closenessEpsilon = 1e-12

var (
	// ErrNoCandidates is returned when the objective matrix has no rows or
	// its rows have no columns.
	ErrNoCandidates = errors.New("topsis: no candidates to rank")

	// ErrRaggedMatrix is returned when the rows of the objective matrix
	// disagree on length.
	ErrRaggedMatrix = errors.New("topsis: ragged objective matrix")

	// ErrBadWeights is returned when explicit weights have the wrong length
	// or contain a non-positive or non-finite entry.
	ErrBadWeights = errors.New("topsis: weights must be positive, finite and match the objective count")

	// ErrNonFiniteInput is returned when the objective matrix contains a
	// NaN or infinite value.
	ErrNonFiniteInput = errors.New("topsis: objective matrix contains a non-finite value")
)

// Result identifies the recommended compromise candidate.
type Result struct {
	// Index is the row of the winning candidate in the input matrix.
	Index int

	// Closeness is the winner's relative closeness score in [0, 1];
	// higher is better.
	Closeness float64
}
