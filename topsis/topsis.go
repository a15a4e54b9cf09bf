// Package topsis - the ranking pipeline: validate, normalize, weight,
// measure against the ideal and anti-ideal points, score, select.
package topsis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Select ranks the candidates of a minimized objective matrix and returns
// the one with the highest relative closeness to the ideal point.
//
// Contracts:
//   - objectives is non-empty and rectangular; every entry finite.
//   - weights is nil (equal importance) or a positive finite vector of the
//     same length as a row; it is normalized internally and never mutated.
//
// Errors: ErrNoCandidates, ErrRaggedMatrix, ErrNonFiniteInput, ErrBadWeights.
//
// Ties resolve to the smallest row index.
//
// Complexity: O(rows·cols) time, O(rows + cols) extra memory.
func Select(objectives [][]float64, weights []float64) (Result, error) {
	scores, err := Scores(objectives, weights)
	if err != nil {
		return Result{}, err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return Result{Index: best, Closeness: scores[best]}, nil
}

// Scores computes the relative closeness of every candidate, in input order.
// Shares all contracts and errors with Select.
//
// Complexity: O(rows·cols).
func Scores(objectives [][]float64, weights []float64) ([]float64, error) {
	cols, err := validateMatrix(objectives)
	if err != nil {
		return nil, err
	}

	w, err := normalizeWeights(weights, cols)
	if err != nil {
		return nil, err
	}

	// Column-wise Euclidean normalization, then weighting. A zero-norm
	// column (all candidates equal on that objective) carries no ranking
	// information and collapses to zero.
	var (
		rows     = len(objectives)
		weighted = make([][]float64, rows)
		col      = make([]float64, rows)
		i, j     int
	)
	for i = 0; i < rows; i++ {
		weighted[i] = make([]float64, cols)
	}
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			col[i] = objectives[i][j]
		}
		norm := floats.Norm(col, 2)
		if norm == 0 {
			continue
		}
		for i = 0; i < rows; i++ {
			weighted[i][j] = w[j] * objectives[i][j] / norm
		}
	}

	// Ideal point: column minima (objectives are minimized).
	// Anti-ideal point: column maxima.
	var (
		ideal = make([]float64, cols)
		anti  = make([]float64, cols)
	)
	for j = 0; j < cols; j++ {
		ideal[j] = weighted[0][j]
		anti[j] = weighted[0][j]
		for i = 1; i < rows; i++ {
			ideal[j] = math.Min(ideal[j], weighted[i][j])
			anti[j] = math.Max(anti[j], weighted[i][j])
		}
	}

	// Relative closeness per candidate.
	scores := make([]float64, rows)
	for i = 0; i < rows; i++ {
		var (
			dPlus  = floats.Distance(weighted[i], ideal, 2)
			dMinus = floats.Distance(weighted[i], anti, 2)
		)
		scores[i] = dMinus / (dPlus + dMinus + closenessEpsilon)
	}

	return scores, nil
}

// validateMatrix checks shape and finiteness, returning the column count.
func validateMatrix(objectives [][]float64) (int, error) {
	if len(objectives) == 0 || len(objectives[0]) == 0 {
		return 0, ErrNoCandidates
	}

	cols := len(objectives[0])
	for _, row := range objectives {
		if len(row) != cols {
			return 0, ErrRaggedMatrix
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNonFiniteInput
			}
		}
	}

	return cols, nil
}

// normalizeWeights validates and scales the weight vector to sum to one.
// nil means equal importance.
func normalizeWeights(weights []float64, cols int) ([]float64, error) {
	w := make([]float64, cols)

	if weights == nil {
		for j := range w {
			w[j] = 1 / float64(cols)
		}

		return w, nil
	}

	if len(weights) != cols {
		return nil, ErrBadWeights
	}

	var sum float64
	for j, v := range weights {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadWeights
		}
		w[j] = v
		sum += v
	}
	floats.Scale(1/sum, w)

	return w, nil
}
