// Package surrogate - the fitted Model and its prediction path.
//
// A Model owns the normalization statistics (per-input and per-output
// mean/std, std floored to 1), the fitted parameters of its Kind, and the
// scalar penalty substituted by the Adapter whenever prediction fails.
package surrogate

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Model is a fitted surrogate.
type Model struct {
	// Kind selects the prediction path (Poly2 or ANN).
	Kind Kind

	// In and Out are the input dimensionality and total output width
	// (objectives + constraints).
	In  int
	Out int

	// Objectives and Constraints partition the output vector.
	Objectives  int
	Constraints int

	// Normalization statistics; std entries are never zero.
	XMean []float64
	XStd  []float64
	YMean []float64
	YStd  []float64

	// Weights holds the ridge-regressed coefficient matrix for Poly2
	// (featureCount × Out). Nil for ANN models.
	Weights *mat.Dense

	// net holds the trained network for ANN models.
	net *network

	// PenaltyValue is returned by the Adapter for every output when
	// prediction fails.
	PenaltyValue float64
}

// Predict maps a variable vector in problem units to an output vector
// (objectives followed by constraints) in problem units.
//
// Errors: ErrDimensionMismatch, ErrNotFitted, ErrUnknownKind,
// ErrNonFinitePrediction. The Adapter converts all of them into penalty
// evaluations; direct callers may inspect them.
//
// Complexity: O(n²) for Poly2 (quadratic features), O(Σ layer sizes) for ANN.
func (m *Model) Predict(x []float64) ([]float64, error) {
	if len(x) != m.In {
		return nil, ErrDimensionMismatch
	}

	// Standardize into model space.
	xs := make([]float64, m.In)

	var i int
	for i = 0; i < m.In; i++ {
		xs[i] = (x[i] - m.XMean[i]) / m.XStd[i]
	}

	var ys []float64
	switch m.Kind {
	case Poly2:
		if m.Weights == nil {
			return nil, ErrNotFitted
		}
		ys = predictPoly2(m.Weights, xs, m.Out)
	case ANN:
		if m.net == nil {
			return nil, ErrNotFitted
		}
		ys = m.net.forward(xs)
	default:
		return nil, ErrUnknownKind
	}

	// Destandardize back to problem units and reject non-finite output.
	out := make([]float64, m.Out)
	for i = 0; i < m.Out; i++ {
		out[i] = ys[i]*m.YStd[i] + m.YMean[i]
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, ErrNonFinitePrediction
		}
	}

	return out, nil
}

// columnStats computes per-column mean/std over row-major samples, flooring
// the std to 1 whenever it is zero or non-finite (single sample, constant
// column) to avoid division by zero during standardization.
//
// Complexity: O(rows·cols).
func columnStats(rows [][]float64, cols int) ([]float64, []float64) {
	var (
		mean = make([]float64, cols)
		std  = make([]float64, cols)
		col  = make([]float64, len(rows))
		i, j int
	)
	for j = 0; j < cols; j++ {
		for i = 0; i < len(rows); i++ {
			col[i] = rows[i][j]
		}
		mean[j], std[j] = stat.MeanStdDev(col, nil)
		if std[j] == 0 || math.IsNaN(std[j]) || math.IsInf(std[j], 0) {
			std[j] = 1
		}
	}

	return mean, std
}

// standardize returns a fresh row-major copy of rows shifted by mean and
// scaled by std.
//
// Complexity: O(rows·cols).
func standardize(rows [][]float64, mean, std []float64) [][]float64 {
	out := make([][]float64, len(rows))

	var i, j int
	for i = 0; i < len(rows); i++ {
		out[i] = make([]float64, len(mean))
		for j = 0; j < len(mean); j++ {
			out[i][j] = (rows[i][j] - mean[j]) / std[j]
		}
	}

	return out
}
