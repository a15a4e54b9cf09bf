// Package surrogate - the quadratic (poly2) response surface.
//
// The model is a full second-order polynomial in standardized inputs:
// bias, linear terms, squared terms, and all pairwise cross terms. Fitting
// solves the ridge-regularized normal equations
//
//	W = (ΦᵀΦ + λI)⁻¹ ΦᵀY
//
// for all outputs at once (Y has one column per objective/constraint).
package surrogate

import "gonum.org/v1/gonum/mat"

// poly2FeatureCount returns the quadratic feature width for n inputs:
// 1 bias + n linear + n squared + n(n−1)/2 cross terms.
//
// Complexity: O(1).
func poly2FeatureCount(n int) int {
	return 1 + 2*n + n*(n-1)/2
}

// poly2Features expands one standardized input vector into the quadratic
// feature vector [1, x₁..xₙ, x₁²..xₙ², x₁x₂, x₁x₃, …].
//
// Complexity: O(n²).
func poly2Features(x []float64) []float64 {
	var (
		n   = len(x)
		out = make([]float64, 0, poly2FeatureCount(n))
		i   int
		j   int
	)

	out = append(out, 1)
	out = append(out, x...)
	for i = 0; i < n; i++ {
		out = append(out, x[i]*x[i])
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, x[i]*x[j])
		}
	}

	return out
}

// fitPoly2 solves the ridge normal equations on standardized data.
// X is row-major (samples × n), Y row-major (samples × out).
//
// Errors: ErrSingularFit when the regularized system cannot be solved
// (raise lambda or collect more samples).
//
// Complexity: O(S·F² + F³) for S samples and F features.
func fitPoly2(X, Y [][]float64, lambda float64) (*mat.Dense, error) {
	var (
		samples  = len(X)
		n        = len(X[0])
		out      = len(Y[0])
		features = poly2FeatureCount(n)
	)

	// Assemble the design matrix Φ and the target matrix.
	var (
		phi = mat.NewDense(samples, features, nil)
		tgt = mat.NewDense(samples, out, nil)
		i   int
	)
	for i = 0; i < samples; i++ {
		phi.SetRow(i, poly2Features(X[i]))
		tgt.SetRow(i, Y[i])
	}

	// Gram = ΦᵀΦ + λI.
	var gram mat.Dense
	gram.Mul(phi.T(), phi)
	for i = 0; i < features; i++ {
		gram.Set(i, i, gram.At(i, i)+lambda)
	}

	// RHS = ΦᵀY.
	var rhs mat.Dense
	rhs.Mul(phi.T(), tgt)

	// Solve for the weight matrix (features × out).
	var w mat.Dense
	if err := w.Solve(&gram, &rhs); err != nil {
		return nil, ErrSingularFit
	}

	return &w, nil
}

// predictPoly2 evaluates the fitted surface on one standardized input,
// returning the standardized output vector.
//
// Complexity: O(n² + F·out).
func predictPoly2(w *mat.Dense, x []float64, out int) []float64 {
	var (
		features = poly2Features(x)
		ys       = make([]float64, out)
		f, j     int
	)
	for j = 0; j < out; j++ {
		var sum float64
		for f = 0; f < len(features); f++ {
			sum += features[f] * w.At(f, j)
		}
		ys[j] = sum
	}

	return ys
}
