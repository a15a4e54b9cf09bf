// Package surrogate - exported aliases for white-box testing of the sampling
// and feature kernels. Test-only file; nothing here ships.
package surrogate

// LatinHypercubeCandidates exposes the stratified sampler.
var LatinHypercubeCandidates = latinHypercube

// UniformCandidates exposes the independent-uniform sampler.
var UniformCandidates = uniformCandidates

// Poly2Features exposes the quadratic feature expansion.
var Poly2Features = poly2Features

// Poly2FeatureCount exposes the quadratic feature width.
var Poly2FeatureCount = poly2FeatureCount

// FitANN exposes the network trainer; the returned predictor evaluates one
// standardized input.
func FitANN(x, y [][]float64, opts Options, seed int64) func([]float64) []float64 {
	net := fitANN(x, y, opts, rngFromSeed(seed))

	return net.forward
}

// CorruptKind marks a model with an unknown kind tag to exercise the penalty
// path end to end.
func CorruptKind(m *Model) { m.Kind = Kind(99) }
