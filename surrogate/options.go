// Package surrogate - training configuration.
package surrogate

// Options configures one Train call.
//
// Sampling / acceptance:
//
//	Samples         – target accepted-sample count (≥ 1).
//	MaxAttempts     – exact-evaluation budget (≥ Samples). Exhausting it with
//	                  fewer accepted samples is non-fatal (see Diagnostics).
//	Sampling        – LatinHypercube or Uniform candidate generation.
//	RequireSuccess  – reject candidates whose evaluation reports OK=false.
//	RequireFeasible – reject candidates violating any constraint.
//	Seed            – RNG seed for sampling and the validation split;
//	                  0 selects the fixed default stream.
//
// Model:
//
//	Kind            – Poly2 or ANN.
//	RidgeLambda     – Tikhonov weight for the Poly2 normal equations (≥ 0).
//	HiddenLayers    – one or two positive hidden-layer sizes (ANN only).
//	ValidationSplit – held-out fraction in [0, 1) for ANN early selection.
//	Epochs          – full-batch gradient steps for the ANN (> 0).
//	LearningRate    – gradient step size (> 0).
//	Penalty         – value substituted for every output when prediction
//	                  fails (finite; large for minimization problems).
type Options struct {
	Samples         int
	MaxAttempts     int
	Sampling        Sampling
	RequireSuccess  bool
	RequireFeasible bool
	Seed            int64

	Kind            Kind
	RidgeLambda     float64
	HiddenLayers    []int
	ValidationSplit float64
	Epochs          int
	LearningRate    float64
	Penalty         float64
}

// DefaultOptions returns the canonical training configuration.
//
// Defaults:
//   - Samples:         64, MaxAttempts: 256 (4× the target)
//   - Sampling:        LatinHypercube
//   - RequireSuccess:  true, RequireFeasible: false
//   - Kind:            Poly2, RidgeLambda: 1e-6
//   - HiddenLayers:    [16], ValidationSplit: 0.2, Epochs: 500,
//     LearningRate: 0.05 (used only when Kind == ANN)
//   - Penalty:         1e9
func DefaultOptions() Options {
	return Options{
		Samples:         64,
		MaxAttempts:     256,
		Sampling:        LatinHypercube,
		RequireSuccess:  true,
		RequireFeasible: false,
		Seed:            0,
		Kind:            Poly2,
		RidgeLambda:     1e-6,
		HiddenLayers:    []int{16},
		ValidationSplit: 0.2,
		Epochs:          500,
		LearningRate:    0.05,
		Penalty:         1e9,
	}
}
