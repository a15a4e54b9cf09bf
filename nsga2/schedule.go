// Package nsga2 - dynamic distribution-index schedule.
package nsga2

// etaAt linearly interpolates a distribution index between start and end as
// a function of (generation−1)/(maxGenerations−1). A budget of one generation
// (or less) uses the end value directly.
//
// Rationale: a small η spreads children widely (exploration); a large η keeps
// them near the parents (exploitation). Interpolating start→end trades one
// for the other over the run.
//
// Complexity: O(1).
func etaAt(start, end float64, generation, maxGenerations int) float64 {
	if maxGenerations <= 1 {
		return end
	}

	var t = float64(generation-1) / float64(maxGenerations-1)

	return start + t*(end-start)
}

// operatorEtas resolves the crossover/mutation distribution indices for one
// generation: static values unless UseDynamicOperators is set.
//
// Complexity: O(1).
func operatorEtas(opts Options, generation int) (float64, float64) {
	if !opts.UseDynamicOperators {
		return opts.CrossoverDistIndex, opts.MutationDistIndex
	}

	var (
		etaC = etaAt(opts.CrossoverDistStart, opts.CrossoverDistEnd, generation, opts.MaxGenerations)
		etaM = etaAt(opts.MutationDistStart, opts.MutationDistEnd, generation, opts.MaxGenerations)
	)

	return etaC, etaM
}
