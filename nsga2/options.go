// Package nsga2 - run configuration.
package nsga2

// Options configures one NSGA-II run.
//
// Loop:
//
//	PopulationSize – steady-state population size (≥ 2).
//	MaxGenerations – number of generations to evolve (≥ 1).
//
// Operators:
//
//	CrossoverRate       – probability an SBX crossover is attempted per
//	                      offspring pair; otherwise parents are copied.
//	                      Must lie in [0, 1].
//	MutationRate        – normalized mutation rate; the actual per-variable
//	                      mutation probability is MutationRate / Dimension.
//	                      Must be ≥ 0.
//	CrossoverDistIndex  – static SBX distribution index η_c (> 0).
//	MutationDistIndex   – static polynomial-mutation index η_m (> 0).
//	UseDynamicOperators – when true, η_c and η_m linearly interpolate
//	                      between the *Start and *End values as a function
//	                      of (generation−1)/(MaxGenerations−1): wide
//	                      exploration early, fine exploitation late. The
//	                      static indices are ignored in that mode.
//
// Run:
//
//	Seed            – RNG seed; 0 selects a fixed default seed so runs
//	                  stay reproducible by default.
//	MaxParallelEval – upper bound on concurrent evaluator calls per batch;
//	                  0 or 1 evaluates sequentially. Parallelism never
//	                  affects the operator RNG stream.
type Options struct {
	PopulationSize int
	MaxGenerations int

	CrossoverRate float64
	MutationRate  float64

	CrossoverDistIndex float64
	MutationDistIndex  float64

	UseDynamicOperators bool
	CrossoverDistStart  float64
	CrossoverDistEnd    float64
	MutationDistStart   float64
	MutationDistEnd     float64

	Seed            int64
	MaxParallelEval int
}

// DefaultOptions returns the canonical NSGA-II configuration.
//
// Defaults:
//   - PopulationSize:      100
//   - MaxGenerations:      50
//   - CrossoverRate:       0.9
//   - MutationRate:        1.0 (one expected mutation per individual)
//   - CrossoverDistIndex:  20
//   - MutationDistIndex:   20
//   - UseDynamicOperators: false; schedule bounds 2→20 (crossover), 5→20
//     (mutation) when enabled
//   - Seed:                0 (fixed default stream)
//   - MaxParallelEval:     0 (sequential)
func DefaultOptions() Options {
	return Options{
		PopulationSize:      100,
		MaxGenerations:      50,
		CrossoverRate:       0.9,
		MutationRate:        1.0,
		CrossoverDistIndex:  20,
		MutationDistIndex:   20,
		UseDynamicOperators: false,
		CrossoverDistStart:  2,
		CrossoverDistEnd:    20,
		MutationDistStart:   5,
		MutationDistEnd:     20,
		Seed:                0,
		MaxParallelEval:     0,
	}
}
