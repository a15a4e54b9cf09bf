// Package nsga2 - sentinel errors and result types.
package nsga2

import (
	"errors"

	"github.com/katalvlaran/moea/core"
)

// Sentinel errors returned by Optimize and its validators.
var (
	// ErrNilEvaluator indicates that a nil Evaluator was supplied.
	ErrNilEvaluator = errors.New("nsga2: evaluator is nil")

	// ErrBadPopulationSize indicates PopulationSize < 2.
	ErrBadPopulationSize = errors.New("nsga2: population size must be at least 2")

	// ErrBadGenerations indicates MaxGenerations < 1.
	ErrBadGenerations = errors.New("nsga2: generation count must be at least 1")

	// ErrBadCrossoverRate indicates CrossoverRate outside [0, 1].
	ErrBadCrossoverRate = errors.New("nsga2: crossover rate must lie in [0,1]")

	// ErrBadMutationRate indicates a negative normalized MutationRate.
	ErrBadMutationRate = errors.New("nsga2: mutation rate must be non-negative")

	// ErrBadDistIndex indicates a non-positive distribution index η.
	ErrBadDistIndex = errors.New("nsga2: distribution index must be positive")

	// ErrBadParallelism indicates a negative MaxParallelEval.
	ErrBadParallelism = errors.New("nsga2: parallel evaluation bound must be non-negative")
)

// GenerationRecord captures one generation of the run for diagnostics.
type GenerationRecord struct {
	// Generation is 1-based; record 0 (generation 0) describes the ranked
	// initial population.
	Generation int

	// FrontSize is the size of the first non-dominated front.
	FrontSize int

	// Best holds the per-objective minimum across the population.
	Best []float64
}

// Result is the outcome of an NSGA-II run.
type Result struct {
	// Population is the final population (size == PopulationSize).
	Population core.Population

	// Front is a deep copy of the final first non-dominated front.
	Front core.Population

	// Evaluations counts every Evaluator call made during the run.
	Evaluations int

	// History holds one record per generation, including the initial one.
	History []GenerationRecord
}
