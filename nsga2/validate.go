// Package nsga2 - validation utilities.
//
// Staged validation run once at the head of Optimize, before any evaluation
// work begins:
//  1. Options-only sanity (sizes, rates, distribution indices).
//  2. Problem structure (delegated to core.ValidateProblem).
//  3. Evaluator presence.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
package nsga2

import "github.com/katalvlaran/moea/core"

// validateAll verifies Options + Problem + Evaluator.
//
// Complexity: O(n) over the problem dimension.
func validateAll(problem core.Problem, evaluator core.Evaluator, opts Options) error {
	// Stage 1: Options-only sanity.
	if err := validateOptionsStandalone(opts); err != nil {
		return err
	}

	// Stage 2: Problem structure (nil, dimension, bounds, counts).
	if err := core.ValidateProblem(problem); err != nil {
		return err
	}

	// Stage 3: Evaluator presence.
	if evaluator == nil {
		return ErrNilEvaluator
	}

	return nil
}

// ValidateOptions checks internal consistency of Options without a problem
// or evaluator attached. Callers composing this optimizer into a larger
// pipeline use it to fail fast before spending evaluations elsewhere.
//
// Complexity: O(1).
func ValidateOptions(opts Options) error {
	return validateOptionsStandalone(opts)
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing the problem or evaluator.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	if opts.PopulationSize < 2 {
		return ErrBadPopulationSize
	}
	if opts.MaxGenerations < 1 {
		return ErrBadGenerations
	}
	if opts.CrossoverRate < 0 || opts.CrossoverRate > 1 {
		return ErrBadCrossoverRate
	}
	if opts.MutationRate < 0 {
		return ErrBadMutationRate
	}
	if opts.MaxParallelEval < 0 {
		return ErrBadParallelism
	}

	// Distribution indices: only the active set is validated.
	if opts.UseDynamicOperators {
		if opts.CrossoverDistStart <= 0 || opts.CrossoverDistEnd <= 0 {
			return ErrBadDistIndex
		}
		if opts.MutationDistStart <= 0 || opts.MutationDistEnd <= 0 {
			return ErrBadDistIndex
		}

		return nil
	}
	if opts.CrossoverDistIndex <= 0 || opts.MutationDistIndex <= 0 {
		return ErrBadDistIndex
	}

	return nil
}
