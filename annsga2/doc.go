// Package annsga2 implements surrogate-assisted NSGA-II: the full
// train → evolve → verify → decide pipeline for problems whose exact
// evaluator is too expensive to call inside the evolutionary loop.
//
// Pipeline:
//
//  1. Train — sample the search space and query the exact evaluator a
//     bounded number of times to fit a surrogate model (quadratic
//     regression or a small feed-forward network, see package surrogate).
//
//  2. Evolve — run NSGA-II (package nsga2) against the fitted surrogate
//     instead of the exact evaluator. Every objective and constraint the
//     loop sees is a prediction; the exact evaluator is never touched.
//
//  3. Verify — re-evaluate the surrogate-optimal front exactly (up to a
//     configurable limit), re-rank the verified subset under true values,
//     and expose its first front. This is where surrogate optimism is
//     caught: a predicted-Pareto point may verify as dominated.
//
//  4. Decide — run TOPSIS (package topsis) over the verified front when
//     one exists, else over the surrogate front, restricted to feasible
//     candidates with finite objectives. The winner becomes the Decision.
//
// Budget accounting: Result.ExactEvaluations counts every exact call made
// during verification; training calls are reported separately through
// Result.Training. The evolution itself costs zero exact evaluations.
//
// Determinism: the evolution seed and the training seed are independent;
// when only the evolution seed is set, the training seed is derived from it
// through a SplitMix64 mix so one knob still reproduces the whole run.
//
// All fatal conditions (nil problem/evaluator, malformed options in any
// stage) surface as sentinel errors before the first exact evaluation. No
// logging, no panics.
package annsga2
