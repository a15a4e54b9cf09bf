// Package surrogate trains cheap approximations of expensive evaluators and
// wraps them behind the same Evaluator contract the optimizers consume.
//
// Pipeline (Train):
//
//  1. Sample candidate inputs inside the problem bounds — independent uniform
//     draws or Latin-hypercube stratification.
//  2. Query the exact Evaluator and reject candidates per the acceptance
//     rules (failed evaluations, infeasible points, non-finite or malformed
//     outputs), until the requested sample count is collected or the attempt
//     budget is exhausted. A shortfall is a diagnostic, not an error.
//  3. Standardize inputs and outputs (per-column mean/std, std floored to 1)
//     and fit the requested model:
//     • Poly2 — quadratic feature expansion (bias, linear, squared and
//     pairwise cross terms) solved by ridge-regularized least squares.
//     • ANN — a feed-forward network with one or two ReLU hidden layers and
//     a linear output, trained by full-batch gradient descent against a
//     held-out validation split (best-validation weights kept).
//
// The Adapter implements core.Evaluator on a fitted Model: it destandardizes
// predictions back to problem units and, on any failure (shape mismatch,
// unfit or unknown model, non-finite output), returns the model's configured
// penalty value for every objective and constraint — the evolutionary loop
// never crashes on a bad prediction.
//
// Determinism: sampling and the train/validation split draw from one
// *rand.Rand seeded once per Train call.
package surrogate
