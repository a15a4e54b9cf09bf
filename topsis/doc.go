// Package topsis implements the Technique for Order of Preference by
// Similarity to Ideal Solution, the compromise-selection step that turns a
// Pareto front into a single recommended candidate.
//
// What TOPSIS does:
//
//	Given a matrix of minimized objective values (rows = candidates,
//	columns = objectives) and a weight per objective, TOPSIS normalizes
//	each column by its Euclidean norm, applies the weights, and measures
//	every candidate's distance to the ideal point (per-column minimum)
//	and the anti-ideal point (per-column maximum). The candidate with the
//	highest relative closeness
//
//	    C = d⁻ / (d⁺ + d⁻)
//
//	is the recommended compromise: simultaneously close to the best
//	conceivable row and far from the worst.
//
// Conventions:
//   - All objectives are minimized; the ideal point is the column-wise
//     minimum of the weighted matrix.
//   - nil weights mean equal importance. Explicit weights must be positive
//     and are normalized to sum to one.
//   - Closeness scores always lie in [0, 1]; ties resolve to the smallest
//     row index so selection is deterministic.
//
// Errors are returned as sentinel values (ErrNoCandidates, ErrBadWeights,
// ErrRaggedMatrix, ErrNonFiniteInput); the package never panics on user
// input and performs no logging.
//
// Use Select for the full pipeline, or Scores when the caller wants the
// whole closeness vector rather than the single winner.
package topsis
