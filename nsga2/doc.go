// Package nsga2 provides the baseline NSGA-II multi-objective optimizer.
//
// It implements the elitist generational loop of Deb's Non-dominated Sorting
// Genetic Algorithm II on top of the core primitives:
//
//   - Optimize — initialize uniformly within bounds, evaluate through the
//     bound Evaluator, then per generation: binary tournament selection,
//     SBX crossover, polynomial mutation, offspring evaluation, parent+child
//     merge, fast non-dominated re-ranking, and exact (rank, crowding)
//     environmental selection.
//
//   - Complexity: O(G·m·N²) time for G generations, N individuals and
//     m objectives, plus (G+1)·N evaluator calls.
//
//   - Memory: O(N²) transient during ranking, O(N·n) steady state.
//
// Determinism: every random draw (initial sampling, tournaments, crossover,
// mutation) flows from a single *rand.Rand seeded once per run; fixing the
// seed and the inputs reproduces bit-identical offspring sequences. Parallel
// evaluation never touches that stream.
//
// Failure semantics: an Evaluator call that signals failure is not retried;
// the individual carries sentinel penalty values and ranking naturally pushes
// it to worse fronts. Only invalid configuration aborts — before any
// evaluation work begins.
//
// Use this package when objective evaluations are cheap enough to run the
// evolutionary search directly; see the annsga2 package for the
// surrogate-assisted variant.
package nsga2
