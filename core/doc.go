// Package core provides the fundamental primitives shared by every optimizer
// in moea: the Problem and Evaluator contracts, the Individual and Population
// value types, constrained dominance, fast non-dominated sorting, crowding
// distance, and batch evaluation (sequential or bounded-parallel).
//
// Design principles:
//   - Value semantics: Individuals live in contiguous Population slices;
//     fronts are slices of integer indices into the population (arena+index).
//     No hidden aliasing across generations — breeding always clones.
//   - Minimization convention: every objective is minimized; a constraint
//     value ≤ 0 is feasible.
//   - No logging, no panics on user input — only sentinel errors.
//   - Evaluators signal ordinary failures through Evaluation.OK and penalty
//     values, never through panics; a failed evaluation is data, not an event.
//
// Concurrency:
//   - Population and Individual are not safe for concurrent mutation.
//   - Parallel batch evaluation writes distinct result slots and merges only
//     after all evaluations complete; see Parallel.
package core
