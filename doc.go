// Package moea is your in-memory toolbox for multi-objective evolutionary
// optimization — from population primitives to surrogate-assisted search and
// compromise decision making.
//
// 🚀 What is moea?
//
//	A deterministic, library-first implementation of NSGA-II and friends:
//		• Core primitives: individuals, populations, constrained dominance,
//		  fast non-dominated sorting, crowding distance
//		• Genetic operators: binary tournament, SBX crossover, polynomial
//		  mutation, dynamic distribution-index schedules
//		• NSGA-II: the full elitist generational loop with per-generation
//		  history records
//		• Surrogates: Latin-hypercube / uniform sampling, ridge-regressed
//		  quadratic (poly2) and feed-forward ANN models, penalty-safe
//		  evaluator adapters
//		• Decision: TOPSIS selection of a single compromise solution from a
//		  Pareto front
//
// ✨ Why choose moea?
//
//   - Reproducible – every random draw flows from one explicit seed
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Honest failure handling – bad evaluations become data, never crashes
//   - Extensible – bring your own Evaluator; exact and surrogate evaluators
//     share a single narrow contract
//
// Everything is organized under five subpackages:
//
//	core/      — Problem/Evaluator contracts, Individual, Population, ranking
//	nsga2/     — the baseline NSGA-II optimizer
//	surrogate/ — sampling, model training, and the surrogate evaluator adapter
//	topsis/    — multi-criteria compromise selection
//	annsga2/   — the surrogate-assisted NSGA-II pipeline (train→evolve→verify)
//
// Typical flow: define a core.Problem and an exact core.Evaluator, run
// nsga2.Optimize for the plain algorithm, or annsga2.Optimize to train a
// cheap surrogate first, evolve against it, verify the resulting front with
// the exact evaluator, and pick one solution via TOPSIS.
//
//	go get github.com/katalvlaran/moea
package moea
