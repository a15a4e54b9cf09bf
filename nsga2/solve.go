// Package nsga2 - the generational loop.
//
// State machine: Initialized → Evolving → Terminated.
//
//   - Initialize: sample PopulationSize individuals uniformly within bounds,
//     evaluate all through the bound Evaluator, rank and crowd.
//   - Evolving (one generation): resolve η values, breed exactly
//     PopulationSize offspring (tournament → SBX with probability
//     CrossoverRate, else parent copies → polynomial mutation), evaluate the
//     offspring batch, merge parents+offspring, re-rank the combined set,
//     and truncate elitistically back to PopulationSize.
//   - Terminated: after MaxGenerations, expose the final population and its
//     first front.
//
// Design principles:
//   - Deterministic: one seeded RNG stream drives every draw in fixed order;
//     batch evaluation is slot-exact and never touches the stream.
//   - Failure as data: malformed or failed evaluations become +Inf sentinel
//     payloads that rank to the worst fronts; the loop never retries and
//     never aborts on them.
//   - Strict sentinels: all fatal errors surface from validateAll before any
//     evaluation work begins.
package nsga2

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/moea/core"
)

// Optimize runs NSGA-II on problem through evaluator.
//
// Contracts:
//   - problem and evaluator non-nil; opts valid (see validateAll).
//   - evaluator may additionally implement core.BatchEvaluator; otherwise a
//     sequential wrapper is used, or a bounded-parallel one when
//     opts.MaxParallelEval > 1.
//
// Errors: ErrNilEvaluator, ErrBad* from this package, core.Err* for problem
// shape violations.
//
// Complexity: O(G·m·N²) plus (G+1)·N evaluator calls.
func Optimize(problem core.Problem, evaluator core.Evaluator, opts Options) (Result, error) {
	if err := validateAll(problem, evaluator, opts); err != nil {
		return Result{}, err
	}

	var (
		rng    = rngFromSeed(opts.Seed)
		bounds = problem.VarBounds()
		batch  = bindBatch(evaluator, opts.MaxParallelEval)
		res    Result
	)

	// Initialize: uniform sampling inside bounds, then one evaluation batch.
	pop := make(core.Population, opts.PopulationSize)
	xs := make([][]float64, opts.PopulationSize)

	var i int
	for i = 0; i < opts.PopulationSize; i++ {
		pop[i].Variables = make([]float64, problem.Dimension())
		sampleWithin(pop[i].Variables, bounds, rng)
		xs[i] = pop[i].Variables
	}
	evaluateInto(pop, xs, batch, problem, &res.Evaluations)

	fronts := pop.RankAndCrowd()
	res.History = append(res.History, record(pop, fronts, 0))

	// Evolving: one merged-and-truncated step per generation.
	var gen int
	for gen = 1; gen <= opts.MaxGenerations; gen++ {
		etaC, etaM := operatorEtas(opts, gen)

		offspring := breed(pop, bounds, etaC, etaM, opts, rng)
		evaluateInto(offspring, variables(offspring), batch, problem, &res.Evaluations)

		// Merge parents+offspring (≤ 2N), re-rank, truncate elitistically.
		combined := append(pop.Clone(), offspring...)
		combined.RankAndCrowd()
		pop = combined.Truncate(opts.PopulationSize)
		fronts = pop.RankAndCrowd()

		res.History = append(res.History, record(pop, fronts, gen))
	}

	// Terminated: final population and its first front.
	res.Population = pop
	res.Front = pop.First()

	return res, nil
}

// bindBatch resolves the batch-evaluation strategy for the run.
//
// Complexity: O(1).
func bindBatch(evaluator core.Evaluator, maxParallel int) core.BatchEvaluator {
	if maxParallel > 1 {
		return core.Parallel(evaluator, maxParallel)
	}

	return core.AsBatch(evaluator)
}

// breed generates exactly len(pop) offspring: tournament ×2 → SBX with
// probability CrossoverRate (else parent copies) → polynomial mutation,
// always attempted at the derived per-variable probability.
//
// Complexity: O(N·n) plus RNG draws.
func breed(pop core.Population, bounds []core.Bounds, etaC, etaM float64, opts Options, rng *rand.Rand) core.Population {
	var (
		size     = len(pop)
		perVar   = opts.MutationRate / float64(len(bounds))
		children = make(core.Population, 0, size)
	)

	for len(children) < size {
		var (
			a = tournament(pop, rng)
			b = tournament(pop, rng)
		)

		var c1, c2 []float64
		if rng.Float64() <= opts.CrossoverRate {
			c1, c2 = crossover(pop[a].Variables, pop[b].Variables, bounds, etaC, rng)
		} else {
			c1 = append([]float64(nil), pop[a].Variables...)
			c2 = append([]float64(nil), pop[b].Variables...)
		}

		mutate(c1, bounds, etaM, perVar, rng)
		mutate(c2, bounds, etaM, perVar, rng)

		children = append(children, core.Individual{Variables: c1})
		if len(children) < size {
			children = append(children, core.Individual{Variables: c2})
		}
	}

	return children
}

// variables collects the variable vectors of a population for one batch call.
//
// Complexity: O(N).
func variables(pop core.Population) [][]float64 {
	xs := make([][]float64, len(pop))

	var i int
	for i = 0; i < len(pop); i++ {
		xs[i] = pop[i].Variables
	}

	return xs
}

// evaluateInto runs one blocking batch and stores conformed results on the
// individuals, incrementing the evaluation counter by the batch size.
//
// Complexity: O(N) evaluator calls.
func evaluateInto(pop core.Population, xs [][]float64, batch core.BatchEvaluator, problem core.Problem, count *int) {
	evs := batch.EvaluateBatch(xs)
	*count += len(xs)

	var i int
	for i = 0; i < len(pop); i++ {
		pop[i].SetEvaluation(conform(evs[i], problem.NumObjectives(), problem.NumConstraints()))
	}
}

// conform normalizes an Evaluation into the problem's shape so that ranking
// never indexes out of range: a malformed objective vector is replaced by a
// +Inf sentinel payload (and a violated constraint, making it infeasible),
// and NaN objectives become +Inf so the dominance order stays total.
//
// Complexity: O(m + c).
func conform(ev core.Evaluation, m, c int) core.Evaluation {
	if len(ev.Objectives) != m || (len(ev.Constraints) != c && len(ev.Constraints) != 0) {
		out := core.Evaluation{
			Objectives:  make([]float64, m),
			Constraints: make([]float64, c),
			OK:          false,
			Message:     ev.Message,
		}

		var i int
		for i = 0; i < m; i++ {
			out.Objectives[i] = math.Inf(1)
		}
		for i = 0; i < c; i++ {
			out.Constraints[i] = math.Inf(1)
		}

		return out
	}

	var i int
	for i = 0; i < len(ev.Objectives); i++ {
		if math.IsNaN(ev.Objectives[i]) {
			ev.Objectives[i] = math.Inf(1)
		}
	}
	for i = 0; i < len(ev.Constraints); i++ {
		if math.IsNaN(ev.Constraints[i]) {
			ev.Constraints[i] = math.Inf(1)
		}
	}

	return ev
}

// record builds the per-generation diagnostic entry: first-front size and
// per-objective minimum across the population.
//
// Complexity: O(N·m).
func record(pop core.Population, fronts [][]int, generation int) GenerationRecord {
	rec := GenerationRecord{Generation: generation}
	if len(fronts) > 0 {
		rec.FrontSize = len(fronts[0])
	}
	if len(pop) == 0 {
		return rec
	}

	rec.Best = make([]float64, len(pop[0].Objectives))

	var i, j int
	for j = 0; j < len(rec.Best); j++ {
		rec.Best[j] = math.Inf(1)
	}
	for i = 0; i < len(pop); i++ {
		for j = 0; j < len(pop[i].Objectives); j++ {
			if pop[i].Objectives[j] < rec.Best[j] {
				rec.Best[j] = pop[i].Objectives[j]
			}
		}
	}

	return rec
}
