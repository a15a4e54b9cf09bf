// Package annsga2 - the train → evolve → verify → decide pipeline.
package annsga2

import (
	"math"

	"github.com/katalvlaran/moea/core"
	"github.com/katalvlaran/moea/nsga2"
	"github.com/katalvlaran/moea/surrogate"
	"github.com/katalvlaran/moea/topsis"
)

// Optimize runs the surrogate-assisted pipeline on problem through the
// exact evaluator.
//
// Contracts:
//   - problem and exact non-nil; every stage's options valid (all checked
//     upfront, before the first exact evaluation).
//   - exact is queried only during training and verification; the
//     evolutionary loop runs entirely against the fitted surrogate.
//
// Errors: ErrNilEvaluator, ErrBadVerifyLimit, ErrBadDecisionWeights, plus
// the sentinel sets of core, nsga2 and surrogate. A partially-filled Result
// accompanies stage errors so training diagnostics survive a failed fit.
//
// Complexity: Training.MaxAttempts + verification exact calls, plus the
// nsga2 loop cost against the surrogate.
func Optimize(problem core.Problem, exact core.Evaluator, opts Options) (Result, error) {
	if err := validateAll(problem, exact, opts); err != nil {
		return Result{}, err
	}

	var res Result

	// Train: bounded exact sampling, surrogate fit.
	opts.Training.Seed = resolveTrainingSeed(opts.Evolution.Seed, opts.Training.Seed)

	model, diag, err := surrogate.Train(problem, exact, opts.Training)
	res.Training = diag
	if err != nil {
		return res, err
	}
	res.Model = model

	adapter, err := surrogate.NewAdapter(model)
	if err != nil {
		return res, err
	}

	// Evolve: NSGA-II against the surrogate; zero exact evaluations.
	res.Evolution, err = nsga2.Optimize(problem, adapter, opts.Evolution)
	if err != nil {
		return res, err
	}
	res.SurrogateFront = res.Evolution.Front

	// Verify: exact re-evaluation and re-ranking of the surrogate front.
	if opts.Verification.Enabled && opts.Verification.VerifyParetoFront {
		res.ExactFront = verifyFront(
			res.SurrogateFront, exact, problem,
			opts.Verification.VerifyParetoLimit, &res.ExactEvaluations,
		)
	}

	// Decide: TOPSIS over the best available front.
	res.Decision, err = decide(&res, exact, problem, opts.Verification)
	if err != nil {
		return res, err
	}

	return res, nil
}

// validateAll verifies the problem, the exact evaluator and every stage's
// options before any evaluation work begins.
//
// Complexity: O(n + m) over dimension and objective count.
func validateAll(problem core.Problem, exact core.Evaluator, opts Options) error {
	if err := core.ValidateProblem(problem); err != nil {
		return err
	}
	if exact == nil {
		return ErrNilEvaluator
	}
	if err := nsga2.ValidateOptions(opts.Evolution); err != nil {
		return err
	}
	if err := surrogate.ValidateOptions(opts.Training); err != nil {
		return err
	}
	if opts.Verification.VerifyParetoLimit < 0 {
		return ErrBadVerifyLimit
	}

	if w := opts.Verification.TOPSISWeights; w != nil {
		if len(w) != problem.NumObjectives() {
			return ErrBadDecisionWeights
		}
		for _, v := range w {
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrBadDecisionWeights
			}
		}
	}

	return nil
}

// verifyFront re-evaluates up to limit front members exactly (0 means all),
// re-ranks the verified subset under true values and returns its first
// front. Malformed exact evaluations become +Inf sentinel payloads so they
// rank behind every usable candidate instead of corrupting the sort.
//
// Complexity: O(k) exact calls plus O(m·k²) ranking, k = verified count.
func verifyFront(front core.Population, exact core.Evaluator, problem core.Problem, limit int, count *int) core.Population {
	k := len(front)
	if limit > 0 && limit < k {
		k = limit
	}
	if k == 0 {
		return nil
	}

	verified := make(core.Population, k)

	var i int
	for i = 0; i < k; i++ {
		verified[i] = front[i].Clone()
		verified[i].SetEvaluation(conform(
			exact.Evaluate(verified[i].Variables),
			problem.NumObjectives(), problem.NumConstraints(),
		))
		*count++
	}
	verified.RankAndCrowd()

	return verified.First()
}

// decide runs TOPSIS over the exact front when present, else the surrogate
// front, restricted to feasible candidates with finite objectives. No
// eligible candidate means no decision, not an error. When the decision was
// made over surrogate values and VerifyTOPSIS is set, the winner is
// re-evaluated exactly so the Decision carries true values.
//
// Complexity: O(rows·cols) for the ranking plus at most one exact call.
func decide(res *Result, exact core.Evaluator, problem core.Problem, v Verification) (*Decision, error) {
	var (
		front    = res.ExactFront
		verified = true
	)
	if len(front) == 0 {
		front = res.SurrogateFront
		verified = false
	}

	// Eligibility filter: feasible, finite objectives.
	var (
		rows    [][]float64
		indices []int
		i       int
	)
	for i = 0; i < len(front); i++ {
		if !front[i].Feasible || !front[i].FiniteObjectives() {
			continue
		}
		rows = append(rows, front[i].Objectives)
		indices = append(indices, i)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	choice, err := topsis.Select(rows, v.TOPSISWeights)
	if err != nil {
		return nil, err
	}

	winner := &front[indices[choice.Index]]
	dec := &Decision{
		Index:       indices[choice.Index],
		Closeness:   choice.Closeness,
		Variables:   append([]float64(nil), winner.Variables...),
		Objectives:  append([]float64(nil), winner.Objectives...),
		Constraints: append([]float64(nil), winner.Constraints...),
		Feasible:    winner.Feasible,
		Verified:    verified,
	}

	// Confirm a surrogate-valued decision with one exact call.
	if !verified && v.Enabled && v.VerifyTOPSIS {
		ev := conform(exact.Evaluate(dec.Variables), problem.NumObjectives(), problem.NumConstraints())
		res.ExactEvaluations++

		var confirmed core.Individual
		confirmed.SetEvaluation(ev)

		dec.Objectives = confirmed.Objectives
		dec.Constraints = confirmed.Constraints
		dec.Feasible = confirmed.Feasible
		dec.Verified = true
	}

	return dec, nil
}

// conform normalizes an exact Evaluation into the problem's shape: a
// malformed vector becomes a +Inf sentinel payload (and infeasible), NaN
// values become +Inf so orderings stay total.
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
