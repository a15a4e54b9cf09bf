// Package core - the Individual value type.
//
// An Individual is one candidate solution: its decision variables, the
// objective/constraint values produced by exactly one evaluation, and the
// rank/crowding metrics recomputed every generation by the Population.
package core

import "math"

// Individual is a single candidate solution.
//
// Lifecycle:
//   - Created during initialization or breeding with Variables set.
//   - Objectives/Constraints/Feasible populated once per evaluation call.
//   - Rank/Crowding recomputed every generation by Population.RankAndCrowd.
type Individual struct {
	// Variables is the fixed-length decision vector.
	Variables []float64

	// Objectives holds one minimized value per problem objective.
	Objectives []float64

	// Constraints holds one value per problem constraint (≤ 0 feasible).
	Constraints []float64

	// Evaluated reports whether Objectives/Constraints were populated.
	Evaluated bool

	// Feasible reports all constraints ≤ 0 (true for unconstrained problems).
	Feasible bool

	// Rank is the 1-based non-domination front index (1 = best).
	Rank int

	// Crowding is the crowding distance (higher = more valuable diversity).
	Crowding float64
}

// SetEvaluation stores the outcome of one Evaluator call on the individual
// and derives the feasibility flag. The slices are copied; the individual
// never aliases evaluator-owned memory.
//
// Complexity: O(m + c) over objective and constraint counts.
func (ind *Individual) SetEvaluation(ev Evaluation) {
	ind.Objectives = append(ind.Objectives[:0], ev.Objectives...)
	ind.Constraints = append(ind.Constraints[:0], ev.Constraints...)
	ind.Evaluated = true
	ind.Feasible = true

	var i int
	for i = 0; i < len(ind.Constraints); i++ {
		if ind.Constraints[i] > 0 {
			ind.Feasible = false
			break
		}
	}
}

// Clone returns a deep copy with freshly allocated slices.
//
// Complexity: O(n + m + c).
func (ind *Individual) Clone() Individual {
	out := *ind
	out.Variables = append([]float64(nil), ind.Variables...)
	out.Objectives = append([]float64(nil), ind.Objectives...)
	out.Constraints = append([]float64(nil), ind.Constraints...)

	return out
}

// TotalViolation sums positive constraint values; 0 means feasible.
//
// Complexity: O(c).
func (ind *Individual) TotalViolation() float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(ind.Constraints); i++ {
		if ind.Constraints[i] > 0 {
			sum += ind.Constraints[i]
		}
	}

	return sum
}

// FiniteObjectives reports whether every objective value is finite.
//
// Complexity: O(m).
func (ind *Individual) FiniteObjectives() bool {
	var i int
	for i = 0; i < len(ind.Objectives); i++ {
		if !isFinite(ind.Objectives[i]) {
			return false
		}
	}

	return true
}

// Dominates reports constrained dominance of a over b:
//  1. a feasible, b infeasible ⇒ a dominates.
//  2. Both infeasible ⇒ smaller total constraint violation dominates.
//  3. Both feasible ⇒ plain minimize-dominance: a ≤ b in every objective and
//     a < b in at least one.
//
// Complexity: O(m + c).
func Dominates(a, b *Individual) bool {
	if a.Feasible && !b.Feasible {
		return true
	}
	if !a.Feasible && b.Feasible {
		return false
	}
	if !a.Feasible && !b.Feasible {
		return a.TotalViolation() < b.TotalViolation()
	}

	var (
		strict bool // a strictly better in at least one objective
		i      int
	)
	for i = 0; i < len(a.Objectives); i++ {
		if a.Objectives[i] > b.Objectives[i] {
			return false
		}
		if a.Objectives[i] < b.Objectives[i] {
			strict = true
		}
	}

	return strict
}

// Better is the rank/crowding comparator used everywhere an individual
// ordering is needed: smaller rank wins; at equal rank, larger crowding
// distance wins.
//
// Complexity: O(1).
func Better(a, b *Individual) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}

	return a.Crowding > b.Crowding
}

// isFinite reports x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
