// Package core - Population ranking and crowding.
//
// This file implements the fast non-dominated sort and the crowding-distance
// metric of NSGA-II over a contiguous Population slice. Fronts are returned
// as slices of integer indices into the population (arena + index pattern),
// so callers never hold aliased pointers across generations.
//
// Design principles:
//   - Deterministic: identical populations yield identical fronts, ranks and
//     crowding values (idempotent recomputation).
//   - No hidden allocations beyond the returned front index slices.
//   - Strict sentinels only; no panics on user input.
package core

import (
	"math"
	"sort"
)

// Population is an ordered collection of Individuals. At steady state its
// size equals the configured population size; during the combined
// parent+offspring phase it may temporarily hold up to twice that.
type Population []Individual

// Clone returns a deep copy of the population.
//
// Complexity: O(N·(n+m+c)).
func (p Population) Clone() Population {
	out := make(Population, len(p))

	var i int
	for i = 0; i < len(p); i++ {
		out[i] = p[i].Clone()
	}

	return out
}

// Rank performs the fast non-dominated sort:
// for every individual compute the count of dominators and the list of
// dominated individuals; zero-count individuals form front 1; subsequent
// fronts are peeled by decrementing dominance counts. Assigns 1-based Rank
// to every individual and returns the fronts as index slices.
//
// Complexity: O(m·N²) time, O(N²) space in the dominated lists.
func (p Population) Rank() [][]int {
	var n = len(p)
	if n == 0 {
		return nil
	}

	var (
		dominatedBy = make([]int, n)   // number of individuals dominating i
		dominates   = make([][]int, n) // indices dominated by i
		current     []int              // front under construction
		i, j        int
	)

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(&p[i], &p[j]) {
				dominates[i] = append(dominates[i], j)
			} else if Dominates(&p[j], &p[i]) {
				dominatedBy[i]++
			}
		}
		if dominatedBy[i] == 0 {
			p[i].Rank = 1
			current = append(current, i)
		}
	}

	var fronts [][]int
	fronts = append(fronts, current)

	// Peel subsequent fronts.
	var (
		next []int
		q    int
	)
	for len(current) > 0 {
		next = nil
		for _, i = range current {
			for _, q = range dominates[i] {
				dominatedBy[q]--
				if dominatedBy[q] == 0 {
					p[q].Rank = len(fronts) + 1
					next = append(next, q)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		fronts = append(fronts, next)
		current = next
	}

	return fronts
}

// CrowdFront computes crowding distances for one front (index slice):
// per objective, sort the front by that objective, pin boundary individuals
// to +Inf, and accumulate (next − prev) / (max − min) for interior ones
// (0 contribution when the objective range is 0). Distances sum across
// objectives.
//
// Complexity: O(m·F·log F) for a front of size F.
func (p Population) CrowdFront(front []int) {
	var f = len(front)
	if f == 0 {
		return
	}

	var i int
	for i = 0; i < f; i++ {
		p[front[i]].Crowding = 0
	}
	if f <= 2 {
		// Boundaries only: everyone is a boundary.
		for i = 0; i < f; i++ {
			p[front[i]].Crowding = math.Inf(1)
		}

		return
	}

	var (
		order = make([]int, f) // front order sorted by one objective
		m     = len(p[front[0]].Objectives)
		obj   int
	)
	for obj = 0; obj < m; obj++ {
		copy(order, front)

		var k = obj // capture per-objective index for the comparator
		sort.SliceStable(order, func(a, b int) bool {
			return p[order[a]].Objectives[k] < p[order[b]].Objectives[k]
		})

		p[order[0]].Crowding = math.Inf(1)
		p[order[f-1]].Crowding = math.Inf(1)

		var span = p[order[f-1]].Objectives[obj] - p[order[0]].Objectives[obj]
		if span == 0 {
			continue
		}
		for i = 1; i < f-1; i++ {
			p[order[i]].Crowding += (p[order[i+1]].Objectives[obj] - p[order[i-1]].Objectives[obj]) / span
		}
	}
}

// RankAndCrowd runs Rank and then CrowdFront for every front.
// Idempotent: re-running on an unchanged population yields identical values.
//
// Complexity: O(m·N²).
func (p Population) RankAndCrowd() [][]int {
	fronts := p.Rank()

	var i int
	for i = 0; i < len(fronts); i++ {
		p.CrowdFront(fronts[i])
	}

	return fronts
}

// First returns a deep copy of the current first front (Rank==1).
// Call RankAndCrowd beforehand; an unranked population yields nil.
//
// Complexity: O(F·(n+m+c)).
func (p Population) First() Population {
	var out Population

	var i int
	for i = 0; i < len(p); i++ {
		if p[i].Rank == 1 {
			out = append(out, p[i].Clone())
		}
	}

	return out
}

// Truncate performs environmental selection: sort by the exact lexicographic
// rank/crowding comparator (Better) and keep the first size individuals.
// The truncation is elitist — it never discards a better-ranked individual
// in favor of a worse one. The receiver is not mutated.
//
// Contract: 0 ≤ size ≤ len(p).
//
// Complexity: O(N·log N) plus the copy.
func (p Population) Truncate(size int) Population {
	if size >= len(p) {
		return p.Clone()
	}

	order := make([]int, len(p))
	var i int
	for i = 0; i < len(p); i++ {
		order[i] = i
	}
	// Stable sort keeps insertion order among exact ties for determinism.
	sort.SliceStable(order, func(a, b int) bool {
		return Better(&p[order[a]], &p[order[b]])
	})

	out := make(Population, size)
	for i = 0; i < size; i++ {
		out[i] = p[order[i]].Clone()
	}

	return out
}
