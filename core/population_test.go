// Package core_test validates the fast non-dominated sort, crowding distance
// and environmental selection against the structural front properties:
//  1. Individuals inside one front are mutually non-dominated.
//  2. Every front-k+1 member is dominated by at least one front-k member.
//  3. Recomputation on an unchanged population is idempotent.
package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moea/core"
)

// mkPop builds an evaluated two-objective population from explicit points.
func mkPop(points [][2]float64) core.Population {
	pop := make(core.Population, len(points))
	for i, pt := range points {
		pop[i].Variables = []float64{float64(i)}
		pop[i].SetEvaluation(core.Evaluation{Objectives: []float64{pt[0], pt[1]}, OK: true})
	}

	return pop
}

// randomPop draws n random two-objective points from a fixed seed.
func randomPop(n int) core.Population {
	rng := rand.New(rand.NewSource(7))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}

	return mkPop(pts)
}

// TestRank_KnownFronts checks ranks on a hand-built layered set.
func TestRank_KnownFronts(t *testing.T) {
	// (1,1) dominates (2,2) dominates (3,3); (1,3)/(3,1) are front-1 peers.
	pop := mkPop([][2]float64{{1, 1}, {2, 2}, {3, 3}, {1, 3}, {3, 1}})
	fronts := pop.Rank()

	require.Len(t, fronts, 3)
	assert.ElementsMatch(t, []int{0, 3, 4}, fronts[0])
	assert.ElementsMatch(t, []int{1}, fronts[1])
	assert.ElementsMatch(t, []int{2}, fronts[2])
	assert.Equal(t, 1, pop[0].Rank, "rank is 1-based")
	assert.Equal(t, 3, pop[2].Rank)
}

// TestRank_FrontProperties verifies mutual non-dominance inside fronts and
// cross-front domination on a random population.
func TestRank_FrontProperties(t *testing.T) {
	pop := randomPop(60)
	fronts := pop.Rank()
	require.NotEmpty(t, fronts)

	// Property 1: no individual dominates a member of its own front.
	for _, front := range fronts {
		for _, i := range front {
			for _, j := range front {
				if i == j {
					continue
				}
				assert.False(t, core.Dominates(&pop[i], &pop[j]),
					"front members must be mutually non-dominated")
			}
		}
	}

	// Property 2: each front-k+1 member is dominated by some front-k member.
	for k := 1; k < len(fronts); k++ {
		for _, j := range fronts[k] {
			dominated := false
			for _, i := range fronts[k-1] {
				if core.Dominates(&pop[i], &pop[j]) {
					dominated = true
					break
				}
			}
			assert.True(t, dominated, "front k+1 member must be dominated from front k")
		}
	}
}

// TestCrowdFront_BoundariesAndInterior checks ∞ boundaries and the
// normalized interior accumulation.
func TestCrowdFront_BoundariesAndInterior(t *testing.T) {
	// Single front on a line: objectives perfectly anti-correlated.
	pop := mkPop([][2]float64{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}})
	fronts := pop.RankAndCrowd()
	require.Len(t, fronts, 1)

	assert.True(t, math.IsInf(pop[0].Crowding, 1), "boundary gets +Inf")
	assert.True(t, math.IsInf(pop[4].Crowding, 1), "boundary gets +Inf")

	// Interior: (next−prev)/range per objective = (2/4)+(2/4) = 1.
	for i := 1; i <= 3; i++ {
		assert.InDelta(t, 1.0, pop[i].Crowding, 1e-12)
	}
}

// TestCrowdFront_ZeroRange keeps a degenerate objective from dividing by zero.
func TestCrowdFront_ZeroRange(t *testing.T) {
	pop := mkPop([][2]float64{{0, 5}, {1, 5}, {2, 5}})
	pop.RankAndCrowd()

	assert.True(t, math.IsInf(pop[0].Crowding, 1))
	assert.True(t, math.IsInf(pop[2].Crowding, 1))
	// Second objective contributes 0 (range 0); only the first counts.
	assert.InDelta(t, 1.0, pop[1].Crowding, 1e-12)
}

// TestRankAndCrowd_Idempotent re-runs ranking on an unchanged population.
func TestRankAndCrowd_Idempotent(t *testing.T) {
	pop := randomPop(40)
	pop.RankAndCrowd()

	ranks := make([]int, len(pop))
	crowds := make([]float64, len(pop))
	for i := range pop {
		ranks[i] = pop[i].Rank
		crowds[i] = pop[i].Crowding
	}

	pop.RankAndCrowd()
	for i := range pop {
		assert.Equal(t, ranks[i], pop[i].Rank, "rank must be idempotent")
		assert.Equal(t, crowds[i], pop[i].Crowding, "crowding must be idempotent")
	}
}

// TestTruncate_ElitistSelection keeps exactly size individuals and never
// discards a better-ranked one in favor of a worse one.
func TestTruncate_ElitistSelection(t *testing.T) {
	pop := randomPop(50)
	pop.RankAndCrowd()

	kept := pop.Truncate(20)
	require.Len(t, kept, 20)

	worstKept := 0
	for i := range kept {
		if kept[i].Rank > worstKept {
			worstKept = kept[i].Rank
		}
	}
	// Count how many individuals rank strictly better than the worst kept
	// rank; all of them must have survived.
	strictlyBetter := 0
	for i := range pop {
		if pop[i].Rank < worstKept {
			strictlyBetter++
		}
	}
	assert.LessOrEqual(t, strictlyBetter, 20, "elitism: better ranks fit entirely")

	keptBetter := 0
	for i := range kept {
		if kept[i].Rank < worstKept {
			keptBetter++
		}
	}
	assert.Equal(t, strictlyBetter, keptBetter, "every strictly better-ranked individual survives")
}

// TestFirst_DeepCopy returns the first front without aliasing.
func TestFirst_DeepCopy(t *testing.T) {
	pop := mkPop([][2]float64{{1, 1}, {2, 2}})
	pop.RankAndCrowd()

	front := pop.First()
	require.Len(t, front, 1)
	front[0].Variables[0] = 99
	assert.Equal(t, 0.0, pop[0].Variables[0], "First must deep-copy")
}
