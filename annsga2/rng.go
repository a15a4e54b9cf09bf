// Package annsga2 - seed derivation across pipeline stages.
//
// The evolution and training stages each own an independent RNG stream. When
// the caller sets only the evolution seed, the training seed is derived from
// it through a SplitMix64-style mix so a single knob reproduces the whole
// run without correlating the two streams.
package annsga2

// trainingSeedStream tags the derived training stream.
const trainingSeedStream uint64 = 0x54524149 // "TRAI"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed.
//
// Rationale:
//   - We want independent substreams derived from one user-facing seed.
//   - The SplitMix64 finalizer eliminates correlations: small input changes
//     produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// resolveTrainingSeed picks the training seed: an explicit one wins; an
// unset one is derived from the evolution seed when that is set; both unset
// falls through to the training stage's own zero-seed policy.
//
// Complexity: O(1).
func resolveTrainingSeed(evolutionSeed, trainingSeed int64) int64 {
	if trainingSeed != 0 || evolutionSeed == 0 {
		return trainingSeed
	}

	return deriveSeed(evolutionSeed, trainingSeedStream)
}
