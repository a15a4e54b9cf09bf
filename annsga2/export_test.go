// Package annsga2 - exported aliases for white-box testing of seed
// derivation. Test-only file; nothing here ships.
package annsga2

// DeriveSeed exposes the SplitMix64 mix.
var DeriveSeed = deriveSeed

// ResolveTrainingSeed exposes the training-seed resolution policy.
var ResolveTrainingSeed = resolveTrainingSeed
