// Package annsga2 - pipeline configuration.
package annsga2

import (
	"github.com/katalvlaran/moea/nsga2"
	"github.com/katalvlaran/moea/surrogate"
)

// Verification configures the exact re-evaluation and decision stages.
//
// Fields:
//
//	Enabled           – master switch; false skips verification and decides
//	                    over the surrogate front directly.
//	VerifyParetoFront – re-evaluate surrogate-front members exactly and
//	                    re-rank them under true values.
//	VerifyParetoLimit – cap on exact re-evaluations of the front; 0 means
//	                    the whole front.
//	VerifyTOPSIS      – when no exact front was computed, re-evaluate the
//	                    TOPSIS winner exactly so the Decision carries true
//	                    values.
//	TOPSISWeights     – per-objective decision weights; nil means equal.
type Verification struct {
	Enabled           bool
	VerifyParetoFront bool
	VerifyParetoLimit int
	VerifyTOPSIS      bool
	TOPSISWeights     []float64
}

// Options configures one surrogate-assisted run. Each stage carries its own
// option block; see nsga2.Options and surrogate.Options for the details.
type Options struct {
	// Evolution configures the NSGA-II loop run against the surrogate.
	Evolution nsga2.Options

	// Training configures surrogate sampling and fitting.
	Training surrogate.Options

	// Verification configures the exact re-evaluation and decision stages.
	Verification Verification
}

// DefaultOptions returns the canonical pipeline configuration: default
// evolution and training stages, full verification, equal decision weights.
func DefaultOptions() Options {
	return Options{
		Evolution: nsga2.DefaultOptions(),
		Training:  surrogate.DefaultOptions(),
		Verification: Verification{
			Enabled:           true,
			VerifyParetoFront: true,
			VerifyParetoLimit: 0,
			VerifyTOPSIS:      true,
			TOPSISWeights:     nil,
		},
	}
}
