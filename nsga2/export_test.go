// Package nsga2 - exported aliases for white-box testing of the operator
// kernels and the schedule. Test-only file; nothing here ships.
package nsga2

// SBXChildren exposes the per-variable SBX kernel with a pinned u-draw.
var SBXChildren = sbxChildren

// MutateValue exposes the per-variable polynomial-mutation kernel.
var MutateValue = mutateValue

// EtaAt exposes the linear distribution-index interpolation.
var EtaAt = etaAt

// OperatorEtas exposes the per-generation η resolution.
var OperatorEtas = operatorEtas

// Crossover exposes the full-vector SBX wrapper.
var Crossover = crossover

// Mutate exposes the full-vector mutation wrapper.
var Mutate = mutate
