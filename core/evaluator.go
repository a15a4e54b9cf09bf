// Package core - batch evaluation.
//
// Evaluating a generation is the only embarrassingly parallel point of the
// evolutionary loop: each evaluation is pure given an input vector. This file
// provides the sequential and bounded-parallel BatchEvaluator implementations
// behind which that parallelism lives.
//
// Concurrency:
//   - Parallel fans out across a goroutine pool; every worker writes a
//     distinct result slot and the batch call returns only after all results
//     are in (no partial/streaming consumption).
//   - RNG draws never happen here; batch inputs are fully formed upfront, so
//     parallel evaluation cannot perturb the deterministic operator stream.
package core

import "github.com/sourcegraph/conc/pool"

// sequentialBatch evaluates one vector at a time on the calling goroutine.
type sequentialBatch struct {
	ev Evaluator
}

// EvaluateBatch implements BatchEvaluator.
//
// Complexity: O(N) evaluator calls.
func (s sequentialBatch) EvaluateBatch(xs [][]float64) []Evaluation {
	out := make([]Evaluation, len(xs))

	var i int
	for i = 0; i < len(xs); i++ {
		out[i] = s.ev.Evaluate(xs[i])
	}

	return out
}

// parallelBatch fans evaluations out across at most workers goroutines.
type parallelBatch struct {
	ev      Evaluator
	workers int
}

// EvaluateBatch implements BatchEvaluator. Each goroutine writes its own
// result slot; the shared slice is only read after Wait returns.
//
// Complexity: O(N) evaluator calls across ≤ workers goroutines.
func (pb parallelBatch) EvaluateBatch(xs [][]float64) []Evaluation {
	out := make([]Evaluation, len(xs))

	p := pool.New().WithMaxGoroutines(pb.workers)
	var i int
	for i = 0; i < len(xs); i++ {
		i := i
		p.Go(func() {
			out[i] = pb.ev.Evaluate(xs[i])
		})
	}
	p.Wait()

	return out
}

// AsBatch adapts an Evaluator to the BatchEvaluator contract.
// If ev already implements BatchEvaluator it is returned unchanged;
// otherwise a sequential wrapper is built. A nil ev yields nil.
//
// Complexity: O(1).
func AsBatch(ev Evaluator) BatchEvaluator {
	if ev == nil {
		return nil
	}
	if b, ok := ev.(BatchEvaluator); ok {
		return b
	}

	return sequentialBatch{ev: ev}
}

// Parallel wraps ev in a bounded-parallel BatchEvaluator running at most
// maxGoroutines evaluations concurrently. maxGoroutines ≤ 1 degrades to the
// sequential wrapper. A nil ev yields nil.
//
// The wrapped Evaluator must be safe for concurrent Evaluate calls; pure
// functions of their input vector trivially are.
//
// Complexity: O(1).
func Parallel(ev Evaluator, maxGoroutines int) BatchEvaluator {
	if ev == nil {
		return nil
	}
	if maxGoroutines <= 1 {
		return sequentialBatch{ev: ev}
	}

	return parallelBatch{ev: ev, workers: maxGoroutines}
}
