// Package surrogate - the Evaluator adapter.
//
// The Adapter binds a fitted Model behind the exact same core.Evaluator
// contract the optimizers consume, so the evolutionary loop cannot tell a
// surrogate from a simulator. Prediction failures of any sort are absorbed:
// the adapter substitutes the model's configured penalty value for every
// objective and constraint and reports OK=false — it never panics and never
// propagates an error into the loop.
package surrogate

import "github.com/katalvlaran/moea/core"

// Adapter implements core.Evaluator on a fitted Model.
type Adapter struct {
	model *Model
}

// NewAdapter wraps a fitted model. A nil model is the only fatal condition;
// a corrupt or unfit model degrades to penalty evaluations at prediction
// time instead.
//
// Errors: ErrNilModel.
//
// Complexity: O(1).
func NewAdapter(m *Model) (*Adapter, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	return &Adapter{model: m}, nil
}

// Evaluate implements core.Evaluator: predict, destandardize, split into
// objectives and constraints. On any prediction failure the configured
// penalty value fills every output slot.
//
// Complexity: O(n²) for Poly2, O(Σ layer sizes) for ANN.
func (a *Adapter) Evaluate(x []float64) core.Evaluation {
	out, err := a.model.Predict(x)
	if err != nil {
		return a.penalty(err.Error())
	}

	return core.Evaluation{
		Objectives:  out[:a.model.Objectives],
		Constraints: out[a.model.Objectives:],
		OK:          true,
	}
}

// penalty builds the substitute evaluation: every objective and constraint
// carries the model's penalty value.
//
// Complexity: O(m + c).
func (a *Adapter) penalty(msg string) core.Evaluation {
	var (
		obj = make([]float64, a.model.Objectives)
		con = make([]float64, a.model.Constraints)
		i   int
	)
	for i = 0; i < len(obj); i++ {
		obj[i] = a.model.PenaltyValue
	}
	for i = 0; i < len(con); i++ {
		con[i] = a.model.PenaltyValue
	}

	return core.Evaluation{Objectives: obj, Constraints: con, OK: false, Message: msg}
}
