// Package surrogate - the feed-forward ANN surrogate.
//
// A small multilayer perceptron on standardized data: one or two ReLU hidden
// layers and a linear output, trained by full-batch gradient descent on the
// mean-squared error. A held-out validation split selects the best epoch:
// the returned network carries the weights with the lowest validation loss
// (training loss when the split is empty).
//
// All linear algebra runs on gonum dense matrices; the network is tiny by
// construction (≤ 2 hidden layers), so full-batch steps are cheap.
package surrogate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// layer is one affine transform of the network.
type layer struct {
	w *mat.Dense // in × out weight matrix
	b []float64  // per-output bias
}

// network is a feed-forward ReLU/linear stack.
type network struct {
	layers []layer
}

// newNetwork builds a He-initialized network for the layer widths
// sizes = [in, hidden…, out].
//
// Complexity: O(Σ inᵢ·outᵢ).
func newNetwork(sizes []int, rng *rand.Rand) *network {
	net := &network{layers: make([]layer, len(sizes)-1)}

	var l, i, j int
	for l = 0; l < len(sizes)-1; l++ {
		var (
			in    = sizes[l]
			out   = sizes[l+1]
			scale = math.Sqrt(2 / float64(in))
			w     = mat.NewDense(in, out, nil)
		)
		for i = 0; i < in; i++ {
			for j = 0; j < out; j++ {
				w.Set(i, j, scale*rng.NormFloat64())
			}
		}
		net.layers[l] = layer{w: w, b: make([]float64, out)}
	}

	return net
}

// clone deep-copies the network (used to snapshot best-validation weights).
func (n *network) clone() *network {
	out := &network{layers: make([]layer, len(n.layers))}

	var l int
	for l = 0; l < len(n.layers); l++ {
		out.layers[l] = layer{
			w: mat.DenseCopyOf(n.layers[l].w),
			b: append([]float64(nil), n.layers[l].b...),
		}
	}

	return out
}

// forward evaluates one standardized input vector.
//
// Complexity: O(Σ inᵢ·outᵢ).
func (n *network) forward(x []float64) []float64 {
	act := append([]float64(nil), x...)

	var l, i, j int
	for l = 0; l < len(n.layers); l++ {
		var (
			w        = n.layers[l].w
			in, out  = w.Dims()
			next     = make([]float64, out)
			isHidden = l < len(n.layers)-1
		)
		for j = 0; j < out; j++ {
			sum := n.layers[l].b[j]
			for i = 0; i < in; i++ {
				sum += act[i] * w.At(i, j)
			}
			if isHidden && sum < 0 {
				sum = 0 // ReLU
			}
			next[j] = sum
		}
		act = next
	}

	return act
}

// forwardBatch runs the whole batch through the stack, returning the
// pre-activation and activation matrices per layer for backpropagation.
// as[0] is the input; as[l+1] is the activation after layer l.
//
// Complexity: O(N·Σ inᵢ·outᵢ).
func (n *network) forwardBatch(input *mat.Dense) (zs, as []*mat.Dense) {
	as = append(as, input)

	var l int
	for l = 0; l < len(n.layers); l++ {
		var (
			z    mat.Dense
			rows int
		)
		z.Mul(as[l], n.layers[l].w)
		rows, _ = z.Dims()

		// Row-wise bias.
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < len(n.layers[l].b); j++ {
				z.Set(i, j, z.At(i, j)+n.layers[l].b[j])
			}
		}

		zc := mat.DenseCopyOf(&z)
		zs = append(zs, zc)

		if l < len(n.layers)-1 {
			var a mat.Dense
			a.Apply(func(_, _ int, v float64) float64 {
				if v < 0 {
					return 0
				}

				return v
			}, zc)
			as = append(as, mat.DenseCopyOf(&a))
		} else {
			as = append(as, zc) // linear output
		}
	}

	return zs, as
}

// step performs one full-batch gradient-descent update on (input, target).
//
// Complexity: O(N·Σ inᵢ·outᵢ).
func (n *network) step(input, target *mat.Dense, lr float64) {
	zs, as := n.forwardBatch(input)

	var (
		rows, cols = target.Dims()
		delta      mat.Dense
	)

	// dL/dZ_last for MSE averaged over all entries.
	delta.Sub(as[len(as)-1], target)
	delta.Scale(2/float64(rows*cols), &delta)

	var l int
	for l = len(n.layers) - 1; l >= 0; l-- {
		// Parameter gradients.
		var dw mat.Dense
		dw.Mul(as[l].T(), &delta)

		var (
			dRows, dCols = delta.Dims()
			db           = make([]float64, dCols)
			i, j         int
		)
		for i = 0; i < dRows; i++ {
			for j = 0; j < dCols; j++ {
				db[j] += delta.At(i, j)
			}
		}

		// Propagate before mutating the layer.
		if l > 0 {
			var back mat.Dense
			back.Mul(&delta, n.layers[l].w.T())
			// Gate by ReLU derivative of the previous pre-activation.
			back.Apply(func(r, c int, v float64) float64 {
				if zs[l-1].At(r, c) <= 0 {
					return 0
				}

				return v
			}, &back)
			delta.CloneFrom(&back)
		}

		// Update.
		dw.Scale(lr, &dw)
		n.layers[l].w.Sub(n.layers[l].w, &dw)
		for j = 0; j < dCols; j++ {
			n.layers[l].b[j] -= lr * db[j]
		}
	}
}

// loss computes the mean-squared error of the network on (input, target).
//
// Complexity: O(N·Σ inᵢ·outᵢ).
func (n *network) loss(input, target *mat.Dense) float64 {
	_, as := n.forwardBatch(input)

	var (
		pred       = as[len(as)-1]
		rows, cols = target.Dims()
		sum        float64
		i, j       int
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			d := pred.At(i, j) - target.At(i, j)
			sum += d * d
		}
	}

	return sum / float64(rows*cols)
}

// fitANN trains a network on standardized data. The validation split is
// carved from a shuffled index permutation; the weights with the lowest
// validation loss (training loss when the split is empty) are returned.
//
// Complexity: O(Epochs·N·Σ inᵢ·outᵢ).
func fitANN(X, Y [][]float64, opts Options, rng *rand.Rand) *network {
	var (
		samples = len(X)
		in      = len(X[0])
		out     = len(Y[0])
	)

	// Shuffled train/validation partition.
	var (
		perm   = rng.Perm(samples)
		vCount = int(opts.ValidationSplit * float64(samples))
	)
	if vCount >= samples {
		vCount = samples - 1
	}

	trainX, trainY := gather(X, Y, perm[vCount:])
	var valX, valY *mat.Dense
	if vCount > 0 {
		valX, valY = gather(X, Y, perm[:vCount])
	}

	// Layer widths: in → hidden… → out.
	sizes := append(append([]int{in}, opts.HiddenLayers...), out)

	var (
		net      = newNetwork(sizes, rng)
		best     = net.clone()
		bestLoss = math.Inf(1)
		epoch    int
	)
	for epoch = 0; epoch < opts.Epochs; epoch++ {
		net.step(trainX, trainY, opts.LearningRate)

		var cur float64
		if valX != nil {
			cur = net.loss(valX, valY)
		} else {
			cur = net.loss(trainX, trainY)
		}
		if cur < bestLoss {
			bestLoss = cur
			best = net.clone()
		}
	}

	return best
}

// gather packs the selected rows into dense matrices.
//
// Complexity: O(len(idx)·(n+out)).
func gather(X, Y [][]float64, idx []int) (*mat.Dense, *mat.Dense) {
	var (
		mx = mat.NewDense(len(idx), len(X[0]), nil)
		my = mat.NewDense(len(idx), len(Y[0]), nil)
		k  int
	)
	for k = 0; k < len(idx); k++ {
		mx.SetRow(k, X[idx[k]])
		my.SetRow(k, Y[idx[k]])
	}

	return mx, my
}
