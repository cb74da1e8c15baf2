// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Network is an ordered, non-empty stack of dimensionally chained layers:
// layer i+1 consumes exactly the outputs of layer i.
type Network struct {
	layers []*Layer
	rate   float64
}

// New builds a network taking inputSize features through layers of the given
// sizes; the last size is the number of classes. Weights are initialized from
// the configured generator, layer by layer.
//
// Errors:
//   - ErrNoLayers when sizes is empty.
//   - matrix.ErrEmptyInput when inputSize or any size is not positive.
//
// Example:
//
//	net, err := nn.New(784, []int{16, 16, 10}, nn.WithSeed(7))
func New(inputSize int, sizes []int, opts ...Option) (*Network, error) {
	if len(sizes) == 0 {
		return nil, nnErrorf(opNew, ErrNoLayers)
	}
	if inputSize <= 0 {
		return nil, nnErrorf(opNew, fmt.Errorf("inputSize=%d: %w", inputSize, matrix.ErrEmptyInput))
	}
	o := buildOptions(opts)

	layers := make([]*Layer, 0, len(sizes))
	prev := inputSize
	for _, size := range sizes {
		layer, err := NewLayer(size, prev, o.Rand)
		if err != nil {
			return nil, nnErrorf(opNew, err)
		}
		layers = append(layers, layer)
		prev = size
	}

	return &Network{layers: layers, rate: o.LearningRate}, nil
}

// NewFromLayers assembles a network from existing layers (deep-copied).
//
// Errors:
//   - ErrNoLayers when layers is empty.
//   - matrix.ErrNilMatrix for a nil layer.
//   - matrix.ErrDimensionMismatch when layer i's Inputs() differs from layer
//     i-1's Outputs().
func NewFromLayers(layers []*Layer, opts ...Option) (*Network, error) {
	if len(layers) == 0 {
		return nil, nnErrorf(opNewFromLayers, ErrNoLayers)
	}
	o := buildOptions(opts)

	own := make([]*Layer, len(layers))
	for i, layer := range layers {
		if layer == nil {
			return nil, nnErrorf(opNewFromLayers, fmt.Errorf("layer %d: %w", i, matrix.ErrNilMatrix))
		}
		if i > 0 && layer.Inputs() != layers[i-1].Outputs() {
			return nil, nnErrorf(opNewFromLayers, fmt.Errorf("layer %d takes %d inputs, layer %d yields %d: %w",
				i, layer.Inputs(), i-1, layers[i-1].Outputs(), matrix.ErrDimensionMismatch))
		}
		own[i] = layer.clone()
	}

	return &Network{layers: own, rate: o.LearningRate}, nil
}

// InputSize returns the feature count of the first layer.
func (n *Network) InputSize() int { return n.layers[0].Inputs() }

// OutputSize returns the neuron count of the last layer.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].Outputs() }

// LearningRate returns the rate Train uses.
func (n *Network) LearningRate() float64 { return n.rate }

// Layers returns deep copies of the layers, first to last.
func (n *Network) Layers() []*Layer {
	out := make([]*Layer, len(n.layers))
	for i, layer := range n.layers {
		out[i] = layer.clone()
	}

	return out
}

// Infer folds an m×InputSize() batch through every layer and returns the
// m×OutputSize() scores, each in [0,1]. The network is not modified.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrIncompatibleBatch (column count ≠ InputSize()).
func (n *Network) Infer(batch *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(batch); err != nil {
		return nil, nnErrorf(opInfer, err)
	}
	if batch.Cols() != n.InputSize() {
		return nil, nnErrorf(opInfer, fmt.Errorf("batch has %d columns, network takes %d: %w",
			batch.Cols(), n.InputSize(), ErrIncompatibleBatch))
	}

	a := batch
	var err error
	for _, layer := range n.layers {
		if _, a, err = layer.forward(a); err != nil {
			return nil, nnErrorf(opInfer, err)
		}
	}

	return a, nil
}

// InferVector scores a single example and returns OutputSize() values.
func (n *Network) InferVector(input []float64) ([]float64, error) {
	row, err := matrix.NewRowVector(input)
	if err != nil {
		return nil, nnErrorf(opInfer, err)
	}
	out, err := n.Infer(row)
	if err != nil {
		return nil, err
	}

	return out.RawData(), nil
}
