// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvnet/matrix"
)

// Layer is one fully connected sigmoid layer.
//   - weights: inputs×outputs; row i holds the fan-out of input i.
//   - biases:  1×outputs.
//
// A Layer is owned by exactly one Network and mutated only by its
// training step.
type Layer struct {
	weights *matrix.Dense
	biases  *matrix.Dense
}

// NewLayer creates a layer mapping `inputs` features to `outputs` neurons.
// Weights are drawn first, in row-major order, then biases, each value being
// rng.NormFloat64(). A nil rng selects the fixed default seed.
//
// Errors:
//   - matrix.ErrEmptyInput when outputs or inputs is not positive.
//
// Complexity:
//   - Time O(inputs*outputs), Space O(inputs*outputs).
func NewLayer(outputs, inputs int, rng *rand.Rand) (*Layer, error) {
	if outputs <= 0 || inputs <= 0 {
		return nil, nnErrorf(opNewLayer, fmt.Errorf("outputs=%d inputs=%d: %w", outputs, inputs, matrix.ErrEmptyInput))
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	w, err := matrix.NewDense(inputs, outputs, normals(rng, inputs*outputs))
	if err != nil {
		return nil, nnErrorf(opNewLayer, err)
	}
	b, err := matrix.NewRowVector(normals(rng, outputs))
	if err != nil {
		return nil, nnErrorf(opNewLayer, err)
	}

	return &Layer{weights: w, biases: b}, nil
}

// NewLayerFrom builds a layer from explicit parameters (copied).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil argument.
//   - matrix.ErrDimensionMismatch unless biases is 1×weights.Cols.
func NewLayerFrom(weights, biases *matrix.Dense) (*Layer, error) {
	if err := matrix.ValidateNotNil(weights); err != nil {
		return nil, nnErrorf(opNewLayerFrom, err)
	}
	if err := matrix.ValidateRowVector(biases, weights.Cols()); err != nil {
		return nil, nnErrorf(opNewLayerFrom, err)
	}

	return &Layer{weights: weights.Clone(), biases: biases.Clone()}, nil
}

// Inputs returns the number of features the layer consumes.
func (l *Layer) Inputs() int { return l.weights.Rows() }

// Outputs returns the number of neurons.
func (l *Layer) Outputs() int { return l.weights.Cols() }

// Weights returns a copy of the inputs×outputs weight matrix.
func (l *Layer) Weights() *matrix.Dense { return l.weights.Clone() }

// Biases returns a copy of the 1×outputs bias row.
func (l *Layer) Biases() *matrix.Dense { return l.biases.Clone() }

// Forward returns σ(input·W + b) for an m×Inputs() batch.
// The layer is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (input columns ≠ Inputs()).
func (l *Layer) Forward(input *matrix.Dense) (*matrix.Dense, error) {
	_, a, err := l.forward(input)
	if err != nil {
		return nil, nnErrorf(opForward, err)
	}

	return a, nil
}

// forward returns both the pre-activation z and the activation a = σ(z).
func (l *Layer) forward(input *matrix.Dense) (z, a *matrix.Dense, err error) {
	prod, err := matrix.Mul(input, l.weights)
	if err != nil {
		return nil, nil, err
	}
	z, err = matrix.BroadcastAddRow(prod, l.biases)
	if err != nil {
		return nil, nil, err
	}

	return z, matrix.ApplySigmoid(z), nil
}

// apply subtracts a precomputed, already scaled gradient.
// Shapes are guaranteed by the caller.
func (l *Layer) apply(g gradient) error {
	if err := l.weights.SubInPlace(g.weights); err != nil {
		return err
	}

	return l.biases.SubInPlace(g.biases)
}

// clone returns an independent deep copy.
func (l *Layer) clone() *Layer {
	return &Layer{weights: l.weights.Clone(), biases: l.biases.Clone()}
}
