// SPDX-License-Identifier: MIT
// Package nn - mini-batch back-propagation.
//
// One step over m examples:
//  1. Forward with memoization: z_l = a_{l-1}·W_l + b_l, a_l = σ(z_l), a_0 = inputs.
//  2. Output error: δ_L = (a_L − y) ⊙ σ'(z_L).
//  3. Back-propagation: δ_l = (δ_{l+1}·W_{l+1}ᵀ) ⊙ σ'(z_l).
//  4. Gradients: ∇W_l = rate/m · a_{l-1}ᵀ·δ_l, ∇b_l = rate/m · Σ_rows δ_l.
//  5. Update: W_l −= ∇W_l, b_l −= ∇b_l, only after every gradient exists.
//
// This is gradient descent on the mean squared error ½·Σ‖a_L − y‖² / m.
package nn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// gradient holds the scaled update of one layer.
type gradient struct {
	weights *matrix.Dense
	biases  *matrix.Dense
}

// Train runs one step over the batch with the network's learning rate.
func (n *Network) Train(inputs, targets *matrix.Dense) error {
	return n.TrainStep(inputs, targets, n.rate)
}

// TrainStep runs one gradient-descent step over an m×InputSize() batch of
// inputs and the matching m×OutputSize() targets, using the given rate.
//
// Errors:
//   - ErrInvalidLearningRate for a non-positive or non-finite rate.
//   - matrix.ErrNilMatrix for a nil batch.
//   - ErrIncompatibleBatch when row counts differ or column counts do not
//     match the network.
//
// On error no layer is modified.
//
// Complexity:
//   - Time O(m·Σ in_l·out_l), Space O(m·Σ out_l) for the memoized activations.
func (n *Network) TrainStep(inputs, targets *matrix.Dense, rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nnErrorf(opTrainStep, fmt.Errorf("rate %v: %w", rate, ErrInvalidLearningRate))
	}
	if err := n.validateBatch(inputs, targets); err != nil {
		return nnErrorf(opTrainStep, err)
	}

	grads, err := n.gradients(inputs, targets, rate)
	if err != nil {
		return nnErrorf(opTrainStep, err)
	}
	for l, g := range grads {
		if err = n.layers[l].apply(g); err != nil {
			return nnErrorf(opTrainStep, err)
		}
	}

	return nil
}

// validateBatch checks nil-ness and the three shape agreements of a batch.
func (n *Network) validateBatch(inputs, targets *matrix.Dense) error {
	if err := matrix.ValidateNotNil(inputs); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(targets); err != nil {
		return err
	}
	switch {
	case inputs.Rows() != targets.Rows():
		return fmt.Errorf("%d input rows, %d target rows: %w", inputs.Rows(), targets.Rows(), ErrIncompatibleBatch)
	case inputs.Cols() != n.InputSize():
		return fmt.Errorf("inputs have %d columns, network takes %d: %w", inputs.Cols(), n.InputSize(), ErrIncompatibleBatch)
	case targets.Cols() != n.OutputSize():
		return fmt.Errorf("targets have %d columns, network yields %d: %w", targets.Cols(), n.OutputSize(), ErrIncompatibleBatch)
	}

	return nil
}

// gradients computes every layer's scaled update from the current weights.
// It reads the layers only.
func (n *Network) gradients(inputs, targets *matrix.Dense, rate float64) ([]gradient, error) {
	depth := len(n.layers)
	zs := make([]*matrix.Dense, depth)
	acts := make([]*matrix.Dense, depth+1)
	acts[0] = inputs

	var err error
	for l, layer := range n.layers {
		if zs[l], acts[l+1], err = layer.forward(acts[l]); err != nil {
			return nil, err
		}
	}

	diff, err := matrix.Sub(acts[depth], targets)
	if err != nil {
		return nil, err
	}
	delta, err := matrix.Hadamard(diff, matrix.ApplySigmoidPrime(zs[depth-1]))
	if err != nil {
		return nil, err
	}

	k := rate / float64(inputs.Rows())
	grads := make([]gradient, depth)
	for l := depth - 1; ; l-- {
		gw, err := matrix.MulTransposeLeft(acts[l], delta)
		if err != nil {
			return nil, err
		}
		grads[l] = gradient{weights: matrix.Scale(gw, k), biases: matrix.Scale(matrix.ColumnSum(delta), k)}
		if l == 0 {
			break
		}

		back, err := matrix.MulTransposeRight(delta, n.layers[l].weights)
		if err != nil {
			return nil, err
		}
		if delta, err = matrix.Hadamard(back, matrix.ApplySigmoidPrime(zs[l-1])); err != nil {
			return nil, err
		}
	}

	return grads, nil
}
