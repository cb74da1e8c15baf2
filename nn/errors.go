// SPDX-License-Identifier: MIT

package nn

import (
	"errors"
	"fmt"
)

// Sentinel errors of package nn. Shape and nil errors from package matrix
// (matrix.ErrDimensionMismatch, matrix.ErrEmptyInput, matrix.ErrNilMatrix)
// are propagated unchanged beneath the operation tag.
var (
	// ErrIncompatibleBatch indicates that inputs and targets disagree in row
	// count, or that their column counts do not match the network's input and
	// output sizes.
	ErrIncompatibleBatch = errors.New("nn: incompatible batch")

	// ErrNoLayers indicates an attempt to build a network without layers.
	ErrNoLayers = errors.New("nn: network needs at least one layer")

	// ErrInvalidLearningRate indicates a non-positive or non-finite learning rate.
	ErrInvalidLearningRate = errors.New("nn: learning rate must be positive and finite")
)

// Operation tags for error wrapping.
const (
	opNewLayer      = "NewLayer"
	opNewLayerFrom  = "NewLayerFrom"
	opForward       = "Layer.Forward"
	opNew           = "New"
	opNewFromLayers = "NewFromLayers"
	opInfer         = "Infer"
	opTrainStep     = "TrainStep"
	opClassify      = "ClassifyCorrect"
	opAccuracy      = "Accuracy"
)

// nnErrorf wraps err with an operation tag, keeping the cause reachable via %w.
func nnErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
