// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ClassifyCorrect reports whether the highest score of output sits at the
// same index as the highest value of expected. Ties resolve to the first
// maximal index in both vectors.
//
// Errors:
//   - ErrIncompatibleBatch when the vectors are empty or differ in length.
func ClassifyCorrect(output, expected []float64) (bool, error) {
	if len(output) == 0 || len(output) != len(expected) {
		return false, nnErrorf(opClassify, fmt.Errorf("lengths %d and %d: %w", len(output), len(expected), ErrIncompatibleBatch))
	}

	return floats.MaxIdx(output) == floats.MaxIdx(expected), nil
}

// Score is ClassifyCorrect as 1 (correct) or 0 (wrong).
func Score(output, expected []float64) (float64, error) {
	ok, err := ClassifyCorrect(output, expected)
	if err != nil || !ok {
		return 0, err
	}

	return 1, nil
}

// Accuracy infers every row of inputs and returns the mean Score against
// the matching target rows, in [0,1].
//
// Errors:
//   - matrix.ErrNilMatrix, ErrIncompatibleBatch.
func Accuracy(net *Network, inputs, targets *matrix.Dense) (float64, error) {
	if err := net.validateBatch(inputs, targets); err != nil {
		return 0, nnErrorf(opAccuracy, err)
	}
	out, err := net.Infer(inputs)
	if err != nil {
		return 0, nnErrorf(opAccuracy, err)
	}

	scores := make([]float64, out.Rows())
	for i := range scores {
		got, _ := out.Row(i)
		want, _ := targets.Row(i)
		if scores[i], err = Score(got, want); err != nil {
			return 0, nnErrorf(opAccuracy, err)
		}
	}

	return stat.Mean(scores, nil), nil
}
