// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Batch is one mini-batch: Inputs is m×features, Targets is m×classes
// one-hot, row i of each describing the same example.
type Batch struct {
	Inputs  *matrix.Dense
	Targets *matrix.Dense
}

// Size returns the number of examples in the batch.
func (b Batch) Size() int { return b.Inputs.Rows() }

// Batches cuts s, in order, into consecutive mini-batches of size examples.
// The last batch holds the remainder and may be shorter.
//
// Errors:
//   - ErrBadBatchSize for size <= 0; any Validate error of s.
//
// Complexity:
//   - Time O(n·(features+classes)), Space the same.
func Batches(s *Set, size int) ([]Batch, error) {
	if size <= 0 {
		return nil, datasetErrorf("Batches", fmt.Errorf("size %d: %w", size, ErrBadBatchSize))
	}
	if err := s.Validate(); err != nil {
		return nil, datasetErrorf("Batches", err)
	}

	out := make([]Batch, 0, (s.Len()+size-1)/size)
	for start := 0; start < s.Len(); start += size {
		end := min(start+size, s.Len())
		b, err := newBatch(s, start, end)
		if err != nil {
			return nil, datasetErrorf("Batches", err)
		}
		out = append(out, b)
	}

	return out, nil
}

// All returns s as a single batch.
func All(s *Set) (Batch, error) {
	if err := s.Validate(); err != nil {
		return Batch{}, datasetErrorf("All", err)
	}
	b, err := newBatch(s, 0, s.Len())
	if err != nil {
		return Batch{}, datasetErrorf("All", err)
	}

	return b, nil
}

// newBatch builds the batch of examples [start, end) of a validated set.
func newBatch(s *Set, start, end int) (Batch, error) {
	targets := make([][]float64, 0, end-start)
	for _, label := range s.Labels[start:end] {
		row, err := OneHot(label, s.Classes)
		if err != nil {
			return Batch{}, err
		}
		targets = append(targets, row)
	}

	x, err := matrix.FromRows(s.Images[start:end])
	if err != nil {
		return Batch{}, err
	}
	y, err := matrix.FromRows(targets)
	if err != nil {
		return Batch{}, err
	}

	return Batch{Inputs: x, Targets: y}, nil
}
