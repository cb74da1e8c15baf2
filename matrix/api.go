// SPDX-License-Identifier: MIT
// Package matrix — convenience constructors.
//
// Purpose:
//   - Build matrices from the shapes callers usually hold: nested rows
//     (one example per row) and single vectors.
//   - Delegate validation to the same sentinels as NewDense.

package matrix

import "fmt"

// FromRows builds an len(rows)×len(rows[0]) matrix from nested rows (copied).
//
// Errors:
//   - ErrEmptyInput when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrEmptyInput)
	}

	r, c := len(rows), len(rows[0])
	out := newDense(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(out.data[i*c:(i+1)*c], row)
	}

	return out, nil
}

// NewRowVector returns a 1×len(v) matrix holding a copy of v.
// Errors: ErrEmptyInput for an empty v.
func NewRowVector(v []float64) (*Dense, error) {
	return NewDense(1, len(v), v)
}
