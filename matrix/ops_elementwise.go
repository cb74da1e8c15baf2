// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast and reduction kernels used to apply and learn per-neuron biases
//     over a mini-batch laid out one example per row.
//   - Element-wise maps, including the fixed logistic activation.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "github.com/katalvlaran/lvnet/activation"

// BroadcastAddRow computes out[i,j] = X[i,j] + row[0,j] for every row i.
//
// Inputs:
//   - X: r×c matrix (one example per row).
//   - row: 1×c vector (e.g. a layer bias).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when row is not 1×X.Cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func BroadcastAddRow(x, row *Dense) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opBroadcastAddRow, err)
	}
	if err := ValidateRowVector(row, x.c); err != nil {
		return nil, matrixErrorf(opBroadcastAddRow, err)
	}

	r, c := x.r, x.c
	out := newDense(r, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c // cache the base offset for row i
		for j = 0; j < c; j++ {
			out.data[base+j] = x.data[base+j] + row.data[j]
		}
	}

	return out, nil
}

// ColumnSum reduces every column over all rows, returning a 1×c row vector.
// Rows are accumulated top to bottom (acc += X[i,j], i = 0..r-1).
//
// AI-Hint: scale the result by 1/r to average a gradient over a mini-batch.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnSum(x *Dense) *Dense {
	r, c := x.r, x.c
	out := newDense(1, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[j] += x.data[base+j]
		}
	}

	return out
}

// Map returns a fresh matrix with f applied to every element in row-major order.
// f must be pure; Map never mutates x.
// Complexity: O(r*c).
func Map(x *Dense, f func(v float64) float64) *Dense {
	out := newDense(x.r, x.c)
	for idx, v := range x.data {
		out.data[idx] = f(v)
	}

	return out
}

// ApplySigmoid returns σ(X) element-wise.
// Complexity: O(r*c).
func ApplySigmoid(x *Dense) *Dense { return Map(x, activation.Sigmoid) }

// ApplySigmoidPrime returns σ'(X) element-wise, X being pre-activation values.
// Complexity: O(r*c).
func ApplySigmoidPrime(x *Dense) *Dense { return Map(x, activation.SigmoidPrime) }
