// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels of the trainer:
// element-wise addition, subtraction and product, scalar scaling, the three
// matrix-product variants and transpose. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Determinism:
//   - Fixed loop orders (i→j→k for products, flat 0..n-1 for element-wise).
//   - Every dot product is accumulated by dotFMA; see its contract below.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for every dot product.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd               = "Add"
	opSub               = "Sub"
	opHadamard          = "Hadamard"
	opMul               = "Mul"
	opMulTransposeLeft  = "MulTransposeLeft"
	opMulTransposeRight = "MulTransposeRight"
	opBroadcastAddRow   = "BroadcastAddRow"
	opAddInPlace        = "AddInPlace"
	opSubInPlace        = "SubInPlace"
	opFromRows          = "FromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dotFMA accumulates Σ x[xOff+k*xStride] * y[yOff+k*yStride] for k = 0..n-1.
//
// Implementation:
//   - acc starts at ZeroSum and is updated as acc = FMA(x_k, y_k, acc),
//     strictly left to right. The single rounding per step and the fixed
//     order make every product kernel bit-reproducible.
//
// Inputs:
//   - x, y: flat buffers; xOff/yOff: first element; xStride/yStride: step.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// Notes:
//   - Strides are what let MulTransposeLeft/Right read an operand in
//     transposed order without materializing the transpose.
func dotFMA(x []float64, xOff, xStride int, y []float64, yOff, yStride int, n int) float64 {
	acc := ZeroSum
	var k int
	for k = 0; k < n; k++ {
		acc = math.FMA(x[xOff+k*xStride], y[yOff+k*yStride], acc)
	}

	return acc
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(a.r, a.c)
	length := a.r * a.c
	for idx := 0; idx < length; idx++ { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Hadamard computes the element-wise product C = A ⊙ B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := newDense(a.r, a.c)
	for idx := range a.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// Scale returns k*A as a fresh Dense. It cannot fail for a non-nil A.
// Complexity: O(r*c).
func Scale(a *Dense, k float64) *Dense {
	res := newDense(a.r, a.c)
	for idx := range a.data {
		res.data[idx] = a.data[idx] * k
	}

	return res
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For every (i, j) accumulate row i of A against column j of B
//     with dotFMA (A stride 1, B stride B.Cols).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res := newDense(rows, cols)
	var i, j, rowOffsetR int
	for i = 0; i < rows; i++ {
		rowOffsetR = i * cols
		for j = 0; j < cols; j++ {
			// a[i,k] = a.data[i*inner + k]; b[k,j] = b.data[k*cols + j]
			res.data[rowOffsetR+j] = dotFMA(a.data, i*inner, 1, b.data, j, cols, inner)
		}
	}

	return res, nil
}

// MulTransposeLeft computes C = Aᵀ × B without materializing Aᵀ.
//
// Implementation:
//   - Stage 1: Validate both non-nil and A.Rows == B.Rows.
//   - Stage 2: C[i,j] = Σ_k A[k,i]·B[k,j]: column i of A is walked with
//     stride A.Cols, column j of B with stride B.Cols.
//
// Inputs:
//   - A: (n × r), B: (n × c).
//
// Returns:
//   - *Dense with shape (r × c).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c); no temporary transpose.
//
// Notes:
//   - Used for weight gradients: a_prevᵀ · δ over a mini-batch.
func MulTransposeLeft(a, b *Dense) (*Dense, error) {
	if err := ValidateMulTransposeLeft(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposeLeft, err)
	}

	inner, rows, cols := a.r, a.c, b.c
	res := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = dotFMA(a.data, i, rows, b.data, j, cols, inner)
		}
	}

	return res, nil
}

// MulTransposeRight computes C = A × Bᵀ without materializing Bᵀ.
//
// Implementation:
//   - Stage 1: Validate both non-nil and A.Cols == B.Cols.
//   - Stage 2: C[i,j] = Σ_k A[i,k]·B[j,k]: both operands are walked along
//     their rows with stride 1, which is the cache-friendliest variant.
//
// Inputs:
//   - A: (r × n), B: (c × n).
//
// Returns:
//   - *Dense with shape (r × c).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c); no temporary transpose.
//
// Notes:
//   - Used for error back-propagation: δ_next · W_nextᵀ.
func MulTransposeRight(a, b *Dense) (*Dense, error) {
	if err := ValidateMulTransposeRight(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposeRight, err)
	}

	rows, inner, cols := a.r, a.c, b.r
	res := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = dotFMA(a.data, i*inner, 1, b.data, j*inner, 1, inner)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated. It cannot fail for a non-nil m.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Transpose is a full materialization; the hot paths of training use
//     MulTransposeLeft/Right instead.
func Transpose(m *Dense) *Dense {
	rows, cols := m.r, m.c
	res := newDense(cols, rows) // dims flipped
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			// data[i*cols + j] → res.data[j*rows + i]
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}
