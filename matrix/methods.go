// SPDX-License-Identifier: MIT
// Package matrix - in-place mutation of a sole owner.
//
// Purpose:
//   - Let the single owner of a matrix (a layer updating its weights) apply a
//     gradient without allocating a replacement.
//   - Validation happens before the first write, so a failed call leaves the
//     receiver untouched.

package matrix

// AddInPlace performs m ← m + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (receiver unchanged).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return nil
}

// SubInPlace performs m ← m − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (receiver unchanged).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) SubInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] -= b.data[idx]
	}

	return nil
}

// ScaleInPlace performs m ← k·m.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(k float64) {
	for idx := range m.data {
		m.data[idx] *= k
	}
}
