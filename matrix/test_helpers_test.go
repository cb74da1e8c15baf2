// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Bridge to gonum/mat, which serves as the independent reference
//     implementation for the product kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// NewFilledDense ALLOCATES an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c *Dense filled with U[-1,1) draws from seed.
// Deterministic: same (r, c, seed) ⇒ same matrix.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustDims asserts the shape of m.
func MustDims(t testing.TB, m *matrix.Dense, r, c int) {
	t.Helper()
	require.Equal(t, r, m.Rows(), "rows")
	require.Equal(t, c, m.Cols(), "cols")
}

// toGonum copies m into a gonum *mat.Dense.
func toGonum(m *matrix.Dense) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawData())
}

// gonumData flattens a gonum matrix into row-major order.
func gonumData(g mat.Matrix) []float64 {
	r, c := g.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, g.At(i, j))
		}
	}

	return out
}
