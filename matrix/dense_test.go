// Package matrix_test contains unit tests for the Dense storage type.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_EmptyInput ensures that zero-sized shapes always fail with ErrEmptyInput.
func TestNewDense_EmptyInput(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		data       []float64
	}{
		{"zero rows", 0, 3, nil},
		{"zero cols", 3, 0, nil},
		{"both zero", 0, 0, []float64{}},
		{"negative rows", -1, 2, []float64{1, 2}},
		{"zero rows with data", 0, 2, []float64{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, matrix.ErrEmptyInput)
		})
	}
}

// TestNewDense_LengthMismatch ensures rows*cols != len(data) fails with ErrDimensionMismatch.
func TestNewDense_LengthMismatch(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		data       []float64
	}{
		{"too short", 2, 2, []float64{1, 2, 3}},
		{"too long", 1, 2, []float64{1, 2, 3}},
		{"nil data", 2, 3, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

// TestNewDense_CopiesData verifies the constructor does not alias the caller slice.
func TestNewDense_CopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m := NewFilledDense(t, 2, 2, data)
	data[0] = 100

	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestNewZeros checks shape and zero fill.
func TestNewZeros(t *testing.T) {
	m, err := matrix.NewZeros(3, 4)
	require.NoError(t, err)
	MustDims(t, m, 3, 4)
	for _, v := range m.RawData() {
		require.Equal(t, 0.0, v)
	}

	_, err = matrix.NewZeros(0, 4)
	require.ErrorIs(t, err, matrix.ErrEmptyInput)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the finite-only numeric policy of Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m := NewFilledDense(t, 1, 1, []float64{0})
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	assert.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

// TestSetGetRow validates Set() followed by At() and Row() on valid indices.
func TestSetGetRow(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, m.Set(1, 2, 7.89))
	assert.Equal(t, 7.89, MustAt(t, m, 1, 2))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 7.89}, row)

	row[0] = -1 // Row returns a copy
	assert.Equal(t, 4.0, MustAt(t, m, 1, 0))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 3.0, MustAt(t, clone, 0, 0))
	assert.False(t, m.Equal(clone))
}

// TestEqual covers shape and nil handling.
func TestEqual(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 2, 1, []float64{1, 2})
	var nilM *matrix.Dense

	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.True(t, nilM.Equal(nil))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.5})
	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
