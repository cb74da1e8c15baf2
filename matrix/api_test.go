package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	MustDims(t, m, 2, 3)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawData())
}

func TestFromRows_Errors(t *testing.T) {
	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrEmptyInput)

	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrEmptyInput)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewRowVector(t *testing.T) {
	v, err := matrix.NewRowVector([]float64{0.5, -1})
	require.NoError(t, err)
	MustDims(t, v, 1, 2)

	_, err = matrix.NewRowVector(nil)
	require.ErrorIs(t, err, matrix.ErrEmptyInput)
}
