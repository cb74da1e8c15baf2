// SPDX-License-Identifier: MIT

package nn_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/nn"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from nested rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustLayer builds a layer from nested weight rows and a bias row.
func mustLayer(t testing.TB, weights [][]float64, biases []float64) *nn.Layer {
	t.Helper()
	b, err := matrix.NewRowVector(biases)
	require.NoError(t, err)
	l, err := nn.NewLayerFrom(mustRows(t, weights), b)
	require.NoError(t, err)

	return l
}

// snapshot flattens every weight and bias of net, layer by layer.
func snapshot(net *nn.Network) []float64 {
	var out []float64
	for _, l := range net.Layers() {
		out = append(out, l.Weights().RawData()...)
		out = append(out, l.Biases().RawData()...)
	}

	return out
}
