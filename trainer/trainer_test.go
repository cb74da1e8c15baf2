// SPDX-License-Identifier: MIT

package trainer_test

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/nn"
	"github.com/katalvlaran/lvnet/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clusters returns n 2-D examples in two well separated classes.
func clusters(n int, seed int64) *dataset.Set {
	rng := rand.New(rand.NewSource(seed))
	s := &dataset.Set{Classes: 2}
	for i := 0; i < n; i++ {
		class := i % 2
		c := -0.5 + float64(class)
		s.Images = append(s.Images, []float64{c + rng.Float64()*0.6 - 0.3, c + rng.Float64()*0.6 - 0.3})
		s.Labels = append(s.Labels, class)
	}

	return s
}

func snapshot(net *nn.Network) []float64 {
	var out []float64
	for _, l := range net.Layers() {
		out = append(out, l.Weights().RawData()...)
		out = append(out, l.Biases().RawData()...)
	}

	return out
}

func TestRun_TrainsToFullAccuracy(t *testing.T) {
	set := clusters(200, 21)
	labels := append([]int(nil), set.Labels...)
	net, err := nn.New(2, []int{3, 2}, nn.WithSeed(2), nn.WithLearningRate(3))
	require.NoError(t, err)

	var logs bytes.Buffer
	cfg := trainer.Config{Epochs: 400, BatchSize: 20, Shuffle: true, Seed: 5, Logger: log.New(&logs, "", 0)}
	stats, err := trainer.Run(context.Background(), net, set, cfg)
	require.NoError(t, err)
	assert.Equal(t, trainer.Stats{Epochs: 400, Steps: 4000, Examples: 80000}, stats)
	assert.Contains(t, logs.String(), "epoch 400/400: 10 batches of 20")
	assert.Equal(t, labels, set.Labels, "caller's set was reordered")

	rep, err := trainer.Evaluate(net, set)
	require.NoError(t, err)
	assert.Equal(t, trainer.Report{Correct: 200, Total: 200}, rep)
}

func TestRun_ShortLastBatch(t *testing.T) {
	net, err := nn.New(2, []int{2}, nn.WithSeed(1))
	require.NoError(t, err)

	stats, err := trainer.Run(context.Background(), net, clusters(25, 1), trainer.Config{Epochs: 2, BatchSize: 10})
	require.NoError(t, err)
	assert.Equal(t, trainer.Stats{Epochs: 2, Steps: 6, Examples: 50}, stats)
}

func TestRun_CanceledBeforeFirstStep(t *testing.T) {
	net, err := nn.New(2, []int{2}, nn.WithSeed(1))
	require.NoError(t, err)
	before := snapshot(net)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats, err := trainer.Run(ctx, net, clusters(10, 1), trainer.DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats)
	assert.Equal(t, before, snapshot(net))
}

// cancelWriter cancels its context once anything is logged.
type cancelWriter struct{ cancel context.CancelFunc }

func (w cancelWriter) Write(p []byte) (int, error) {
	w.cancel()
	return len(p), nil
}

func TestRun_CanceledBetweenEpochs(t *testing.T) {
	net, err := nn.New(2, []int{2}, nn.WithSeed(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := trainer.Config{Epochs: 5, BatchSize: 4, Logger: log.New(cancelWriter{cancel}, "", 0)}

	stats, err := trainer.Run(ctx, net, clusters(8, 1), cfg)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, trainer.Stats{Epochs: 1, Steps: 2, Examples: 8}, stats)
}

func TestRun_Validation(t *testing.T) {
	net, err := nn.New(2, []int{2}, nn.WithSeed(1))
	require.NoError(t, err)
	ctx := context.Background()
	set := clusters(4, 1)

	_, err = trainer.Run(ctx, net, set, trainer.Config{Epochs: 0, BatchSize: 1})
	require.ErrorIs(t, err, trainer.ErrBadConfig)
	_, err = trainer.Run(ctx, net, set, trainer.Config{Epochs: 1, BatchSize: 0})
	require.ErrorIs(t, err, trainer.ErrBadConfig)
	_, err = trainer.Run(ctx, nil, set, trainer.DefaultConfig())
	require.ErrorIs(t, err, trainer.ErrNilNetwork)
	_, err = trainer.Run(ctx, net, &dataset.Set{Classes: 2}, trainer.DefaultConfig())
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
	require.NotPanics(t, func() { _, err = trainer.Run(ctx, net, nil, trainer.DefaultConfig()) })
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
	require.NotPanics(t, func() { _, err = trainer.Evaluate(net, nil) })
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)

	wide, err := nn.New(3, []int{2}, nn.WithSeed(1))
	require.NoError(t, err)
	_, err = trainer.Run(ctx, wide, set, trainer.DefaultConfig())
	require.ErrorIs(t, err, trainer.ErrShapeMismatch)
	_, err = trainer.Evaluate(wide, set)
	require.ErrorIs(t, err, trainer.ErrShapeMismatch)
}

func TestDefaultConfig(t *testing.T) {
	cfg := trainer.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Epochs)
	assert.Equal(t, 100, cfg.BatchSize)
}

func TestReport(t *testing.T) {
	assert.Equal(t, "success rate: 9/10  (90%)", trainer.Report{Correct: 9, Total: 10}.String())
	assert.Equal(t, "success rate: 0/0  (0%)", trainer.Report{}.String())
	assert.InDelta(t, 0.25, trainer.Report{Correct: 1, Total: 4}.Rate(), 1e-15)
}

func TestEvaluate_CountsAcrossBatches(t *testing.T) {
	// 2500 rows span two full batches and a short one.
	net, err := nn.New(2, []int{3, 2}, nn.WithSeed(7))
	require.NoError(t, err)
	set := clusters(2500, 3)

	want := 0
	for i, img := range set.Images {
		got, err := net.InferVector(img)
		require.NoError(t, err)
		expected, err := dataset.OneHot(set.Labels[i], set.Classes)
		require.NoError(t, err)
		ok, err := nn.ClassifyCorrect(got, expected)
		require.NoError(t, err)
		if ok {
			want++
		}
	}

	rep, err := trainer.Evaluate(net, set)
	require.NoError(t, err)
	assert.Equal(t, 2500, rep.Total)
	assert.Equal(t, want, rep.Correct)
}
