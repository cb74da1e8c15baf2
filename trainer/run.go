// SPDX-License-Identifier: MIT

package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/nn"
)

// Stats counts the work Run completed.
type Stats struct {
	Epochs   int // fully completed epochs
	Steps    int // gradient steps taken
	Examples int // examples consumed by those steps
}

// Run trains net over set as configured by cfg.
//
// The caller's set is never reordered; shuffling works on a copy of its
// outer slices. Before each step ctx is checked, and its error is returned
// together with the Stats completed so far.
//
// Errors:
//   - ErrBadConfig, ErrNilNetwork, ErrShapeMismatch, any set.Validate error,
//     any nn training error, ctx.Err().
func Run(ctx context.Context, net *nn.Network, set *dataset.Set, cfg Config) (Stats, error) {
	var stats Stats
	if err := check(net, set); err != nil {
		return stats, trainerErrorf("Run", err)
	}
	if err := cfg.Validate(); err != nil {
		return stats, trainerErrorf("Run", err)
	}
	logger := cfg.logger()

	work := &dataset.Set{
		Images:  append([][]float64(nil), set.Images...),
		Labels:  append([]int(nil), set.Labels...),
		Classes: set.Classes,
	}
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		start := time.Now()
		if cfg.Shuffle {
			dataset.Shuffle(work, cfg.Seed+int64(epoch))
		}
		batches, err := dataset.Batches(work, cfg.BatchSize)
		if err != nil {
			return stats, trainerErrorf("Run", err)
		}

		for _, b := range batches {
			if err = ctx.Err(); err != nil {
				return stats, trainerErrorf("Run", err)
			}
			if err = net.Train(b.Inputs, b.Targets); err != nil {
				return stats, trainerErrorf("Run", err)
			}
			stats.Steps++
			stats.Examples += b.Size()
		}
		stats.Epochs++
		logger.Printf("epoch %d/%d: %d batches of %d in %s",
			epoch+1, cfg.Epochs, len(batches), cfg.BatchSize, time.Since(start).Round(time.Millisecond))
	}

	return stats, nil
}

// check validates the pairing of a network and a set.
func check(net *nn.Network, set *dataset.Set) error {
	if net == nil {
		return ErrNilNetwork
	}
	if set == nil {
		return dataset.ErrEmptyDataset
	}
	if err := set.Validate(); err != nil {
		return err
	}
	if set.Features() != net.InputSize() || set.Classes != net.OutputSize() {
		return fmt.Errorf("set %d features/%d classes, network %d→%d: %w",
			set.Features(), set.Classes, net.InputSize(), net.OutputSize(), ErrShapeMismatch)
	}

	return nil
}
