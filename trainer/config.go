// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"
	"io"
	"log"
)

const (
	// DefaultEpochs is the number of passes over the training set.
	DefaultEpochs = 1

	// DefaultBatchSize is the number of examples per gradient step.
	DefaultBatchSize = 100
)

// Config controls Run.
//
// Epochs    – passes over the set; must be > 0.
// BatchSize – examples per step; must be > 0. The last batch may be short.
// Shuffle   – reshuffle a private copy of the set before every epoch (seed Seed+epoch).
// Logger    – receives one line per epoch; nil discards.
type Config struct {
	Epochs    int
	BatchSize int
	Shuffle   bool
	Seed      int64
	Logger    *log.Logger
}

// DefaultConfig returns one unshuffled epoch of 100-example batches.
func DefaultConfig() Config {
	return Config{Epochs: DefaultEpochs, BatchSize: DefaultBatchSize}
}

// Validate reports ErrBadConfig for non-positive Epochs or BatchSize.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs=%d: %w", c.Epochs, ErrBadConfig)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size=%d: %w", c.BatchSize, ErrBadConfig)
	}

	return nil
}

func (c Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}

	return c.Logger
}
