// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset indicates a source or a split without any example.
	ErrEmptyDataset = errors.New("dataset: no examples")

	// ErrMalformedRecord indicates an unparsable value, a wrong field count,
	// or an image whose length differs from the others.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrBadMagic indicates an IDX stream whose magic number is not the expected one.
	ErrBadMagic = errors.New("dataset: bad IDX magic number")

	// ErrLabelRange indicates a label outside [0, classes).
	ErrLabelRange = errors.New("dataset: label out of range")

	// ErrLengthMismatch indicates that images and labels disagree in count.
	ErrLengthMismatch = errors.New("dataset: images and labels differ in count")

	// ErrBadBatchSize indicates a non-positive mini-batch size.
	ErrBadBatchSize = errors.New("dataset: batch size must be positive")

	// ErrBadRatio indicates a split ratio outside (0, 1).
	ErrBadRatio = errors.New("dataset: split ratio must be in (0, 1)")
)

// datasetErrorf wraps err with an operation tag, keeping the sentinel reachable via %w.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
