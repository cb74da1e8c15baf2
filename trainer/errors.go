// SPDX-License-Identifier: MIT

package trainer

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig indicates a non-positive epoch count or batch size.
	ErrBadConfig = errors.New("trainer: invalid config")

	// ErrNilNetwork indicates a nil *nn.Network.
	ErrNilNetwork = errors.New("trainer: nil network")

	// ErrShapeMismatch indicates a set whose feature or class count differs
	// from the network's input or output size.
	ErrShapeMismatch = errors.New("trainer: dataset does not fit network")
)

func trainerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
