// SPDX-License-Identifier: MIT

package trainer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/nn"
)

// evalBatch bounds the rows inferred at once by Evaluate.
const evalBatch = 1000

// Report is the outcome of Evaluate.
type Report struct {
	Correct int
	Total   int
}

// Rate returns Correct/Total, or 0 for an empty report.
func (r Report) Rate() float64 {
	if r.Total == 0 {
		return 0
	}

	return float64(r.Correct) / float64(r.Total)
}

// String renders "success rate: c/t  (p%)".
func (r Report) String() string {
	pct := 0.0
	if r.Total > 0 {
		pct = float64(r.Correct) * 100 / float64(r.Total)
	}

	return fmt.Sprintf("success rate: %d/%d  (%g%%)", r.Correct, r.Total, pct)
}

// Evaluate classifies every example of set and counts the correct ones.
//
// Errors:
//   - ErrNilNetwork, ErrShapeMismatch, any set.Validate or inference error.
func Evaluate(net *nn.Network, set *dataset.Set) (Report, error) {
	var rep Report
	if err := check(net, set); err != nil {
		return rep, trainerErrorf("Evaluate", err)
	}
	batches, err := dataset.Batches(set, evalBatch)
	if err != nil {
		return rep, trainerErrorf("Evaluate", err)
	}

	for _, b := range batches {
		acc, err := nn.Accuracy(net, b.Inputs, b.Targets)
		if err != nil {
			return rep, trainerErrorf("Evaluate", err)
		}
		// acc is a mean of 0/1 scores over at most evalBatch rows, so the
		// rounded product recovers the exact count.
		rep.Correct += int(math.Round(acc * float64(b.Size())))
		rep.Total += b.Size()
	}

	return rep, nil
}
