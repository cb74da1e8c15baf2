// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math/rand"
)

// Set is a labeled collection: Images[i] carries Labels[i], a class in
// [0, Classes). All images share one length.
type Set struct {
	Images  [][]float64
	Labels  []int
	Classes int
}

// Len returns the number of examples.
func (s *Set) Len() int { return len(s.Labels) }

// Features returns the length of every image, or 0 for an empty set.
func (s *Set) Features() int {
	if len(s.Images) == 0 {
		return 0
	}

	return len(s.Images[0])
}

// Validate checks the invariants of a non-empty, consistent Set.
//
// Errors:
//   - ErrEmptyDataset, ErrLengthMismatch, ErrMalformedRecord (ragged or
//     empty images), ErrLabelRange (including Classes <= 0).
func (s *Set) Validate() error {
	if len(s.Images) != len(s.Labels) {
		return fmt.Errorf("%d images, %d labels: %w", len(s.Images), len(s.Labels), ErrLengthMismatch)
	}
	if len(s.Labels) == 0 {
		return ErrEmptyDataset
	}
	if s.Classes <= 0 {
		return fmt.Errorf("classes=%d: %w", s.Classes, ErrLabelRange)
	}

	n := s.Features()
	if n == 0 {
		return fmt.Errorf("image 0 is empty: %w", ErrMalformedRecord)
	}
	for i, img := range s.Images {
		if len(img) != n {
			return fmt.Errorf("image %d has %d values, want %d: %w", i, len(img), n, ErrMalformedRecord)
		}
		if s.Labels[i] < 0 || s.Labels[i] >= s.Classes {
			return fmt.Errorf("example %d label %d, classes %d: %w", i, s.Labels[i], s.Classes, ErrLabelRange)
		}
	}

	return nil
}

// OneHot returns a target row of length classes with a 1 at label.
// Errors: ErrLabelRange unless 0 <= label < classes.
func OneHot(label, classes int) ([]float64, error) {
	if label < 0 || label >= classes {
		return nil, fmt.Errorf("label %d, classes %d: %w", label, classes, ErrLabelRange)
	}
	row := make([]float64, classes)
	row[label] = 1

	return row, nil
}

// Shuffle permutes s in place. Images and labels are shuffled by two
// generators built from the same seed, so example i stays paired with its
// label while neither shuffle depends on draws made by the other.
//
// Complexity: O(n).
func Shuffle(s *Set, seed int64) {
	imgRng := rand.New(rand.NewSource(seed))
	lblRng := rand.New(rand.NewSource(seed))

	imgRng.Shuffle(len(s.Images), func(i, j int) {
		s.Images[i], s.Images[j] = s.Images[j], s.Images[i]
	})
	lblRng.Shuffle(len(s.Labels), func(i, j int) {
		s.Labels[i], s.Labels[j] = s.Labels[j], s.Labels[i]
	})
}

// Split cuts s into a leading part holding ⌊ratio·Len⌋ examples and the
// remainder. The parts share image rows with s, not the outer slices.
//
// Errors:
//   - ErrBadRatio unless 0 < ratio < 1.
//   - ErrEmptyDataset if either part would be empty.
func Split(s *Set, ratio float64) (head, tail *Set, err error) {
	if !(ratio > 0 && ratio < 1) {
		return nil, nil, datasetErrorf("Split", fmt.Errorf("ratio %v: %w", ratio, ErrBadRatio))
	}
	cut := int(ratio * float64(s.Len()))
	if cut == 0 || cut == s.Len() {
		return nil, nil, datasetErrorf("Split", fmt.Errorf("%d examples at ratio %v: %w", s.Len(), ratio, ErrEmptyDataset))
	}

	head = &Set{
		Images:  append([][]float64(nil), s.Images[:cut]...),
		Labels:  append([]int(nil), s.Labels[:cut]...),
		Classes: s.Classes,
	}
	tail = &Set{
		Images:  append([][]float64(nil), s.Images[cut:]...),
		Labels:  append([]int(nil), s.Labels[cut:]...),
		Classes: s.Classes,
	}

	return head, tail, nil
}
