// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadCSV reads one example per record: an integer label followed by the
// raw feature values, each divided by the pixel scale. The first record
// fixes the feature count unless WithFeatures is given. Empty lines are
// skipped.
//
// Errors:
//   - ErrEmptyDataset when no example is read.
//   - ErrMalformedRecord (with the line number) for a bad field count or an
//     unparsable value.
//   - ErrLabelRange for a label outside [0, classes).
//
// Example:
//
//	set, err := dataset.LoadCSV(f, dataset.WithLimit(1000))
func LoadCSV(r io.Reader, opts ...Option) (*Set, error) {
	o := buildOptions(opts)
	src, err := decompressed(r)
	if err != nil {
		return nil, datasetErrorf("LoadCSV", err)
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // counts are checked below with a better message
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	set := &Set{Classes: o.classes}
	features := o.features
	skip := o.header
	for !o.full(set.Len()) {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, datasetErrorf("LoadCSV", fmt.Errorf("%v: %w", err, ErrMalformedRecord))
		}
		line, _ := cr.FieldPos(0)
		if skip {
			skip = false
			continue
		}

		if features == 0 {
			features = len(record) - 1
		}
		label, image, err := parseRecord(record, features, o)
		if err != nil {
			return nil, datasetErrorf("LoadCSV", fmt.Errorf("line %d: %w", line, err))
		}
		set.Labels = append(set.Labels, label)
		set.Images = append(set.Images, image)
	}

	if set.Len() == 0 {
		return nil, datasetErrorf("LoadCSV", ErrEmptyDataset)
	}

	return set, nil
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path string, opts ...Option) (*Set, error) {
	var set *Set
	err := withFile(path, func(r io.Reader) error {
		var err error
		set, err = LoadCSV(r, opts...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// parseRecord converts label,p0,...,p{n-1} into a label and a scaled image.
func parseRecord(record []string, features int, o options) (int, []float64, error) {
	if features <= 0 || len(record) != features+1 {
		return 0, nil, fmt.Errorf("%d fields, want %d: %w", len(record), features+1, ErrMalformedRecord)
	}

	label, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return 0, nil, fmt.Errorf("label %q: %w", record[0], ErrMalformedRecord)
	}
	if label < 0 || label >= o.classes {
		return 0, nil, fmt.Errorf("label %d, classes %d: %w", label, o.classes, ErrLabelRange)
	}

	image := make([]float64, features)
	for j, field := range record[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return 0, nil, fmt.Errorf("field %d %q: %w", j+1, field, ErrMalformedRecord)
		}
		image[j] = v / o.scale
	}

	return label, image, nil
}
