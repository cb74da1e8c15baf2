// SPDX-License-Identifier: MIT
// Package dataset - IDX (MNIST binary) reader.
//
// IDX3 images:                      IDX1 labels:
//
//	magic   uint32 = 2051              magic uint32 = 2049
//	count   uint32                     count uint32
//	rows    uint32                     count label bytes
//	cols    uint32
//	count·rows·cols pixel bytes
//
// All header integers are big-endian.

package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	idxImagesMagic uint32 = 2051
	idxLabelsMagic uint32 = 2049

	// maxIDXFeatures caps rows·cols of one image (a 4096×4096 bitmap).
	maxIDXFeatures = 1 << 24
	// idxPrealloc caps the capacity reserved up front from the header count.
	idxPrealloc = 1 << 16
)

// Standard MNIST file names, looked up plain or with a ".gz" suffix by LoadIDXDir.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// LoadIDX reads an IDX3 image stream and its IDX1 label stream.
// Either may be gzip-compressed.
//
// Errors:
//   - ErrBadMagic, ErrLengthMismatch (header counts differ),
//     ErrMalformedRecord (zero-sized or oversized images, a rows·cols that
//     differs from WithFeatures, truncated data),
//     ErrLabelRange, ErrEmptyDataset.
//
// WithHeader is ignored.
func LoadIDX(images, labels io.Reader, opts ...Option) (*Set, error) {
	o := buildOptions(opts)

	img, err := decompressed(images)
	if err != nil {
		return nil, datasetErrorf("LoadIDX", err)
	}
	lbl, err := decompressed(labels)
	if err != nil {
		return nil, datasetErrorf("LoadIDX", err)
	}

	var ih [4]uint32 // magic, count, rows, cols
	if err = readHeader(img, ih[:], idxImagesMagic); err != nil {
		return nil, datasetErrorf("LoadIDX: images", err)
	}
	var lh [2]uint32 // magic, count
	if err = readHeader(lbl, lh[:], idxLabelsMagic); err != nil {
		return nil, datasetErrorf("LoadIDX: labels", err)
	}

	if lh[1] != ih[1] {
		return nil, datasetErrorf("LoadIDX", fmt.Errorf("%d images, %d labels: %w", ih[1], lh[1], ErrLengthMismatch))
	}
	if ih[1] == 0 {
		return nil, datasetErrorf("LoadIDX", ErrEmptyDataset)
	}
	size := uint64(ih[2]) * uint64(ih[3])
	if size == 0 || size > maxIDXFeatures {
		return nil, datasetErrorf("LoadIDX", fmt.Errorf("image size %dx%d: %w", ih[2], ih[3], ErrMalformedRecord))
	}
	features := int(size)
	if o.features > 0 && o.features != features {
		return nil, datasetErrorf("LoadIDX", fmt.Errorf("image size %dx%d, want %d features: %w", ih[2], ih[3], o.features, ErrMalformedRecord))
	}
	count := int(ih[1])
	if o.limit > 0 && o.limit < count {
		count = o.limit
	}

	// The header count is not trusted for allocation; storage grows as
	// examples are actually read.
	hint := min(count, idxPrealloc)
	set := &Set{Images: make([][]float64, 0, hint), Labels: make([]int, 0, hint), Classes: o.classes}
	pixels := make([]byte, features)
	var label [1]byte
	for i := 0; i < count; i++ {
		if _, err = io.ReadFull(lbl, label[:]); err != nil {
			return nil, datasetErrorf("LoadIDX: labels", fmt.Errorf("label %d: %v: %w", i, err, ErrMalformedRecord))
		}
		if int(label[0]) >= o.classes {
			return nil, datasetErrorf("LoadIDX", fmt.Errorf("example %d label %d, classes %d: %w", i, label[0], o.classes, ErrLabelRange))
		}
		if _, err = io.ReadFull(img, pixels); err != nil {
			return nil, datasetErrorf("LoadIDX: images", fmt.Errorf("image %d: %v: %w", i, err, ErrMalformedRecord))
		}
		image := make([]float64, features)
		for j, p := range pixels {
			image[j] = float64(p) / o.scale
		}
		set.Images = append(set.Images, image)
		set.Labels = append(set.Labels, int(label[0]))
	}

	return set, nil
}

// LoadIDXFiles opens both files and calls LoadIDX.
func LoadIDXFiles(imagesPath, labelsPath string, opts ...Option) (*Set, error) {
	var set *Set
	err := withFile(imagesPath, func(images io.Reader) error {
		return withFile(labelsPath, func(labels io.Reader) error {
			var err error
			set, err = LoadIDX(images, labels, opts...)
			return err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s, %s: %w", imagesPath, labelsPath, err)
	}

	return set, nil
}

// LoadIDXDir loads the training (train=true) or test pair of standard MNIST
// files from dir, preferring the uncompressed name over "<name>.gz".
func LoadIDXDir(dir string, train bool, opts ...Option) (*Set, error) {
	imagesName, labelsName := TestImagesFile, TestLabelsFile
	if train {
		imagesName, labelsName = TrainImagesFile, TrainLabelsFile
	}
	imagesPath, err := locate(dir, imagesName)
	if err != nil {
		return nil, err
	}
	labelsPath, err := locate(dir, labelsName)
	if err != nil {
		return nil, err
	}

	return LoadIDXFiles(imagesPath, labelsPath, opts...)
}

// locate returns dir/name or dir/name.gz, whichever exists first.
func locate(dir, name string) (string, error) {
	for _, candidate := range []string{name, name + ".gz"} {
		p := filepath.Join(dir, candidate)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("%s: %w", filepath.Join(dir, name), os.ErrNotExist)
}

// readHeader reads len(dst) big-endian uint32 values and checks dst[0] == magic.
func readHeader(r io.Reader, dst []uint32, magic uint32) error {
	if err := binary.Read(r, binary.BigEndian, dst); err != nil {
		return fmt.Errorf("header: %v: %w", err, ErrMalformedRecord)
	}
	if dst[0] != magic {
		return fmt.Errorf("got %d, want %d: %w", dst[0], magic, ErrBadMagic)
	}

	return nil
}
