// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idxImages encodes images of rows×cols bytes as an IDX3 stream.
func idxImages(t testing.TB, magic uint32, rows, cols int, images ...[]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, []uint32{magic, uint32(len(images)), uint32(rows), uint32(cols)}))
	for _, img := range images {
		buf.Write(img)
	}

	return buf.Bytes()
}

// idxLabels encodes labels as an IDX1 stream.
func idxLabels(t testing.TB, magic uint32, labels ...byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, []uint32{magic, uint32(len(labels))}))
	buf.Write(labels)

	return buf.Bytes()
}

// idxRaw encodes header words followed by payload, for headers that
// idxImages and idxLabels cannot express.
func idxRaw(t testing.TB, payload []byte, header ...uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, header))
	buf.Write(payload)

	return buf.Bytes()
}

func gzipped(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestLoadIDX(t *testing.T) {
	images := idxImages(t, 2051, 2, 2, []byte{0, 64, 128, 255}, []byte{1, 2, 3, 4})
	labels := idxLabels(t, 2049, 7, 3)

	set, err := dataset.LoadIDX(bytes.NewReader(images), bytes.NewReader(labels))
	require.NoError(t, err)
	require.NoError(t, set.Validate())
	assert.Equal(t, []int{7, 3}, set.Labels)
	assert.Equal(t, 4, set.Features())
	assert.Equal(t, []float64{0, 0.25, 0.5, 255.0 / 256.0}, set.Images[0])

	// A matching feature count is accepted.
	_, err = dataset.LoadIDX(bytes.NewReader(images), bytes.NewReader(labels), dataset.WithFeatures(4))
	require.NoError(t, err)
}

func TestLoadIDX_GzipAndLimit(t *testing.T) {
	images := idxImages(t, 2051, 1, 3, []byte{1, 2, 3}, []byte{4, 5, 6}, []byte{7, 8, 9})
	labels := idxLabels(t, 2049, 0, 1, 2)

	set, err := dataset.LoadIDX(bytes.NewReader(gzipped(t, images)), bytes.NewReader(labels),
		dataset.WithLimit(2), dataset.WithPixelScale(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, set.Labels)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, set.Images)
}

func TestLoadIDX_Errors(t *testing.T) {
	goodImages := idxImages(t, 2051, 1, 2, []byte{1, 2})
	goodLabels := idxLabels(t, 2049, 1)

	cases := map[string]struct {
		images, labels []byte
		opts           []dataset.Option
		want           error
	}{
		"image magic":     {idxImages(t, 2049, 1, 2, []byte{1, 2}), goodLabels, nil, dataset.ErrBadMagic},
		"label magic":     {goodImages, idxLabels(t, 2051, 1), nil, dataset.ErrBadMagic},
		"count mismatch":  {goodImages, idxLabels(t, 2049, 1, 2), nil, dataset.ErrLengthMismatch},
		"truncated image": {goodImages[:len(goodImages)-1], goodLabels, nil, dataset.ErrMalformedRecord},
		"short header":    {goodImages[:6], goodLabels, nil, dataset.ErrMalformedRecord},
		"empty":           {idxImages(t, 2051, 1, 2), idxLabels(t, 2049), nil, dataset.ErrEmptyDataset},
		"zero size":       {idxImages(t, 2051, 0, 2, nil), goodLabels, nil, dataset.ErrMalformedRecord},
		"label range":     {goodImages, idxLabels(t, 2049, 4), []dataset.Option{dataset.WithClasses(3)}, dataset.ErrLabelRange},
		"huge image": {
			idxRaw(t, []byte{1, 2}, 2051, 1, 0xFFFFFFFF, 0xFFFFFFFF), goodLabels, nil, dataset.ErrMalformedRecord,
		},
		"image too large": {
			idxRaw(t, nil, 2051, 1, 1<<12, 1<<12+1), goodLabels, nil, dataset.ErrMalformedRecord,
		},
		"huge count": {
			idxRaw(t, []byte{1, 2}, 2051, 0xFFFFFFFF, 1, 2), idxRaw(t, []byte{1}, 2049, 0xFFFFFFFF), nil, dataset.ErrMalformedRecord,
		},
		"features mismatch": {goodImages, goodLabels, []dataset.Option{dataset.WithFeatures(784)}, dataset.ErrMalformedRecord},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = dataset.LoadIDX(bytes.NewReader(tc.images), bytes.NewReader(tc.labels), tc.opts...)
			})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadIDXDir(t *testing.T) {
	dir := t.TempDir()
	images := idxImages(t, 2051, 1, 1, []byte{128}, []byte{0})
	labels := idxLabels(t, 2049, 4, 2)

	// Training pair plain, test pair gzip-compressed under the .gz name.
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.TrainImagesFile), images, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.TrainLabelsFile), labels, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.TestImagesFile+".gz"), gzipped(t, images), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.TestLabelsFile+".gz"), gzipped(t, labels), 0o600))

	train, err := dataset.LoadIDXDir(dir, true)
	require.NoError(t, err)
	test, err := dataset.LoadIDXDir(dir, false)
	require.NoError(t, err)
	assert.Equal(t, train.Labels, test.Labels)
	assert.Equal(t, train.Images, test.Images)

	_, err = dataset.LoadIDXDir(t.TempDir(), true)
	require.ErrorIs(t, err, os.ErrNotExist)
}
