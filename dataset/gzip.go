// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
)

// gzipMagic opens every gzip member (RFC 1952).
var gzipMagic = []byte{0x1f, 0x8b}

// decompressed returns r, transparently gunzipped when it starts with the
// gzip magic bytes. Plain streams are passed through buffered.
func decompressed(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(head, gzipMagic) {
		return br, nil
	}

	return gzip.NewReader(br)
}

// withFile opens path and passes it to fn, closing it afterwards.
func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}
