// SPDX-License-Identifier: MIT

// Package dataset loads labeled feature vectors and turns them into the
// mini-batches package nn trains on.
//
// Sources:
//   - CSV, one example per line: label,p0,p1,...,p{n-1} (LoadCSV).
//   - IDX, the binary MNIST format: an IDX3 image file (magic 2051) and an
//     IDX1 label file (magic 2049), big-endian headers (LoadIDX).
//
// Either source may be gzip-compressed; compression is detected from the
// stream's magic bytes. Raw intensities are divided by the pixel scale
// (DefaultPixelScale unless WithPixelScale is given).
//
// Preparation:
//   - OneHot expands a label into a target row.
//   - Shuffle permutes images and labels identically from one seed.
//   - Split and Batches cut a Set for evaluation and training.
//
// Package dataset never logs; every failure is a wrapped sentinel error.
package dataset
