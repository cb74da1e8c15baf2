// Package matrix provides the dense numeric kernel used by lvnet.
//
// 🚀 What is here?
//
//	A single concrete type, Dense, holding float64 values in one flat
//	row-major buffer (offset = i*cols + j), plus the arithmetic a mini-batch
//	backpropagation engine needs:
//	  • elementwise Add, Sub, Hadamard and scalar Scale
//	  • Mul, MulTransposeLeft (Aᵀ·B) and MulTransposeRight (A·Bᵀ)
//	  • BroadcastAddRow (bias over a batch) and ColumnSum (batch reduction)
//	  • ApplySigmoid / ApplySigmoidPrime and a generic Map
//	  • Transpose and in-place AddInPlace / SubInPlace / ScaleInPlace
//
// ✨ Contracts:
//   - Shapes are validated before any allocation; mismatches return
//     ErrDimensionMismatch wrapped with the operation name. Nothing is
//     silently padded or truncated.
//   - Constructors reject zero-sized shapes with ErrEmptyInput and copy the
//     caller's data, so no external slice aliases a matrix.
//   - Every dot product accumulates left to right with a fused multiply-add:
//     acc = FMA(a[k], b[k], acc), k = 0..n-1, starting from 0. Results are
//     therefore bit-reproducible across runs and across the three product
//     variants.
//   - The transpose-product variants read the operand in transposed index
//     order and never materialize the transposed matrix.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.NewDense(2, 2, []float64{1, 0, 0, 1})
//	g, err := matrix.MulTransposeLeft(a, b) // aᵀ·b, shape 3×2
//
// All errors are package sentinels; match them with errors.Is.
package matrix
