// SPDX-License-Identifier: MIT

// Package nn implements a fully connected feed-forward network trained by
// mini-batch gradient descent with back-propagation.
//
// Layout:
//   - A mini-batch of m examples with n features is an m×n matrix (one
//     example per row); targets are m×k one-hot rows.
//   - A Layer owns an inputs×outputs weight matrix W and a 1×outputs bias b;
//     its forward step is σ(a_prev·W + b), the bias broadcast over every row.
//   - The only activation is the logistic sigmoid (package activation).
//
// Training contract:
//   - The learning rate is positive and gradients are subtracted:
//     W ← W − rate/m · a_prevᵀ·δ and b ← b − rate/m · Σ_rows δ.
//   - Every gradient of a step is computed from the same snapshot of the
//     weights before any Layer is written. A step that returns an error has
//     modified nothing.
//
// Randomness:
//   - Weight initialization draws standard-normal values from an injected
//     *rand.Rand (WithRand, WithSeed). Without either option a time-seeded
//     generator is created at construction.
//
// Concurrency:
//   - A Network is not safe for concurrent use; a training step owns it
//     exclusively.
package nn
