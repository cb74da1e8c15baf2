// SPDX-License-Identifier: MIT

// Package trainer drives an nn.Network over a dataset.Set: epochs of
// optionally shuffled mini-batches, cancellation between steps, progress
// logging and a success-rate report.
//
// A training step is never interrupted: Run checks its context before each
// step and returns the context error with the network left as the last
// completed step produced it.
package trainer
