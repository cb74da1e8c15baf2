// Package lvnet is a from-scratch feed-forward neural network trainer:
// a dense matrix kernel, a sigmoid multilayer perceptron trained by
// mini-batch back-propagation, and the plumbing to feed it handwritten
// digits.
//
// What is inside?
//
//	• activation – logistic sigmoid σ and its derivative σ' = σ(1−σ)
//	• matrix     – row-major Dense, sentinel errors, FMA-accumulated products
//	• nn         – Layer, Network, Infer, TrainStep, ClassifyCorrect, Accuracy
//	• dataset    – CSV and IDX (MNIST) loaders, gzip detection, shuffle, batches
//	• trainer    – epoch loop with cancellation between steps, success-rate report
//	• cmd/lvnet  – command-line trainer
//
// Layout in one line: examples are rows, weights are inputs×outputs, and a
// bias is a 1×outputs row broadcast over the batch, so z = a·W + b.
//
// Quick start:
//
//	train, _ := dataset.LoadCSVFile("mnist_train.txt")
//	test, _ := dataset.LoadCSVFile("mnist_test.txt")
//	net, _ := nn.New(784, []int{16, 16, 10}, nn.WithSeed(7))
//	_, _ = trainer.Run(ctx, net, train, trainer.DefaultConfig())
//	rep, _ := trainer.Evaluate(net, test)
//	fmt.Println(rep) // success rate: c/t  (p%)
//
// Everything is pure Go, single-threaded and deterministic under a seed.
package lvnet
