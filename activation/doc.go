// Package activation provides the single squashing function used by lvnet
// layers: the logistic sigmoid and its derivative.
//
// Both functions are scalar and pure. Matrix-wide application lives in the
// matrix package (ApplySigmoid, ApplySigmoidPrime), which calls into here.
//
// Contract:
//
//	Sigmoid(x)      = 1 / (1 + e^-x)
//	SigmoidPrime(x) = Sigmoid(x) * (1 - Sigmoid(x))
//
// SigmoidPrime takes the PRE-activation value z, not the already squashed
// output. Callers must keep z around during the forward pass.
package activation
