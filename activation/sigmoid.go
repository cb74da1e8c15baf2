// SPDX-License-Identifier: MIT

package activation

import "math"

// Sigmoid returns the logistic function 1 / (1 + e^-x).
// Output is in (0, 1) for every finite x; it saturates to 0 or 1 for large |x|.
// Complexity: O(1).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidPrime returns dσ/dx evaluated at the pre-activation value x:
// σ(x) * (1 - σ(x)). The maximum is 0.25 at x = 0.
// Complexity: O(1).
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)
	return s * (1.0 - s)
}
