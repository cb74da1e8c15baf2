// SPDX-License-Identifier: MIT

package matrix

// DotFMA_TestOnly exposes the private accumulation kernel to external tests
// so they can pin its exact floating-point order.
var DotFMA_TestOnly = dotFMA
