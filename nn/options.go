// SPDX-License-Identifier: MIT

package nn

import (
	"math"
	"math/rand"
)

// DefaultLearningRate is the step size used by Train when WithLearningRate
// is not given. It matches the rate the digit classifier is tuned for.
const DefaultLearningRate = 10.0

// Options configures network construction.
//
// LearningRate – rate used by Train; must be > 0 and finite.
// Rand         – generator for weight initialization; nil means time-seeded.
type Options struct {
	LearningRate float64
	Rand         *rand.Rand
}

// Option is a functional option for New and NewFromLayers.
type Option func(*Options)

// DefaultOptions returns the options applied before any Option.
func DefaultOptions() Options {
	return Options{LearningRate: DefaultLearningRate}
}

// WithLearningRate sets the rate used by Train.
// Panics if rate is not positive and finite.
func WithLearningRate(rate float64) Option {
	return func(o *Options) {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			panic(ErrInvalidLearningRate.Error())
		}
		o.LearningRate = rate
	}
}

// WithSeed initializes weights from a deterministic generator.
// Seed 0 selects a fixed default seed, so WithSeed(0) is reproducible too.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand initializes weights from rng. The network consumes draws from
// rng only during construction. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// buildOptions applies opts over the defaults and fills in the generator.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rngFromClock()
	}

	return o
}
