// SPDX-License-Identifier: MIT

package dataset

import "math"

const (
	// DefaultPixelScale divides raw 8-bit intensities into [0, 1).
	DefaultPixelScale = 256.0

	// DefaultClasses is the number of digit classes.
	DefaultClasses = 10
)

// options configures the loaders. Zero Features and Limit mean "any".
type options struct {
	header   bool
	features int
	classes  int
	limit    int
	scale    float64
}

// Option is a functional option for LoadCSV and LoadIDX.
type Option func(*options)

func defaultOptions() options {
	return options{classes: DefaultClasses, scale: DefaultPixelScale}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithHeader skips the first CSV record. IDX loading ignores it.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithFeatures requires exactly n values per example: n+1 fields per CSV
// record, rows·cols == n for IDX images. Panics if n <= 0.
func WithFeatures(n int) Option {
	return func(o *options) {
		if n <= 0 {
			panic("dataset: WithFeatures requires n > 0")
		}
		o.features = n
	}
}

// WithClasses sets the number of classes labels must fall into. Panics if k <= 0.
func WithClasses(k int) Option {
	return func(o *options) {
		if k <= 0 {
			panic("dataset: WithClasses requires k > 0")
		}
		o.classes = k
	}
}

// WithLimit stops after n examples; n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithPixelScale sets the divisor applied to every raw value.
// Panics unless s is positive and finite.
func WithPixelScale(s float64) Option {
	return func(o *options) {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			panic("dataset: WithPixelScale requires a positive finite scale")
		}
		o.scale = s
	}
}

// full reports whether n examples reach the configured limit.
func (o options) full(n int) bool {
	return o.limit > 0 && n >= o.limit
}
