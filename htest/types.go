// Package htest: result type, options and error definitions.
package htest

import "errors"

// Sentinel errors for hypothesis testing and sample sizing.
var (
	// ErrInsufficientData is returned when a sample is too small for the
	// requested statistic (e.g. fewer than two observations for a variance).
	ErrInsufficientData = errors.New("htest: insufficient data")

	// ErrInvalidValue is returned for non-finite observations and for
	// out-of-range parameters (sigma ≤ 0, confidence outside (0,1),
	// margin ≤ 0, proportion outside [0,1], non-positive expected counts).
	ErrInvalidValue = errors.New("htest: invalid value or parameter")

	// ErrLengthMismatch is returned when paired samples or
	// observed/expected slices differ in length.
	ErrLengthMismatch = errors.New("htest: sample lengths differ")
)

// TestResult holds the outcome of a hypothesis test.
type TestResult struct {
	// Statistic is the test statistic: t, z, or χ² depending on the test.
	Statistic float64

	// DF is the degrees of freedom. The z-test has none and reports 0;
	// Welch's t-test yields a fractional DF by construction.
	DF float64

	// P is the p-value: two-sided for t/z tests, upper-tail for χ² tests.
	P float64
}

// SampleOption configures the sample-size calculators.
type SampleOption func(*sampleOptions)

// sampleOptions holds calculator configuration; zero value = infinite
// population (no correction).
type sampleOptions struct {
	population int
}

// WithPopulation applies the finite population correction (FPC) for a
// population of N units: n = n0 / (1 + (n0−1)/N). Use when the sample is a
// non-negligible fraction of the population. N must be ≥ 1.
func WithPopulation(n int) SampleOption {
	return func(o *sampleOptions) { o.population = n }
}
