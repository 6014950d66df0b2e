// Package htest: sample-size calculators for estimating a mean or a
// proportion at a given confidence level and margin of error, with optional
// finite population correction.
package htest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// criticalZ returns the two-sided critical value for the given confidence
// level, e.g. 0.95 → 1.959964.
func criticalZ(confidence float64) float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}

	return norm.Quantile(1 - (1-confidence)/2)
}

// finishSampleSize applies the finite population correction (if configured)
// and rounds the raw size up to a whole number of units.
func finishSampleSize(op string, n0 float64, opts []SampleOption) (int, error) {
	var o sampleOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.population < 0 {
		return 0, fmt.Errorf("%s: population %d: %w", op, o.population, ErrInvalidValue)
	}

	n := n0
	if o.population > 0 {
		// FPC: the sample is a non-negligible fraction of a finite population
		n = n0 / (1 + (n0-1)/float64(o.population))
	}

	return int(math.Ceil(n)), nil
}

// SampleSizeMean returns the minimum sample size for estimating a population
// mean with the given two-sided confidence level, margin of error and known
// (or assumed) population standard deviation sigma:
//
//	n₀ = (z · sigma / margin)²
//
// With WithPopulation(N) the finite population correction shrinks n₀:
// n = n₀ / (1 + (n₀−1)/N). The result is rounded up.
// Requires confidence ∈ (0,1), margin > 0, sigma > 0.
func SampleSizeMean(confidence, margin, sigma float64, opts ...SampleOption) (int, error) {
	if !(confidence > 0 && confidence < 1) {
		return 0, fmt.Errorf("SampleSizeMean: confidence %v: %w", confidence, ErrInvalidValue)
	}
	if !(margin > 0) || !(sigma > 0) || math.IsInf(margin, 1) || math.IsInf(sigma, 1) {
		return 0, fmt.Errorf("SampleSizeMean: margin %v, sigma %v: %w", margin, sigma, ErrInvalidValue)
	}

	z := criticalZ(confidence)
	n0 := (z * sigma / margin) * (z * sigma / margin)

	return finishSampleSize("SampleSizeMean", n0, opts)
}

// SampleSizeProportion returns the minimum sample size for estimating a
// population proportion with the given two-sided confidence level and margin
// of error, using p as the anticipated proportion (0.5 is the conservative
// maximum-variance choice):
//
//	n₀ = z² · p(1−p) / margin²
//
// WithPopulation(N) applies the finite population correction as in
// SampleSizeMean. Requires confidence ∈ (0,1), margin > 0, p ∈ [0,1].
func SampleSizeProportion(confidence, margin, p float64, opts ...SampleOption) (int, error) {
	if !(confidence > 0 && confidence < 1) {
		return 0, fmt.Errorf("SampleSizeProportion: confidence %v: %w", confidence, ErrInvalidValue)
	}
	if !(margin > 0) || math.IsInf(margin, 1) {
		return 0, fmt.Errorf("SampleSizeProportion: margin %v: %w", margin, ErrInvalidValue)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("SampleSizeProportion: proportion %v: %w", p, ErrInvalidValue)
	}

	z := criticalZ(confidence)
	n0 := z * z * p * (1 - p) / (margin * margin)

	return finishSampleSize("SampleSizeProportion", n0, opts)
}
