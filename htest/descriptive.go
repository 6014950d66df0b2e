// Package htest: the trivial reductions feeding every closed-form test —
// mean, sample variance, standard deviation.
package htest

import (
	"fmt"
	"math"
)

// validateFinite rejects NaN/±Inf observations, naming the offending index.
func validateFinite(op string, xs []float64) error {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: observation %d: %w", op, i, ErrInvalidValue)
		}
	}

	return nil
}

// Mean returns the arithmetic mean of xs.
// Errors: ErrInsufficientData (empty), ErrInvalidValue (non-finite entry).
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Mean: %w", ErrInsufficientData)
	}
	if err := validateFinite("Mean", xs); err != nil {
		return 0, err
	}

	var sum float64
	for _, v := range xs {
		sum += v
	}

	return sum / float64(len(xs)), nil
}

// Variance returns the sample variance of xs (n−1 denominator), using the
// two-pass formula for numerical stability.
// Errors: ErrInsufficientData (fewer than 2 observations), ErrInvalidValue.
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("Variance: %d observation(s): %w", len(xs), ErrInsufficientData)
	}
	m, err := Mean(xs)
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}

	var ss float64
	for _, v := range xs {
		d := v - m
		ss += d * d
	}

	return ss / float64(len(xs)-1), nil
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, fmt.Errorf("StdDev: %w", err)
	}

	return math.Sqrt(v), nil
}
