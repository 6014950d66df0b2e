// Package htest: Student's t family — one-sample, Welch two-sample, paired.
// The t-distribution CDF comes from gonum's distuv; only the closed-form
// statistics live here.
package htest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// twoSidedT returns the two-sided p-value of a t statistic with df degrees
// of freedom.
func twoSidedT(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return 2 * dist.CDF(-math.Abs(t))
}

// OneSampleTTest tests whether the mean of sample differs from mu.
//
//	t  = (mean − mu) / (s / √n),   df = n − 1
//
// Requires n ≥ 2 (a sample variance) and a non-degenerate sample: zero
// variance with mean ≠ mu has no finite statistic and fails with
// ErrInvalidValue.
func OneSampleTTest(sample []float64, mu float64) (TestResult, error) {
	n := len(sample)
	if n < 2 {
		return TestResult{}, fmt.Errorf("OneSampleTTest: %d observation(s): %w", n, ErrInsufficientData)
	}
	mean, err := Mean(sample)
	if err != nil {
		return TestResult{}, fmt.Errorf("OneSampleTTest: %w", err)
	}
	variance, err := Variance(sample)
	if err != nil {
		return TestResult{}, fmt.Errorf("OneSampleTTest: %w", err)
	}

	df := float64(n - 1)
	se := math.Sqrt(variance / float64(n))
	if se == 0 {
		if mean == mu {
			// every observation equals mu exactly: no evidence against H0
			return TestResult{Statistic: 0, DF: df, P: 1}, nil
		}

		return TestResult{}, fmt.Errorf("OneSampleTTest: zero variance: %w", ErrInvalidValue)
	}

	t := (mean - mu) / se

	return TestResult{Statistic: t, DF: df, P: twoSidedT(t, df)}, nil
}

// TwoSampleTTest tests whether the means of two independent samples differ,
// using Welch's unequal-variance form:
//
//	t  = (meanA − meanB) / √(va/na + vb/nb)
//	df = (va/na + vb/nb)² / ((va/na)²/(na−1) + (vb/nb)²/(nb−1))
//
// Welch's df is fractional in general. Both samples need n ≥ 2; two
// degenerate samples (both variances zero) fail with ErrInvalidValue unless
// their means coincide.
func TwoSampleTTest(a, b []float64) (TestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return TestResult{}, fmt.Errorf("TwoSampleTTest: %d and %d observation(s): %w",
			len(a), len(b), ErrInsufficientData)
	}
	meanA, err := Mean(a)
	if err != nil {
		return TestResult{}, fmt.Errorf("TwoSampleTTest: sample a: %w", err)
	}
	meanB, err := Mean(b)
	if err != nil {
		return TestResult{}, fmt.Errorf("TwoSampleTTest: sample b: %w", err)
	}
	varA, err := Variance(a)
	if err != nil {
		return TestResult{}, fmt.Errorf("TwoSampleTTest: sample a: %w", err)
	}
	varB, err := Variance(b)
	if err != nil {
		return TestResult{}, fmt.Errorf("TwoSampleTTest: sample b: %w", err)
	}

	na, nb := float64(len(a)), float64(len(b))
	sa, sb := varA/na, varB/nb
	se := math.Sqrt(sa + sb)
	if se == 0 {
		if meanA == meanB {
			return TestResult{Statistic: 0, DF: na + nb - 2, P: 1}, nil
		}

		return TestResult{}, fmt.Errorf("TwoSampleTTest: zero variance in both samples: %w", ErrInvalidValue)
	}

	t := (meanA - meanB) / se
	df := (sa + sb) * (sa + sb) / (sa*sa/(na-1) + sb*sb/(nb-1))

	return TestResult{Statistic: t, DF: df, P: twoSidedT(t, df)}, nil
}

// PairedTTest tests whether the mean of the per-pair differences a[i]−b[i]
// differs from zero — a one-sample t-test on the differences.
// Fails with ErrLengthMismatch when the samples differ in length.
func PairedTTest(a, b []float64) (TestResult, error) {
	if len(a) != len(b) {
		return TestResult{}, fmt.Errorf("PairedTTest: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	if len(a) < 2 {
		return TestResult{}, fmt.Errorf("PairedTTest: %d pair(s): %w", len(a), ErrInsufficientData)
	}

	diffs := make([]float64, len(a))
	for i := range a {
		diffs[i] = a[i] - b[i]
	}

	res, err := OneSampleTTest(diffs, 0)
	if err != nil {
		return TestResult{}, fmt.Errorf("PairedTTest: %w", err)
	}

	return res, nil
}
