// Package htest: z-test for a mean with known population standard deviation.
package htest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZTest tests whether the mean of sample differs from mu, given the KNOWN
// population standard deviation sigma:
//
//	z = (mean − mu) / (sigma / √n)
//
// The two-sided p-value comes from the standard normal CDF; DF is 0 (the
// normal distribution has no degrees-of-freedom parameter). Requires n ≥ 1
// and sigma > 0.
func ZTest(sample []float64, mu, sigma float64) (TestResult, error) {
	if len(sample) == 0 {
		return TestResult{}, fmt.Errorf("ZTest: %w", ErrInsufficientData)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return TestResult{}, fmt.Errorf("ZTest: sigma %v: %w", sigma, ErrInvalidValue)
	}
	mean, err := Mean(sample)
	if err != nil {
		return TestResult{}, fmt.Errorf("ZTest: %w", err)
	}

	z := (mean - mu) / (sigma / math.Sqrt(float64(len(sample))))
	norm := distuv.Normal{Mu: 0, Sigma: 1}

	return TestResult{Statistic: z, DF: 0, P: 2 * norm.CDF(-math.Abs(z))}, nil
}
