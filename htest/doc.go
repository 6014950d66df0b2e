// Package htest provides closed-form statistical hypothesis tests and
// sample-size calculators over summary statistics of numeric samples.
//
// 🚀 What is htest?
//
//	The inference companion to denstat's clustering/distance engine:
//	  • t-tests — one-sample, two-sample (Welch) and paired
//	  • z-test — known population standard deviation
//	  • chi-squared — goodness of fit and independence of a contingency table
//	  • sample sizes — mean and proportion estimation, with optional finite
//	    population correction (FPC)
//
// Every test reduces its sample(s) to mean/variance/size and evaluates one
// closed-form statistic; p-values and quantiles come from
// gonum.org/v1/gonum/stat/distuv (Student's t, normal, chi-squared) — this
// package contains no distribution code of its own.
//
// ✨ Conventions:
//
//   - All p-values are two-sided for t/z tests and upper-tail for χ²
//   - Sample variance uses the n−1 denominator throughout
//   - Fail-fast sentinels: ErrInsufficientData, ErrInvalidValue,
//     ErrLengthMismatch — matched with errors.Is, never panics
//
// ⚙️ Usage:
//
//	res, err := htest.OneSampleTTest(sample, 3.0)
//	// res.Statistic, res.DF, res.P
//
//	n, err := htest.SampleSizeProportion(0.95, 0.05, 0.5,
//	    htest.WithPopulation(1000)) // FPC applied
package htest
