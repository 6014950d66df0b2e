// Package htest: chi-squared tests — goodness of fit against expected
// counts, and independence of a two-way contingency table.
package htest

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// chiSquareP returns the upper-tail p-value of a χ² statistic with df
// degrees of freedom.
func chiSquareP(x2, df float64) float64 {
	return distuv.ChiSquared{K: df}.Survival(x2)
}

// ChiSquareGoodnessOfFit tests whether observed category counts follow the
// expected distribution:
//
//	χ² = Σ (oᵢ − eᵢ)² / eᵢ,   df = k − 1
//
// Requires k ≥ 2 categories, equal-length slices, non-negative observed
// counts and strictly positive expected counts.
func ChiSquareGoodnessOfFit(observed, expected []float64) (TestResult, error) {
	if len(observed) != len(expected) {
		return TestResult{}, fmt.Errorf("ChiSquareGoodnessOfFit: %d vs %d: %w",
			len(observed), len(expected), ErrLengthMismatch)
	}
	if len(observed) < 2 {
		return TestResult{}, fmt.Errorf("ChiSquareGoodnessOfFit: %d categor(ies): %w",
			len(observed), ErrInsufficientData)
	}
	if err := validateFinite("ChiSquareGoodnessOfFit", observed); err != nil {
		return TestResult{}, err
	}
	if err := validateFinite("ChiSquareGoodnessOfFit", expected); err != nil {
		return TestResult{}, err
	}

	var x2 float64
	for i := range observed {
		if observed[i] < 0 {
			return TestResult{}, fmt.Errorf("ChiSquareGoodnessOfFit: negative observed count %d: %w",
				i, ErrInvalidValue)
		}
		if expected[i] <= 0 {
			return TestResult{}, fmt.Errorf("ChiSquareGoodnessOfFit: non-positive expected count %d: %w",
				i, ErrInvalidValue)
		}
		d := observed[i] - expected[i]
		x2 += d * d / expected[i]
	}

	df := float64(len(observed) - 1)

	return TestResult{Statistic: x2, DF: df, P: chiSquareP(x2, df)}, nil
}

// ChiSquareIndependence tests whether the row and column classifications of
// a two-way contingency table are independent. Expected counts derive from
// the marginals:
//
//	eᵢⱼ = rowSumᵢ · colSumⱼ / total,   df = (r − 1)(c − 1)
//
// Requires a rectangular table of at least 2×2 with non-negative entries and
// a positive grand total; a zero row or column marginal yields a zero
// expected count and fails with ErrInvalidValue.
func ChiSquareIndependence(table [][]float64) (TestResult, error) {
	r := len(table)
	if r < 2 || len(table[0]) < 2 {
		return TestResult{}, fmt.Errorf("ChiSquareIndependence: need at least 2x2: %w", ErrInsufficientData)
	}
	c := len(table[0])

	rowSums := make([]float64, r)
	colSums := make([]float64, c)
	var total float64
	for i, row := range table {
		if len(row) != c {
			return TestResult{}, fmt.Errorf("ChiSquareIndependence: row %d has %d column(s), want %d: %w",
				i, len(row), c, ErrLengthMismatch)
		}
		if err := validateFinite("ChiSquareIndependence", row); err != nil {
			return TestResult{}, err
		}
		for j, v := range row {
			if v < 0 {
				return TestResult{}, fmt.Errorf("ChiSquareIndependence: negative count (%d,%d): %w",
					i, j, ErrInvalidValue)
			}
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}
	if total <= 0 {
		return TestResult{}, fmt.Errorf("ChiSquareIndependence: empty table: %w", ErrInvalidValue)
	}

	var x2 float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			e := rowSums[i] * colSums[j] / total
			if e <= 0 {
				return TestResult{}, fmt.Errorf("ChiSquareIndependence: zero marginal at (%d,%d): %w",
					i, j, ErrInvalidValue)
			}
			d := table[i][j] - e
			x2 += d * d / e
		}
	}

	df := float64((r - 1) * (c - 1))

	return TestResult{Statistic: x2, DF: df, P: chiSquareP(x2, df)}, nil
}
