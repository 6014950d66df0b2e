// Package distance: vector metrics. Dimension mismatches surface as
// matrix.ErrDimensionMismatch so callers handle one sentinel for every
// shape disagreement in the pipeline.
package distance

import (
	"fmt"
	"math"

	"github.com/denstat/denstat/matrix"
)

// Euclidean returns the L2 distance between a and b.
// Returns matrix.ErrDimensionMismatch when the lengths disagree.
// Complexity: O(d).
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Euclidean: %d vs %d: %w", len(a), len(b), matrix.ErrDimensionMismatch)
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// Manhattan returns the L1 (city-block) distance between a and b.
// Returns matrix.ErrDimensionMismatch when the lengths disagree.
// Complexity: O(d).
func Manhattan(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Manhattan: %d vs %d: %w", len(a), len(b), matrix.ErrDimensionMismatch)
	}

	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum, nil
}

// Mahalanobis returns the Mahalanobis distance between x1 and x2 under the
// inverse covariance matrix inv: sqrt((x1−x2)ᵗ · inv · (x1−x2)).
//
// Contract: len(x1) == len(x2) == inv.Rows() == inv.Cols(); violations fail
// with matrix.ErrDimensionMismatch (or matrix.ErrNilMatrix for a nil inv).
//
// The quadratic form is ≥ 0 for any positive semi-definite inv and is 0 iff
// x1 == x2 component-wise. A numerically imperfect inv can push it slightly
// negative; that case is CLAMPED to 0 before the square root, so the result
// is always a finite non-negative number. inv is read-only and may be reused
// across many calls.
//
// Complexity: O(d²).
func Mahalanobis(x1, x2 []float64, inv *matrix.Dense) (float64, error) {
	if inv == nil {
		return 0, fmt.Errorf("Mahalanobis: %w", matrix.ErrNilMatrix)
	}
	d := len(x1)
	if len(x2) != d {
		return 0, fmt.Errorf("Mahalanobis: vectors %d vs %d: %w", d, len(x2), matrix.ErrDimensionMismatch)
	}
	if inv.Rows() != d || inv.Cols() != d {
		return 0, fmt.Errorf("Mahalanobis: matrix %dx%d for %d-dimensional vectors: %w",
			inv.Rows(), inv.Cols(), d, matrix.ErrDimensionMismatch)
	}

	// diff = x1 − x2
	diff := make([]float64, d)
	for i := range diff {
		diff[i] = x1[i] - x2[i]
	}

	// q = diffᵗ · inv · diff
	mv, err := matrix.MulVec(inv, diff)
	if err != nil {
		return 0, fmt.Errorf("Mahalanobis: %w", err)
	}
	var q float64
	for i := range diff {
		q += diff[i] * mv[i]
	}

	// Clamp policy: tiny negative quadratic forms round up to zero.
	if q < 0 {
		q = 0
	}

	return math.Sqrt(q), nil
}
