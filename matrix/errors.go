// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped with fmt.Errorf("Op: %w", ErrX) at the operation boundary so that
// callers still match with errors.Is while seeing the failing operation and,
// where feasible, the offending index.
var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// including empty input collections.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged input rows or a vector whose length disagrees with a matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion meets a pivot below PivotEpsilon
	// after row selection: the matrix is not invertible within tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInsufficientData signals too few sample rows to estimate a sample
	// covariance (fewer than two observations).
	ErrInsufficientData = errors.New("matrix: insufficient data")

	// ErrInvalidValue signals a NaN or ±Inf entry where finite values are
	// required.
	ErrInvalidValue = errors.New("matrix: non-finite value")
)
