// Package matrix: general square-matrix inversion via Gauss–Jordan
// elimination with partial pivoting, following strict fail-fast patterns.
package matrix

import (
	"fmt"
	"math"
)

// PivotEpsilon is the singularity tolerance for inversion: if, after row
// selection, the largest available pivot magnitude in the active column is
// below this threshold, the matrix is declared singular.
const PivotEpsilon = 1e-12

// Invert returns the inverse of the square matrix m, or an error if m is
// nil, not square, or singular within PivotEpsilon. The input is not mutated.
//
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square (n ≥ 1).
//	Stage 2 (Prepare): copy m into a working array augmented with I.
//	Stage 3 (Execute): for each column, swap in the largest-magnitude pivot
//	        (partial pivoting), normalize the pivot row, eliminate the
//	        column from every other row.
//	Stage 4 (Finalize): the augmented half now holds m⁻¹.
//
// For n=1 this degenerates to the reciprocal, failing as singular when the
// single entry is ~0. Partial pivoting keeps elimination numerically stable;
// a zero (or near-zero) pivot after row selection means no row can supply a
// usable pivot, i.e. the matrix is singular.
//
// Complexity: O(n³) time, O(n²) memory.
func Invert(m *Dense) (*Dense, error) {
	// Stage 1: Validate input shape
	if m == nil {
		return nil, fmt.Errorf("Invert: %w", ErrNilMatrix)
	}
	n := m.r
	if n != m.c {
		return nil, fmt.Errorf("Invert: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	// Stage 2: Working copy of m alongside an identity of the same order.
	// a is reduced to I while inv accumulates the same row operations.
	a := make([]float64, len(m.data))
	copy(a, m.data)
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	// Stage 3: Eliminate column by column
	for col := 0; col < n; col++ {
		// Partial pivoting: pick the row (>= col) with the largest |a[row][col]|
		pivotRow := col
		pivotMag := math.Abs(a[col*n+col])
		for row := col + 1; row < n; row++ {
			if mag := math.Abs(a[row*n+col]); mag > pivotMag {
				pivotRow, pivotMag = row, mag
			}
		}
		if pivotMag < PivotEpsilon {
			return nil, fmt.Errorf("Invert: no usable pivot in column %d: %w", col, ErrSingular)
		}
		if pivotRow != col {
			swapRows(a, n, col, pivotRow)
			swapRows(inv, n, col, pivotRow)
		}

		// Normalize the pivot row so a[col][col] == 1
		pivot := a[col*n+col]
		for j := 0; j < n; j++ {
			a[col*n+j] /= pivot
			inv[col*n+j] /= pivot
		}

		// Eliminate the active column from every other row
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := a[row*n+col]
			if factor == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[row*n+j] -= factor * a[col*n+j]
				inv[row*n+j] -= factor * inv[col*n+j]
			}
		}
	}

	// Stage 4: Return accumulated inverse
	return &Dense{r: n, c: n, data: inv}, nil
}

// swapRows exchanges rows i and j of an n-column flat row-major array.
func swapRows(data []float64, n, i, j int) {
	ri, rj := data[i*n:(i+1)*n], data[j*n:(j+1)*n]
	for k := 0; k < n; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// MulVec computes m·x for a vector x of length m.Cols().
// Returns ErrDimensionMismatch when the lengths disagree.
// Deterministic row-major accumulation. Complexity: O(r*c).
func MulVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, fmt.Errorf("MulVec: vector length %d, matrix columns %d: %w",
			len(x), m.c, ErrDimensionMismatch)
	}

	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		var sum float64
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Mul computes the matrix product a·b.
// Returns ErrDimensionMismatch unless a.Cols() == b.Rows().
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}
