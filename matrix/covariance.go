// Package matrix: sample covariance estimation for column-oriented data,
// with an optional compute-then-invert convenience used by Mahalanobis
// distance callers.
package matrix

import "fmt"

// CovOption configures Covariance via functional arguments.
type CovOption func(*covOptions)

// covOptions holds covariance configuration; zero value is the default.
type covOptions struct {
	invert bool
}

// WithInverse makes Covariance return the INVERTED covariance matrix —
// the metric tensor for Mahalanobis distance. Equivalent to calling Invert
// on the plain covariance output; centralized here because every Mahalanobis
// caller needs exactly this compute-then-invert path.
func WithInverse() CovOption {
	return func(o *covOptions) { o.invert = true }
}

// Covariance estimates the d×d sample covariance matrix of data, where data
// holds n observation rows of d coordinates each.
//
// Blueprint:
//
//	Stage 1 (Validate): n ≥ 2 rows, rectangular, d ≥ 1, finite entries.
//	Stage 2 (Center): compute the sample mean of each dimension.
//	Stage 3 (Accumulate): for each pair (i ≤ j),
//	        Cov[i][j] = Σ (x_i − mean_i)(x_j − mean_j) / (n − 1),
//	        mirrored into (j, i) — the output is symmetric by construction.
//	Stage 4 (Finalize): with WithInverse, invert before returning.
//
// Errors: ErrInsufficientData (n < 2), ErrBadShape (no columns),
// ErrDimensionMismatch (ragged rows), ErrInvalidValue (NaN/±Inf entry),
// plus anything Invert reports in WithInverse mode (notably ErrSingular for
// degenerate data, e.g. a constant dimension).
//
// Complexity: O(n*d²) time, O(d²) memory. The input is not mutated.
func Covariance(data [][]float64, opts ...CovOption) (*Dense, error) {
	var o covOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: Validate sample shape. Sample covariance (n−1 denominator)
	// needs at least two observations.
	n := len(data)
	if n < 2 {
		return nil, fmt.Errorf("Covariance: %d observation(s): %w", n, ErrInsufficientData)
	}
	// FromRows enforces rectangularity, d ≥ 1 and finiteness, and gives us a
	// private flat copy to accumulate from.
	X, err := FromRows(data)
	if err != nil {
		return nil, fmt.Errorf("Covariance: %w", err)
	}
	d := X.c

	// Stage 2: Per-dimension sample means
	means := make([]float64, d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			means[j] += X.data[i*d+j]
		}
	}
	for j := 0; j < d; j++ {
		means[j] /= float64(n)
	}

	// Stage 3: Upper-triangle accumulation, mirrored for symmetry
	cov := &Dense{r: d, c: d, data: make([]float64, d*d)}
	denom := float64(n - 1)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += (X.data[k*d+i] - means[i]) * (X.data[k*d+j] - means[j])
			}
			v := sum / denom
			cov.data[i*d+j] = v
			cov.data[j*d+i] = v
		}
	}

	// Stage 4: Optional inversion
	if o.invert {
		inv, err := Invert(cov)
		if err != nil {
			return nil, fmt.Errorf("Covariance: %w", err)
		}

		return inv, nil
	}

	return cov, nil
}
