// Package matrix provides the dense linear-algebra kernels behind denstat's
// distance and enrichment packages: matrix storage, pivoted inversion, and
// sample covariance estimation.
//
// 🚀 What is matrix?
//
//	A minimal float64 matrix layer tuned for the shapes this library
//	actually meets (covariance matrices of a handful of dimensions):
//	  • Dense — row-major storage with bounds-checked At/Set
//	  • Invert — Gauss–Jordan elimination with partial pivoting
//	  • Covariance — sample covariance of column-oriented data,
//	    optionally inverted in one call (WithInverse)
//
// ✨ Guarantees:
//
//   - Inputs are never mutated; every operation returns a fresh matrix
//   - Strict fail-fast validation with package sentinel errors
//   - Deterministic loop orders — identical inputs give bit-identical output
//   - Partial pivoting bounds elimination error; pivots below PivotEpsilon
//     surface as ErrSingular rather than garbage output
//
// ⚙️ Usage:
//
//	cov, err := matrix.Covariance(samples)           // d×d, symmetric
//	inv, err := matrix.Covariance(samples, matrix.WithInverse())
//	id, _ := matrix.Identity(3)
//	b, err := matrix.Invert(a)                       // a unchanged
//
// Errors are sentinels (ErrSingular, ErrDimensionMismatch, …); match them
// with errors.Is.
package matrix
