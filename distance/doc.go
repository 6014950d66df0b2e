// Package distance provides vector metrics (Euclidean, Manhattan,
// Mahalanobis) and record-level distance functions used by the clustering
// and enrichment packages.
//
// 🚀 What is distance?
//
//	The metric layer of denstat:
//	  • Euclidean / Manhattan — plain vector metrics
//	  • Mahalanobis — sqrt((x1−x2)ᵗ · Σ⁻¹ · (x1−x2)) given an inverse
//	    covariance matrix (the metric tensor), accounting for correlated
//	    dimensions
//	  • Func — a record→record distance signature, the pluggable metric
//	    parameter of dbscan.Cluster
//	  • RecordEuclidean / RecordMahalanobis — adapters that project records
//	    onto named fields and apply a vector metric
//
// ✨ Guarantees:
//
//   - Strict dimension checks: every metric fails with
//     matrix.ErrDimensionMismatch when operand lengths disagree
//   - Mahalanobis is never negative: a negative quadratic form (possible
//     under an ill-conditioned inverse covariance matrix) is clamped to 0
//     before the square root — the documented, deterministic policy
//   - With the identity matrix as metric tensor, Mahalanobis equals the
//     Euclidean distance
//
// ⚙️ Usage:
//
//	inv, _ := matrix.Covariance(samples, matrix.WithInverse())
//	d, err := distance.Mahalanobis(x1, x2, inv)
//
//	fn := distance.RecordEuclidean("x", "y") // distance.Func for dbscan
package distance
