// Package denstat is an in-memory analytics toolkit for tabular records —
// density clustering, covariance-aware distances, and the linear-algebra
// kernels they stand on.
//
// 🚀 What is denstat?
//
//	A small, deterministic library that annotates collections of records
//	(field→value maps) with derived quantities:
//		• Linear algebra: dense matrices, pivoted inversion, sample covariance
//		• Distances: Euclidean, Manhattan, Mahalanobis (metric-tensor form)
//		• Enrichment: per-record Mahalanobis distance + normalized similarity
//		• Clustering: DBSCAN with core/border/noise classification
//		• Hypothesis testing: t-tests, z-test, chi-squared, sample sizes
//
// ✨ Why denstat?
//
//   - Deterministic by contract – sorted dimension order, input-order scans,
//     reproducible cluster numbering
//   - Fail-fast – sentinel errors, no panics on user input, no partial
//     annotation on failure
//   - Pure in-process – no I/O, no goroutines, no hidden shared state
//
// Everything is organized as one package per concern:
//
//	core/        — the Record type and numeric field projection
//	matrix/      — Dense matrices, Invert, Covariance
//	distance/    — vector metrics and record-level distance functions
//	mahalanobis/ — batch enrichment (mahaDist, similarity)
//	dbscan/      — density clustering (clusterId, clusterType)
//	htest/       — closed-form statistical tests over summary statistics
//
// Typical flow:
//
//	records → matrix.Covariance (WithInverse) → distance.Mahalanobis
//	        → mahalanobis.Enrich annotates each record
//	records + any distance.Func → dbscan.Cluster annotates membership
//
// See each package's example_test.go for runnable walkthroughs.
package denstat
