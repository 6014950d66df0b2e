// Package mahalanobis annotates record collections with Mahalanobis
// distances from a reference point, and optionally with a normalized
// similarity score.
//
// 🚀 What is this?
//
//	The enrichment layer tying matrix + distance together: given an origin
//	(dimension name → reference coordinate) and a record collection, each
//	record gains a "mahaDist" field — its Mahalanobis distance from the
//	origin under the dataset's (or a supplied) inverse covariance matrix.
//	With WithSimilarity, a second pass adds "similarity" in [0, 1]:
//	1 − mahaDist/maxMahaDist, so the farthest record scores 0 and a record
//	coincident with the origin scores 1.
//
// ✨ Contracts:
//
//   - Dimensions are exactly the keys of origin, in lexicographically sorted
//     order — the same order used for the covariance matrix and every
//     per-record vector, since matrix rows/columns are positional
//   - All-or-nothing: every distance is computed before any record is
//     written, so a failure annotates nothing
//   - Records are annotated in place; the caller keeps the collection
//
// ⚙️ Usage:
//
//	origin := map[string]float64{"height": 175, "weight": 70}
//	err := mahalanobis.Enrich(origin, records, mahalanobis.WithSimilarity())
//	// records[i]["mahaDist"], records[i]["similarity"]
//
// A precomputed inverse covariance matrix (e.g. from a larger reference
// dataset) can be injected with WithMatrix; otherwise the matrix is built
// from the full record collection itself.
package mahalanobis
