// Package core defines the shared data model for denstat: the Record type
// (a caller-owned field→value map) and its projection onto numeric vectors.
//
// 🚀 What is a Record?
//
//	One row of a tabular dataset: map[string]any. Analytics packages
//	(mahalanobis, dbscan) read a numeric subset of its fields and write
//	derived fields back in place — identity and all other fields are
//	preserved, and the caller keeps ownership of the collection.
//
// ✨ Contracts:
//
//   - Capability contract – a record must expose finite numeric values under
//     the requested field names; violations fail fast with ErrMissingField
//     or ErrInvalidValue, never with silent coercion.
//   - Determinism – dimension order is always the lexicographically sorted
//     field set (SortedFields); map iteration order never leaks into results.
//   - In-place annotation – mutation of caller records is the documented
//     output contract of the annotating packages, not a hidden side effect.
//
// ⚙️ Usage:
//
//	rec := core.Record{"height": 182.0, "weight": 76, "name": "t-1"}
//	vec, err := rec.Vector([]string{"height", "weight"})
//	// vec == []float64{182, 76}
package core
