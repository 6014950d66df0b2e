// Package distance: record-level distance functions. A Func is the pluggable
// metric parameter of dbscan.Cluster; the adapters below build one from a
// vector metric plus an ordered field list.
package distance

import (
	"github.com/denstat/denstat/core"
	"github.com/denstat/denstat/matrix"
)

// Func measures the distance between two records. Implementations must be
// symmetric (Func(a,b) == Func(b,a)); errors propagate unchanged to the
// caller of the consuming algorithm.
type Func func(a, b core.Record) (float64, error)

// RecordEuclidean returns a Func computing the Euclidean distance over the
// given fields, in the supplied order. Field access follows the core
// capability contract (ErrMissingField / ErrInvalidValue).
func RecordEuclidean(fields ...string) Func {
	return func(a, b core.Record) (float64, error) {
		va, err := a.Vector(fields)
		if err != nil {
			return 0, err
		}
		vb, err := b.Vector(fields)
		if err != nil {
			return 0, err
		}

		return Euclidean(va, vb)
	}
}

// RecordManhattan returns a Func computing the Manhattan distance over the
// given fields, in the supplied order.
func RecordManhattan(fields ...string) Func {
	return func(a, b core.Record) (float64, error) {
		va, err := a.Vector(fields)
		if err != nil {
			return 0, err
		}
		vb, err := b.Vector(fields)
		if err != nil {
			return 0, err
		}

		return Manhattan(va, vb)
	}
}

// RecordMahalanobis returns a Func computing the Mahalanobis distance over
// the given fields under the inverse covariance matrix inv. inv must be
// len(fields)×len(fields); it is read-only and shared across calls, so one
// precomputed matrix serves a whole clustering run.
func RecordMahalanobis(inv *matrix.Dense, fields ...string) Func {
	return func(a, b core.Record) (float64, error) {
		va, err := a.Vector(fields)
		if err != nil {
			return 0, err
		}
		vb, err := b.Vector(fields)
		if err != nil {
			return 0, err
		}

		return Mahalanobis(va, vb, inv)
	}
}
