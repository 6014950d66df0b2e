// Package mahalanobis: batch enrichment of records with Mahalanobis
// distances (and optional similarity) relative to a reference origin.
package mahalanobis

import (
	"fmt"

	"github.com/denstat/denstat/core"
	"github.com/denstat/denstat/distance"
	"github.com/denstat/denstat/matrix"
)

// Enrich annotates every record in data with FieldDistance — its Mahalanobis
// distance from origin — and, with WithSimilarity, FieldSimilarity.
//
// Blueprint:
//
//	Stage 1 (Validate): non-empty origin and data; resolve the dimension
//	        order as the sorted keys of origin (core.SortedFields).
//	Stage 2 (Project): build the origin vector and one vector per record;
//	        any missing/non-numeric field aborts, naming the record index.
//	Stage 3 (Metric): use the injected inverse covariance matrix, or
//	        estimate one from ALL projected record vectors
//	        (matrix.Covariance + matrix.Invert in one step).
//	Stage 4 (Measure): compute every distance into a scratch slice,
//	        tracking the maximum.
//	Stage 5 (Annotate): only after the whole batch succeeded, write
//	        FieldDistance (and FieldSimilarity) onto each record in place.
//
// similarity = 1 − mahaDist/maxMahaDist; when every record coincides with
// the origin (maxMahaDist == 0) all similarities are 1 by convention.
//
// Errors: ErrNoOrigin, ErrNoData, matrix.ErrDimensionMismatch (injected
// matrix of the wrong order), core.ErrMissingField / core.ErrInvalidValue
// (record projection), and whatever matrix.Covariance/Invert report
// (ErrInsufficientData, ErrSingular, …). On error no record is mutated.
//
// Complexity: O(n·d² + d³) — covariance O(n·d²), inversion O(d³),
// distances O(n·d²). Records mutated in place; data order untouched.
func Enrich(origin map[string]float64, data []core.Record, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: Validate inputs
	if len(origin) == 0 {
		return fmt.Errorf("Enrich: %w", ErrNoOrigin)
	}
	if len(data) == 0 {
		return fmt.Errorf("Enrich: %w", ErrNoData)
	}

	// Dimension order: sorted origin keys, used for BOTH the covariance
	// matrix and every per-record vector (rows/columns are positional).
	fields := core.SortedFields(origin)
	d := len(fields)

	originVec := make([]float64, d)
	for i, f := range fields {
		originVec[i] = origin[f]
	}

	// Stage 2: Project all records before touching any of them
	vectors := make([][]float64, len(data))
	for i, rec := range data {
		vec, err := rec.Vector(fields)
		if err != nil {
			return fmt.Errorf("Enrich: record %d: %w", i, err)
		}
		vectors[i] = vec
	}

	// Stage 3: Resolve the metric tensor
	inv := o.Matrix
	if inv == nil {
		var err error
		inv, err = matrix.Covariance(vectors, matrix.WithInverse())
		if err != nil {
			return fmt.Errorf("Enrich: %w", err)
		}
	} else if inv.Rows() != d || inv.Cols() != d {
		return fmt.Errorf("Enrich: matrix %dx%d for %d origin dimension(s): %w",
			inv.Rows(), inv.Cols(), d, matrix.ErrDimensionMismatch)
	}

	// Stage 4: Measure the whole batch
	dists := make([]float64, len(data))
	var maxDist float64
	for i, vec := range vectors {
		dist, err := distance.Mahalanobis(vec, originVec, inv)
		if err != nil {
			return fmt.Errorf("Enrich: record %d: %w", i, err)
		}
		dists[i] = dist
		if dist > maxDist {
			maxDist = dist
		}
	}

	// Stage 5: Annotate in place (nothing failed past this point)
	for i, rec := range data {
		rec[FieldDistance] = dists[i]
	}
	if o.Similarity {
		for i, rec := range data {
			if maxDist == 0 {
				// every record coincides with the origin
				rec[FieldSimilarity] = 1.0
				continue
			}
			rec[FieldSimilarity] = 1 - dists[i]/maxDist
		}
	}

	return nil
}
