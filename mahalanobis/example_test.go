package mahalanobis_test

import (
	"fmt"

	"github.com/denstat/denstat/core"
	"github.com/denstat/denstat/mahalanobis"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnrich
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Score three measurements against a reference point (1, 2). The record
//	matching the reference exactly gets similarity 1; the farthest one
//	(in Mahalanobis terms, under the dataset's own covariance) gets 0.
//
// Use case:
//
//	Outlier scoring of tabular data relative to a known-good reference.
//
// Complexity: O(n·d²) distances + O(d³) inversion
func ExampleEnrich() {
	data := []core.Record{
		{"x": 1.0, "y": 2.0, "id": "a"},
		{"x": 2.0, "y": 3.0, "id": "b"},
		{"x": 4.0, "y": 1.0, "id": "c"},
	}
	origin := map[string]float64{"x": 1, "y": 2}

	if err := mahalanobis.Enrich(origin, data, mahalanobis.WithSimilarity()); err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, rec := range data {
		fmt.Printf("%s: mahaDist=%.3f similarity=%.3f\n",
			rec["id"], rec[mahalanobis.FieldDistance], rec[mahalanobis.FieldSimilarity])
	}
	// Output:
	// a: mahaDist=0.000 similarity=1.000
	// b: mahaDist=2.000 similarity=0.000
	// c: mahaDist=2.000 similarity=0.000
}
