// Package dbscan: the clustering run — cached neighbourhood computation,
// input-order scan, breadth-first density expansion.
package dbscan

import (
	"fmt"
	"math"

	"github.com/denstat/denstat/core"
	"github.com/denstat/denstat/distance"
)

// unassigned marks a point not yet claimed by any cluster during expansion.
const unassigned = 0

// Cluster runs DBSCAN over data, annotating every record in place with
// FieldClusterID and FieldClusterType.
//
// Parameters: minDistance is the neighbourhood radius ε (> 0, finite);
// minNeighbours is the core-point threshold (≥ 1, counting the point
// itself); dist is a symmetric record metric whose errors propagate
// unchanged.
//
// Blueprint:
//
//	Stage 1 (Validate): parameters and options.
//	Stage 2 (Neighbourhoods): one pairwise pass (i<j, mirrored by the
//	        symmetry contract) caches every point's neighbourhood —
//	        all distance errors surface HERE, before any mutation.
//	Stage 3 (Expand): scan points in input order; each unclaimed core
//	        point opens cluster{N} (N local to this call) and grows it
//	        breadth-first: frontier members join the cluster, and core
//	        members push their own neighbourhood onto the frontier. This
//	        reachability closure is what merges density-connected regions;
//	        a border point in range of two clusters keeps the cluster of
//	        the first core point encountered in scan order.
//	Stage 4 (Annotate): cores and borders get their cluster id; everything
//	        unclaimed is noise (nil id).
//
// With WithReset, stale FieldClusterID/FieldClusterType entries are stripped
// during Stage 1, before any distance evaluation. Stripping is the one
// mutation that precedes the fail point: a failed run leaves records
// unlabeled rather than carrying labels from an earlier run.
//
// An empty collection is a no-op. Identical inputs always produce identical
// labels (input-order scan, FIFO frontier, per-call counter).
//
// Complexity: O(n²) distance evaluations + O(n²) memory; expansion itself
// touches each cached neighbourhood at most once.
func Cluster(data []core.Record, minDistance float64, minNeighbours int, dist distance.Func, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: Validate parameters
	if !(minDistance > 0) || math.IsInf(minDistance, 1) {
		return fmt.Errorf("Cluster: minDistance %v: %w", minDistance, ErrNonPositiveRadius)
	}
	if minNeighbours < 1 {
		return fmt.Errorf("Cluster: minNeighbours %d: %w", minNeighbours, ErrBadMinNeighbours)
	}
	if dist == nil {
		return fmt.Errorf("Cluster: %w", ErrNilDistance)
	}

	if o.Reset {
		for _, rec := range data {
			delete(rec, FieldClusterID)
			delete(rec, FieldClusterType)
		}
	}

	n := len(data)
	if n == 0 {
		return nil
	}

	// Stage 2: Cache neighbourhoods. neighbours[i] holds the indices of all
	// points within minDistance of point i, in ascending index order, i
	// itself included. Distances are evaluated once per unordered pair.
	neighbours := make([][]int, n)
	for i := 0; i < n; i++ {
		neighbours[i] = append(neighbours[i], i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := dist(data[i], data[j])
			if err != nil {
				return fmt.Errorf("Cluster: distance(%d,%d): %w", i, j, err)
			}
			if d <= minDistance {
				neighbours[i] = append(neighbours[i], j)
				neighbours[j] = append(neighbours[j], i)
			}
		}
	}

	isCore := func(i int) bool { return len(neighbours[i]) >= minNeighbours }

	// Stage 3: Expansion. cluster[i] == unassigned means unclaimed; cores
	// and reached borders get the 1-based number of their cluster.
	cluster := make([]int, n)
	var counter int
	for i := 0; i < n; i++ {
		if cluster[i] != unassigned || !isCore(i) {
			continue
		}

		counter++
		cluster[i] = counter

		// FIFO frontier seeded with the opening core point's neighbourhood
		frontier := make([]int, 0, len(neighbours[i]))
		frontier = append(frontier, neighbours[i]...)
		for len(frontier) > 0 {
			q := frontier[0]
			frontier = frontier[1:]

			if cluster[q] != unassigned {
				continue
			}
			cluster[q] = counter
			if isCore(q) {
				frontier = append(frontier, neighbours[q]...)
			}
		}
	}

	// Stage 4: Annotate in place (nothing can fail past this point)
	for i, rec := range data {
		switch {
		case cluster[i] == unassigned:
			rec[FieldClusterID] = nil
			rec[FieldClusterType] = TypeNoise
		case isCore(i):
			rec[FieldClusterID] = clusterName(cluster[i])
			rec[FieldClusterType] = TypeCore
		default:
			rec[FieldClusterID] = clusterName(cluster[i])
			rec[FieldClusterType] = TypeBorder
		}
	}

	return nil
}

// clusterName formats the 1-based cluster number as its public identifier.
func clusterName(n int) string {
	return fmt.Sprintf("cluster%d", n)
}
