// Package dbscan classifies records into density clusters, annotating each
// one as a core, border or noise point with a reproducible cluster id.
//
// 🚀 What is DBSCAN?
//
//	Density-Based Spatial Clustering of Applications with Noise: a point
//	with at least minNeighbours points (itself included) within minDistance
//	is a CORE point; clusters grow by breadth-first expansion through core
//	neighbourhoods (density reachability), border points inherit the
//	cluster of the first core point that reaches them, and points reached
//	by no core point are NOISE.
//
// ✨ Key properties:
//
//   - Metric-agnostic – the distance function is a parameter (distance.Func);
//     commonly Euclidean, but a Mahalanobis-based metric plugs in unchanged
//   - Deterministic – input-order scan, FIFO frontier, per-call cluster
//     counter (cluster1, cluster2, …): identical inputs give identical labels
//   - Cached neighbourhoods – each pairwise distance is computed once
//     (O(n²) total), never recomputed during expansion
//   - All-or-nothing – every distance is evaluated before any record is
//     annotated, so a failing distance function mutates nothing
//
// ⚙️ Usage:
//
//	err := dbscan.Cluster(records, 5, 2, distance.RecordEuclidean("x", "y"))
//	// records[i]["clusterId"]   — "cluster1", "cluster2", … or nil for noise
//	// records[i]["clusterType"] — "core" | "border" | "noise"
//
// Every run recomputes membership from scratch; pass WithReset to also strip
// stale annotation fields before labeling.
//
// Complexity: O(n²) distance evaluations, O(n²) memory for neighbourhoods.
package dbscan
