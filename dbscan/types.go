// Package dbscan: options, constants and error definitions for density
// clustering over record collections.
package dbscan

import "errors"

// Annotation field names written onto records.
const (
	// FieldClusterID is the record field receiving the cluster identifier
	// ("cluster1", "cluster2", …) or nil for noise points.
	FieldClusterID = "clusterId"

	// FieldClusterType is the record field receiving the point
	// classification: TypeCore, TypeBorder or TypeNoise.
	FieldClusterType = "clusterType"
)

// Point classifications.
const (
	// TypeCore marks a point with ≥ minNeighbours points (itself included)
	// within minDistance.
	TypeCore = "core"

	// TypeBorder marks a non-core point inside some core point's
	// neighbourhood; it carries that core point's cluster id.
	TypeBorder = "border"

	// TypeNoise marks a point neither core nor reachable from any core
	// point; its cluster id is nil.
	TypeNoise = "noise"
)

// Sentinel errors for clustering.
var (
	// ErrNonPositiveRadius is returned when minDistance is not a finite
	// positive number.
	ErrNonPositiveRadius = errors.New("dbscan: minDistance must be > 0 and finite")

	// ErrBadMinNeighbours is returned when minNeighbours < 1.
	ErrBadMinNeighbours = errors.New("dbscan: minNeighbours must be >= 1")

	// ErrNilDistance is returned when no distance function is supplied.
	ErrNilDistance = errors.New("dbscan: nil distance function")
)

// Option configures Cluster via functional arguments.
type Option func(*Options)

// Options holds clustering configuration.
type Options struct {
	// Reset strips any pre-existing FieldClusterID/FieldClusterType fields
	// from every record before distances are evaluated. Membership is
	// recomputed from scratch on every run regardless; Reset changes what a
	// FAILED run leaves behind — stripped records instead of labels from an
	// earlier run.
	Reset bool
}

// DefaultOptions returns Options with Reset disabled.
func DefaultOptions() Options {
	return Options{Reset: false}
}

// WithReset enables stale-annotation clearing before the run.
func WithReset() Option {
	return func(o *Options) { o.Reset = true }
}
