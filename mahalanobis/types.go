// Package mahalanobis: options and error definitions for record enrichment.
package mahalanobis

import (
	"errors"

	"github.com/denstat/denstat/matrix"
)

// Annotation field names written onto records.
const (
	// FieldDistance is the record field receiving the Mahalanobis distance.
	FieldDistance = "mahaDist"

	// FieldSimilarity is the record field receiving the normalized
	// similarity score (WithSimilarity only).
	FieldSimilarity = "similarity"
)

// Sentinel errors for enrichment.
var (
	// ErrNoOrigin is returned when the origin map is empty: with no
	// dimension keys there is nothing to project records onto.
	ErrNoOrigin = errors.New("mahalanobis: empty origin")

	// ErrNoData is returned when the record collection is empty.
	ErrNoData = errors.New("mahalanobis: empty record collection")
)

// Option configures Enrich via functional arguments.
type Option func(*Options)

// Options holds enrichment configuration.
type Options struct {
	// Matrix, when non-nil, is a precomputed inverse covariance matrix used
	// instead of estimating one from the record collection. Its order must
	// equal the number of origin dimensions.
	Matrix *matrix.Dense

	// Similarity adds the normalized FieldSimilarity score after all
	// distances are computed (a second pass over the batch).
	Similarity bool
}

// DefaultOptions returns Options with covariance estimated from the data and
// no similarity pass.
func DefaultOptions() Options {
	return Options{Matrix: nil, Similarity: false}
}

// WithMatrix injects a precomputed inverse covariance matrix.
func WithMatrix(inv *matrix.Dense) Option {
	return func(o *Options) { o.Matrix = inv }
}

// WithSimilarity enables the normalized similarity annotation.
func WithSimilarity() Option {
	return func(o *Options) { o.Similarity = true }
}
