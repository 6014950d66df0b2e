package distance_test

import (
	"testing"

	"github.com/denstat/denstat/core"
	"github.com/denstat/denstat/distance"
	"github.com/denstat/denstat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEuclidean_Basic verifies the 3-4-5 triangle and the zero distance of a
// point to itself.
func TestEuclidean_Basic(t *testing.T) {
	d, err := distance.Euclidean([]float64{0, 0}, []float64{3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = distance.Euclidean([]float64{1, 2, 3}, []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestEuclidean_DimensionMismatch verifies the shape guard.
func TestEuclidean_DimensionMismatch(t *testing.T) {
	_, err := distance.Euclidean([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestManhattan_Basic verifies L1 accumulation.
func TestManhattan_Basic(t *testing.T) {
	d, err := distance.Manhattan([]float64{1, -2}, []float64{4, 2})
	assert.NoError(t, err)
	assert.Equal(t, 7.0, d)

	_, err = distance.Manhattan([]float64{1}, []float64{})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMahalanobis_ZeroForIdenticalVectors verifies d(x, x) == 0 for any
// valid metric tensor.
func TestMahalanobis_ZeroForIdenticalVectors(t *testing.T) {
	inv, err := matrix.FromRows([][]float64{{2, 0.3}, {0.3, 1.5}})
	require.NoError(t, err)

	x := []float64{4.2, -1.7}
	d, err := distance.Mahalanobis(x, x, inv)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestMahalanobis_IdentityEqualsEuclidean verifies the identity metric
// tensor reduces Mahalanobis to Euclidean distance.
func TestMahalanobis_IdentityEqualsEuclidean(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	a := []float64{1, 2, 3}
	b := []float64{4, 6, 3}

	maha, err := distance.Mahalanobis(a, b, id)
	require.NoError(t, err)
	eucl, err := distance.Euclidean(a, b)
	require.NoError(t, err)

	assert.InDelta(t, eucl, maha, 1e-12)
}

// TestMahalanobis_KnownValue verifies a hand-computed diagonal case:
// inv = diag(1/4, 1/9) is the inverse covariance of independent dimensions
// with variances 4 and 9, so d((0,0),(2,3)) = sqrt(1 + 1).
func TestMahalanobis_KnownValue(t *testing.T) {
	inv, err := matrix.FromRows([][]float64{{0.25, 0}, {0, 1.0 / 9.0}})
	require.NoError(t, err)

	d, err := distance.Mahalanobis([]float64{0, 0}, []float64{2, 3}, inv)
	assert.NoError(t, err)
	assert.InDelta(t, 1.4142135623730951, d, 1e-12)
}

// TestMahalanobis_NegativeQuadraticFormClamped verifies the clamp policy:
// a non-PSD "inverse covariance" pushing the quadratic form negative yields
// 0, never NaN.
func TestMahalanobis_NegativeQuadraticFormClamped(t *testing.T) {
	neg, err := matrix.FromRows([][]float64{{-1, 0}, {0, -1}})
	require.NoError(t, err)

	d, err := distance.Mahalanobis([]float64{0, 0}, []float64{1, 1}, neg)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, d, "negative quadratic form must clamp to zero")
}

// TestMahalanobis_Rejections verifies dimension and nil guards.
func TestMahalanobis_Rejections(t *testing.T) {
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	_, err = distance.Mahalanobis([]float64{1}, []float64{1, 2}, id)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "vector length disagreement")

	_, err = distance.Mahalanobis([]float64{1, 2, 3}, []float64{1, 2, 3}, id)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "matrix order disagreement")

	_, err = distance.Mahalanobis([]float64{1}, []float64{1}, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRecordEuclidean verifies the record adapter projects fields in order
// and propagates core errors.
func TestRecordEuclidean(t *testing.T) {
	fn := distance.RecordEuclidean("x", "y")

	a := core.Record{"x": 0.0, "y": 0.0, "label": "origin"}
	b := core.Record{"x": 3.0, "y": 4.0}

	d, err := fn(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = fn(a, core.Record{"x": 1.0})
	assert.ErrorIs(t, err, core.ErrMissingField, "missing field must propagate")

	_, err = fn(core.Record{"x": "no", "y": 0.0}, b)
	assert.ErrorIs(t, err, core.ErrInvalidValue, "non-numeric field must propagate")
}

// TestRecordMahalanobis verifies the covariance-aware record adapter against
// the vector-level metric.
func TestRecordMahalanobis(t *testing.T) {
	inv, err := matrix.FromRows([][]float64{{0.25, 0}, {0, 1.0 / 9.0}})
	require.NoError(t, err)

	fn := distance.RecordMahalanobis(inv, "x", "y")
	d, err := fn(core.Record{"x": 0.0, "y": 0.0}, core.Record{"x": 2.0, "y": 3.0})
	assert.NoError(t, err)
	assert.InDelta(t, 1.4142135623730951, d, 1e-12)
}
