package matrix_test

import (
	"math"
	"testing"

	"github.com/denstat/denstat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_RejectsBadShape verifies ErrBadShape for non-positive sizes.
func TestNewDense_RejectsBadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrBadShape, "dims %v must be rejected", dims)
	}
}

// TestDense_AtSetRoundTrip verifies basic element access.
func TestDense_AtSetRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 42.5))
	v, err := m.At(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 42.5, v)

	// untouched cells stay zero
	v, err = m.At(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDense_OutOfRange verifies ErrOutOfRange on bad indices, not panics.
func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

// TestFromRows_CopiesAndValidates verifies construction from row slices.
func TestFromRows_CopiesAndValidates(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())

	// mutating the source must not touch the matrix
	rows[0][0] = 99
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "FromRows must copy its input")
}

// TestFromRows_Rejections verifies shape and value validation.
func TestFromRows_Rejections(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty input")

	_, err = matrix.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty rows")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows")

	_, err = matrix.FromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrInvalidValue, "NaN entry")

	_, err = matrix.FromRows([][]float64{{math.Inf(1), 2}})
	assert.ErrorIs(t, err, matrix.ErrInvalidValue, "Inf entry")
}

// TestIdentity verifies ones on the diagonal, zeros elsewhere.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

// TestDense_CloneIsIndependent verifies deep copy semantics.
func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -7))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone writes must not reach the original")
}
