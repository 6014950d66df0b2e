package dbscan_test

import (
	"testing"

	"github.com/denstat/denstat/matrix"
	"github.com/stretchr/testify/require"
)

// identity2 returns a 2×2 identity matrix for metric-tensor tests.
func identity2(t *testing.T) *matrix.Dense {
	t.Helper()
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	return id
}
