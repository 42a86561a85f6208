// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFacadesRejectRaggedGrids checks that caller-built grids with uneven
// columns fail with ErrBadShape instead of being read out of bounds.
func TestFacadesRejectRaggedGrids(t *testing.T) {
	t.Parallel()

	ragged := matrix.Grid[float64]{{1, 2, 3}, {4}}
	square := MustGrid[float64](t, 2, 2)

	_, err := matrix.Resized(ragged, 3, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Transposed(ragged)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Product(ragged, square)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Product(square, matrix.Grid[float64]{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFacadesAllocate covers the happy paths of the allocating facades.
func TestFacadesAllocate(t *testing.T) {
	t.Parallel()

	g := FilledGrid(t, 2, 3, 1, 2, 3, 4, 5, 6)

	r, err := matrix.Resized(g, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 0, 0, 1}, Flatten(r))

	tr, err := matrix.Transposed(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, Flatten(tr))

	z, err := matrix.ZerosLike(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, Flatten(z))
}
