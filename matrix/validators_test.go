// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateShape covers the closed dimension set {2,3,4}.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cols, rows int
		wantErr    error
	}{
		{"2x2", 2, 2, nil},
		{"4x3", 4, 3, nil},
		{"4x4", 4, 4, nil},
		{"cols too small", 1, 3, matrix.ErrBadShape},
		{"rows too small", 3, 1, matrix.ErrBadShape},
		{"cols too large", 5, 2, matrix.ErrBadShape},
		{"rows too large", 2, 5, matrix.ErrBadShape},
		{"negative", -2, 2, matrix.ErrBadShape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateShape(tc.cols, tc.rows)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := MustGrid[float64](t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustGrid[bool](t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustGrid[float64](t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustGrid[float64](t, 2, 4)), matrix.ErrDimensionMismatch)
}

// TestValidateRect rejects ragged grids.
func TestValidateRect(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateRect(MustGrid[int](t, 3, 2)))
	require.NoError(t, matrix.ValidateRect(matrix.Grid[int]{}))
	ragged := matrix.Grid[int]{{1, 2}, {3}}
	require.ErrorIs(t, matrix.ValidateRect(ragged), matrix.ErrBadShape)
}

// TestValidateSquareAndVecLen covers the remaining guards.
func TestValidateSquareAndVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustGrid[int](t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustGrid[int](t, 3, 2)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateVecLen([]int{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]int{1, 2}, 3), matrix.ErrDimensionMismatch)
}

// TestValidateMulCompatible covers inner and result mismatches.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustGrid[int](t, 3, 2) // 3 cols, 2 rows
	b := MustGrid[int](t, 4, 3) // 4 cols, 3 rows
	require.NoError(t, matrix.ValidateMulCompatible(MustGrid[int](t, 4, 2), a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustGrid[int](t, 4, 2), b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustGrid[int](t, 2, 4), a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateTranspose(MustGrid[int](t, 2, 3), a))
	require.ErrorIs(t, matrix.ValidateTranspose(MustGrid[int](t, 3, 2), a), matrix.ErrDimensionMismatch)
}
