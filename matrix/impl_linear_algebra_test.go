// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMulKnownProduct multiplies a 3x2 (3 cols, 2 rows) by a 2x3.
func TestMulKnownProduct(t *testing.T) {
	// a rows: [1 2 3], [4 5 6]  -> columns (1,4) (2,5) (3,6)
	a := FilledGrid(t, 3, 2, 1, 4, 2, 5, 3, 6)
	// b rows: [7 8], [9 10], [11 12] -> columns (7,9,11) (8,10,12)
	b := FilledGrid(t, 2, 3, 7, 9, 11, 8, 10, 12)

	dst := MustGrid[int](t, 2, 2)
	require.NoError(t, matrix.Mul(dst, a, b))
	// rows: [58 64], [139 154]
	require.Equal(t, []int{58, 139, 64, 154}, Flatten(dst))
}

// TestMulDimensionMismatch leaves dst untouched.
func TestMulDimensionMismatch(t *testing.T) {
	a := FilledGrid(t, 3, 2, 1, 1, 1, 1, 1, 1)
	dst := FilledGrid(t, 2, 2, 9, 9, 9, 9)

	err := matrix.Mul(dst, a, a) // inner 3 != 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []int{9, 9, 9, 9}, Flatten(dst))

	_, err = matrix.Product(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulIdentityLaw checks A*I == A and I*A == A for every square shape.
func TestMulIdentityLaw(t *testing.T) {
	for n := matrix.MinDim; n <= matrix.MaxDim; n++ {
		a := MustGrid[float64](t, n, n)
		a.Apply(func(col, row int, _ float64) float64 { return float64(3*col - row) })
		id, err := matrix.NewIdentity[float64](n)
		require.NoError(t, err)

		left, err := matrix.Product(a, id)
		require.NoError(t, err)
		right, err := matrix.Product(id, a)
		require.NoError(t, err)
		assert.Equal(t, Flatten(a), Flatten(left), "A*I n=%d", n)
		assert.Equal(t, Flatten(a), Flatten(right), "I*A n=%d", n)
	}
}

// TestMulVec dots each row with the vector.
func TestMulVec(t *testing.T) {
	a := FilledGrid(t, 3, 2, 1, 4, 2, 5, 3, 6) // rows [1 2 3], [4 5 6]
	dst := make([]int, 2)
	require.NoError(t, matrix.MulVec(dst, a, []int{1, 0, -1}))
	require.Equal(t, []int{-2, -2}, dst)

	require.ErrorIs(t, matrix.MulVec(dst, a, []int{1, 2}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MulVec(make([]int, 3), a, []int{1, 2, 3}), matrix.ErrDimensionMismatch)
}

// TestTransposeInvolution checks (Mᵀ)ᵀ == M for every shape.
func TestTransposeInvolution(t *testing.T) {
	for c := matrix.MinDim; c <= matrix.MaxDim; c++ {
		for r := matrix.MinDim; r <= matrix.MaxDim; r++ {
			m := MustGrid[int](t, c, r)
			m.Apply(func(col, row int, _ int) int { return 7*col + row })

			tr, err := matrix.Transposed(m)
			require.NoError(t, err)
			require.Equal(t, r, tr.Cols())
			require.Equal(t, c, tr.Rows())
			v, err := tr.At(r-1, c-1)
			require.NoError(t, err)
			require.Equal(t, 7*(c-1)+(r-1), v)

			back, err := matrix.Transposed(tr)
			require.NoError(t, err)
			require.Equal(t, Flatten(m), Flatten(back))
		}
	}
}

// TestTransposeMismatch rejects a wrongly shaped destination.
func TestTransposeMismatch(t *testing.T) {
	err := matrix.Transpose(MustGrid[int](t, 3, 2), MustGrid[int](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTraceDeterminant covers known values, pivoting and the square guard.
func TestTraceDeterminant(t *testing.T) {
	m := FilledGrid(t, 3, 3, 2.0, 0, 0, 0, 3, 0, 0, 0, 4)
	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 9.0, tr)

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.InDelta(t, 24.0, det, 1e-12)

	// zero leading pivot requires a row swap: [[0 1] [1 0]] has det -1.
	swap := FilledGrid(t, 2, 2, 0, 1, 1, 0)
	det, err = matrix.Determinant(swap)
	require.NoError(t, err)
	require.InDelta(t, -1.0, det, 1e-12)

	singular := FilledGrid(t, 2, 2, 1, 2, 2, 4)
	det, err = matrix.Determinant(singular)
	require.NoError(t, err)
	require.Equal(t, 0.0, det)

	_, err = matrix.Determinant(MustGrid[int](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Trace(MustGrid[int](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse checks A * A⁻¹ ≈ I and the singular path.
func TestInverse(t *testing.T) {
	a := FilledGrid(t, 3, 3, 4.0, 2, 0, 7, 6, 1, 2, 1, 3)
	inv := MustGrid[float64](t, 3, 3)
	require.NoError(t, matrix.Inverse(inv, a))

	prod, err := matrix.Product(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity[float64](3)
	require.NoError(t, err)
	require.InDeltaSlice(t, Flatten(id), Flatten(prod), 1e-9)

	dst := FilledGrid(t, 2, 2, 5.0, 5, 5, 5)
	err = matrix.Inverse(dst, FilledGrid(t, 2, 2, 1.0, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, []float64{5, 5, 5, 5}, Flatten(dst)) // untouched

	require.ErrorIs(t, matrix.Inverse(MustGrid[float64](t, 3, 3), MustGrid[float64](t, 3, 2)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.Inverse(MustGrid[float64](t, 2, 2), a), matrix.ErrDimensionMismatch)
}

// TestInverseIntegralTruncates pins the float64-then-truncate conversion.
func TestInverseIntegralTruncates(t *testing.T) {
	dst := MustGrid[int](t, 2, 2)
	require.NoError(t, matrix.Inverse(dst, FilledGrid(t, 2, 2, 2, 0, 0, 2)))
	assert.Equal(t, []int{0, 0, 0, 0}, Flatten(dst))

	require.NoError(t, matrix.Inverse(dst, FilledGrid(t, 2, 2, 1, 1, 0, 1)))
	assert.Equal(t, []int{1, -1, 0, 1}, Flatten(dst))
}
