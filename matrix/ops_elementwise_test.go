// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/stretchr/testify/require"
)

// --- flat kernels -------------------------------------------------------------

func TestZipAndBroadcast(t *testing.T) {
	t.Parallel()

	dst := make([]int, 3)
	require.NoError(t, matrix.Zip(dst, []int{1, 2, 3}, []int{10, 20, 30}, scalar.Add[int]))
	require.Equal(t, []int{11, 22, 33}, dst)

	require.NoError(t, matrix.ZipScalar(dst, []int{1, 2, 3}, 10, scalar.Sub[int]))
	require.Equal(t, []int{-9, -8, -7}, dst)

	require.NoError(t, matrix.ScalarZip(dst, 10, []int{1, 2, 3}, scalar.Sub[int]))
	require.Equal(t, []int{9, 8, 7}, dst)

	require.NoError(t, matrix.Map(dst, []int{1, -2, 3}, scalar.Abs[int]))
	require.Equal(t, []int{1, 2, 3}, dst)
}

func TestZipComparisonProducesBool(t *testing.T) {
	t.Parallel()

	dst := make([]bool, 3)
	require.NoError(t, matrix.Zip(dst, []float64{1, 2, 3}, []float64{2, 2, 2}, scalar.Less[float64]))
	require.Equal(t, []bool{true, false, false}, dst)

	require.NoError(t, matrix.ZipScalar(dst, []float64{1, 2, 3}, 2, scalar.GreaterEqual[float64]))
	require.Equal(t, []bool{false, true, true}, dst)
}

func TestZipLengthMismatch_Err(t *testing.T) {
	t.Parallel()

	dst := []int{7, 7}
	err := matrix.Zip(dst, []int{1, 2}, []int{1, 2, 3}, scalar.Add[int])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []int{7, 7}, dst)

	require.ErrorIs(t, matrix.ZipScalar(dst, []int{1}, 1, scalar.Add[int]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ScalarZip(dst, 1, []int{1}, scalar.Add[int]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.Map(dst, []int{1}, scalar.Neg[int]), matrix.ErrDimensionMismatch)
}

func TestFloatDivisionFollowsIEEE(t *testing.T) {
	t.Parallel()

	dst := make([]float64, 2)
	require.NoError(t, matrix.Zip(dst, []float64{1, 0}, []float64{0, 0}, scalar.Div[float64]))
	require.True(t, math.IsInf(dst[0], 1))
	require.True(t, math.IsNaN(dst[1]))
}

func TestIntegerDivisionByZeroPanics(t *testing.T) {
	t.Parallel()

	dst := make([]int32, 1)
	require.Panics(t, func() {
		_ = matrix.Zip(dst, []int32{1}, []int32{0}, scalar.Div[int32])
	})
}

// --- grid kernels -------------------------------------------------------------

func TestGridKernels(t *testing.T) {
	t.Parallel()

	a := FilledGrid(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := FilledGrid(t, 2, 3, 6, 5, 4, 3, 2, 1)

	sum := MustGrid[int](t, 2, 3)
	require.NoError(t, matrix.ZipGrid(sum, a, b, scalar.Add[int]))
	require.Equal(t, []int{7, 7, 7, 7, 7, 7}, Flatten(sum))

	gt := MustGrid[bool](t, 2, 3)
	require.NoError(t, matrix.ZipGrid(gt, a, b, scalar.Greater[int]))
	require.Equal(t, []bool{false, false, false, true, true, true}, Flatten(gt))

	scaled := MustGrid[int](t, 2, 3)
	require.NoError(t, matrix.ZipScalarGrid(scaled, a, 2, scalar.Mul[int]))
	require.Equal(t, []int{2, 4, 6, 8, 10, 12}, Flatten(scaled))

	rsub := MustGrid[int](t, 2, 3)
	require.NoError(t, matrix.ScalarZipGrid(rsub, 10, a, scalar.Sub[int]))
	require.Equal(t, []int{9, 8, 7, 6, 5, 4}, Flatten(rsub))

	neg := MustGrid[int](t, 2, 3)
	require.NoError(t, matrix.MapGrid(neg, a, scalar.Neg[int]))
	require.Equal(t, []int{-1, -2, -3, -4, -5, -6}, Flatten(neg))
}

func TestGridKernels_ShapeMismatch_Err(t *testing.T) {
	t.Parallel()

	a := MustGrid[int](t, 2, 3)
	b := MustGrid[int](t, 3, 2)
	require.ErrorIs(t, matrix.ZipGrid(MustGrid[int](t, 2, 3), a, b, scalar.Add[int]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ZipGrid(b, a, a, scalar.Add[int]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ZipScalarGrid(b, a, 1, scalar.Add[int]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ScalarZipGrid(b, 1, a, scalar.Add[int]), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MapGrid(b, a, scalar.Neg[int]), matrix.ErrDimensionMismatch)
}
