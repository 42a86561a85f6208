// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReductionsOnVector checks every reduction on (3, -4).
func TestReductionsOnVector(t *testing.T) {
	v := []int32{3, -4}

	assert.Equal(t, int32(-1), matrix.Sum(v))
	assert.Equal(t, int32(-4), matrix.MinElement(v))
	assert.Equal(t, int32(3), matrix.MaxElement(v))
	assert.Equal(t, int32(25), matrix.LengthSqr(v))
	assert.Equal(t, 5.0, matrix.Length(v))
	assert.Equal(t, 5.0, matrix.Norm(v))
	assert.Equal(t, 5.0, matrix.Norm2(v))
	assert.Equal(t, 7.0, matrix.Norm1(v))
	assert.Equal(t, 4.0, matrix.NormMax(v))
	assert.InDelta(t, 5.0, matrix.NormP(2, v), 1e-12)
	assert.InDelta(t, 7.0, matrix.NormP(1, v), 1e-12)
	assert.InDelta(t, math.Cbrt(27+64), matrix.NormP(3, v), 1e-12)
}

// TestReductionsAcrossColumns folds columns in order.
func TestReductionsAcrossColumns(t *testing.T) {
	g := FilledGrid(t, 4, 3,
		float32(1), 0, 0,
		0, 1, 0,
		0, 0, 1,
		0, 0, 0)

	assert.Equal(t, float32(3), matrix.Sum(g...))
	assert.Equal(t, float32(0), matrix.MinElement(g...))
	assert.Equal(t, float32(1), matrix.MaxElement(g...))

	var order []float32
	_, ok := matrix.Fold(func(acc, x float32) float32 {
		order = append(order, x)
		return acc + x
	}, g...)
	require.True(t, ok)
	require.Equal(t, Flatten(g)[1:], order) // seeded with the first component
}

// TestLengthSqrIsSumOfCompMul checks LengthSqr(v) == Sum(v*v).
func TestLengthSqrIsSumOfCompMul(t *testing.T) {
	for _, v := range [][]float64{{1, 2}, {-3, 0.5, 2}, {1, 1, 1, 1}, {0, 0, 0}} {
		sq := make([]float64, len(v))
		require.NoError(t, matrix.Zip(sq, v, v, scalar.Mul[float64]))
		require.Equal(t, matrix.Sum(sq), matrix.LengthSqr(v))
	}
}

// TestBoolFolds covers All/Any and their empty values.
func TestBoolFolds(t *testing.T) {
	assert.True(t, matrix.All([]bool{true, true}, []bool{true}))
	assert.False(t, matrix.All([]bool{true}, []bool{false}))
	assert.True(t, matrix.Any([]bool{false}, []bool{true}))
	assert.False(t, matrix.Any([]bool{false, false}))
	assert.True(t, matrix.All())
	assert.False(t, matrix.Any())
}

// TestEmptyReductions documents the zero-component results.
func TestEmptyReductions(t *testing.T) {
	assert.Equal(t, 0, matrix.Sum[int]())
	assert.Equal(t, 0, matrix.MinElement[int]())
	_, ok := matrix.Fold(scalar.Add[int])
	assert.False(t, ok)
}

// TestDot covers the product sum and the length guard.
func TestDot(t *testing.T) {
	d, err := matrix.Dot([]int64{1, 2, 3}, []int64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, int64(32), d)

	_, err = matrix.Dot([]int64{1, 2}, []int64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNormsAreFloat64ForIntegers avoids overflow in the integer domain.
func TestNormsAreFloat64ForIntegers(t *testing.T) {
	v := []int8{100, 100}
	assert.InDelta(t, math.Sqrt(20000), matrix.Length(v), 1e-9)
	assert.Equal(t, 100.0, matrix.NormMax(v))
}
