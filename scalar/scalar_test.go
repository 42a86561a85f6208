// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvglm/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArithmetic checks the binary operators against the native ones.
func TestArithmetic(t *testing.T) {
	assert.Equal(t, int32(7), scalar.Add[int32](3, 4))
	assert.Equal(t, int64(-1), scalar.Sub[int64](3, 4))
	assert.Equal(t, float32(12), scalar.Mul[float32](3, 4))
	assert.Equal(t, 2.5, scalar.Div(5.0, 2.0))
	assert.Equal(t, int32(2), scalar.Div[int32](5, 2)) // truncation
	assert.Equal(t, -3.0, scalar.Neg(3.0))
}

// TestDivisionByZero follows native semantics for both domains.
func TestDivisionByZero(t *testing.T) {
	require.True(t, math.IsInf(scalar.Div(1.0, 0.0), 1))
	require.True(t, math.IsNaN(scalar.Div(0.0, 0.0)))

	require.Panics(t, func() {
		_ = scalar.Div[int32](1, 0)
	})
}

// TestAbsMinMax covers the ordered helpers including the unsigned case.
func TestAbsMinMax(t *testing.T) {
	assert.Equal(t, int32(5), scalar.Abs[int32](-5))
	assert.Equal(t, uint8(5), scalar.Abs[uint8](5))
	assert.Equal(t, 1.5, scalar.Abs(-1.5))
	assert.Equal(t, int64(-2), scalar.Min[int64](-2, 3))
	assert.Equal(t, float32(3), scalar.Max[float32](-2, 3))
}

// TestComparisons covers the comparison functions.
func TestComparisons(t *testing.T) {
	assert.True(t, scalar.Less(1, 2))
	assert.False(t, scalar.Less(2, 2))
	assert.True(t, scalar.LessEqual(2, 2))
	assert.True(t, scalar.Greater(3, 2))
	assert.True(t, scalar.GreaterEqual(2, 2))
	assert.True(t, scalar.Equal(2.0, 2.0))
	assert.False(t, scalar.Equal(math.NaN(), math.NaN()))
	assert.True(t, scalar.NotEqual(true, false))
}

// TestBoolOps covers the logical operators used by the bool types.
func TestBoolOps(t *testing.T) {
	assert.True(t, scalar.And(true, true))
	assert.False(t, scalar.And(true, false))
	assert.True(t, scalar.Or(false, true))
	assert.True(t, scalar.Xor(false, true))
	assert.False(t, scalar.Xor(true, true))
	assert.True(t, scalar.Not(false))
}

// TestLerpAndIntegral covers float64 interpolation and kind detection.
func TestLerpAndIntegral(t *testing.T) {
	assert.Equal(t, 5.0, scalar.Lerp(0.0, 10.0, 0.5))
	assert.Equal(t, int32(2), scalar.Lerp[int32](0, 5, 0.5)) // 2.5 truncated

	assert.True(t, scalar.IsIntegral[int32]())
	assert.True(t, scalar.IsIntegral[uint64]())
	assert.False(t, scalar.IsIntegral[float32]())
	assert.False(t, scalar.IsIntegral[float64]())
	assert.Equal(t, 3.0, scalar.Widen[int64](3))
}

// TestBitSize reports the storage width of each domain.
func TestBitSize(t *testing.T) {
	assert.Equal(t, 32, scalar.BitSize[float32]())
	assert.Equal(t, 64, scalar.BitSize[float64]())
	assert.Equal(t, 8, scalar.BitSize[int8]())
	assert.Equal(t, 32, scalar.BitSize[int32]())
	assert.Equal(t, 64, scalar.BitSize[uint64]())
}
