// SPDX-License-Identifier: MIT

package glm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvglm/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := glm.Int3{1, 2, 3}
	b := glm.Int3{4, 5, 6}

	assert.Equal(t, glm.Int3{5, 7, 9}, a.Add(b))
	assert.Equal(t, glm.Int3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, glm.Int3{4, 10, 18}, a.CompMul(b))
	assert.Equal(t, glm.Int3{4, 2, 2}, b.CompDiv(a))
	assert.Equal(t, glm.Int3{11, 12, 13}, a.AddScalar(10))
	assert.Equal(t, glm.Int3{0, 1, 2}, a.SubScalar(1))
	assert.Equal(t, glm.Int3{2, 4, 6}, a.MulScalar(2))
	assert.Equal(t, glm.Int3{2, 2, 3}, b.DivScalar(2))
	assert.Equal(t, glm.Int3{9, 8, 7}, a.RSub(10))
	assert.Equal(t, glm.Int3{12, 6, 4}, a.RDiv(12))
	assert.Equal(t, glm.Int3{-1, -2, -3}, a.Neg())
	assert.Equal(t, glm.Int3{1, 2, 3}, a.Neg().Abs())
	assert.Equal(t, glm.Int3{1, 2, 3}, a.Min(b))
	assert.Equal(t, glm.Int3{4, 5, 6}, a.Max(b))
}

func TestVectorComparisons(t *testing.T) {
	a := glm.Float4{1, 2, 3, 4}
	b := glm.Float4{4, 2, 2, 4}

	assert.Equal(t, glm.Bool4{true, false, false, false}, a.Less(b))
	assert.Equal(t, glm.Bool4{true, true, false, true}, a.LessEqual(b))
	assert.Equal(t, glm.Bool4{false, false, true, false}, a.Greater(b))
	assert.Equal(t, glm.Bool4{false, true, true, true}, a.GreaterEqual(b))
	assert.Equal(t, glm.Bool4{false, true, false, true}, a.EqualTo(b))
	assert.Equal(t, glm.Bool4{true, false, true, false}, a.NotEqualTo(b))
	assert.Equal(t, glm.Bool4{true, false, false, false}, a.LessScalar(2))
	assert.Equal(t, glm.Bool4{false, false, true, true}, a.GreaterScalar(2))
	assert.Equal(t, glm.Bool4{false, true, false, false}, a.EqualToScalar(2))
	assert.Equal(t, glm.Bool4{true, false, true, true}, a.NotEqualToScalar(2))
	assert.Equal(t, glm.Bool4{true, true, false, false}, a.LessEqualScalar(2))
	assert.Equal(t, glm.Bool4{false, true, true, true}, a.GreaterEqualScalar(2))
}

func TestVectorReductions(t *testing.T) {
	v := glm.Double2{3, -4}

	assert.Equal(t, -1.0, v.Sum())
	assert.Equal(t, -4.0, v.MinElement())
	assert.Equal(t, 3.0, v.MaxElement())
	assert.Equal(t, 25.0, v.LengthSqr())
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 5.0, v.Norm())
	assert.Equal(t, 5.0, v.Norm2())
	assert.Equal(t, 7.0, v.Norm1())
	assert.Equal(t, 4.0, v.NormMax())
	assert.InDelta(t, 5.0, v.NormP(2), 1e-12)
	assert.Equal(t, -6.0, v.Dot(glm.Double2{2, 3}))
}

// TestLengthSqrIsSumOfCompMul checks LengthSqr(v) == Sum(CompMul(v, v)).
func TestLengthSqrIsSumOfCompMul(t *testing.T) {
	for _, v := range []glm.Long4{{1, 2, 3, 4}, {-5, 0, 7, 1}, {0, 0, 0, 0}} {
		require.Equal(t, v.CompMul(v).Sum(), v.LengthSqr())
	}
	for _, v := range []glm.Float3{{0.5, -1.5, 2}, {3, 4, 0}} {
		require.Equal(t, v.CompMul(v).Sum(), v.LengthSqr())
	}
}

func TestIntegerNormsWiden(t *testing.T) {
	v := glm.Vec2[int8]{100, 100}
	assert.InDelta(t, math.Sqrt(20000), v.Length(), 1e-9)
}

func TestNormalizedZeroVector(t *testing.T) {
	assert.Equal(t, glm.Int3{}, glm.Int3{}.Normalized())
	assert.Equal(t, glm.Long2{}, glm.Long2{}.Normalized())
	assert.Equal(t, glm.Double4{}, glm.Double4{}.Normalized())
	assert.Equal(t, glm.Int2{0, 1}, glm.Int2{0, 7}.Normalized())
}

func TestVectorHelpers(t *testing.T) {
	a := glm.Double3{0, 10, -10}

	assert.Equal(t, glm.Double3{0, 5, -5}, a.Clamp(glm.Double3{-5, -5, -5}, glm.Double3{5, 5, 5}))
	assert.Equal(t, glm.Double3{1, 5, -5}, glm.Double3{2, 0, 0}.Lerp(a, 0.5))
	assert.Equal(t, 5.0, glm.Double2{0, 0}.Distance(glm.Double2{3, 4}))
	assert.Equal(t, int32(25), glm.Int2{0, 0}.DistanceSqr(glm.Int2{3, 4}))
	assert.Equal(t, glm.Double2{0.6, 0.8}, glm.Double2{3, 4}.Normalized())
	assert.Equal(t, glm.Int3{0, 0, 1}, glm.Cross(glm.Int3{1, 0, 0}, glm.Int3{0, 1, 0}))
	assert.Equal(t, glm.Int3{0, 0, -1}, glm.Int3{0, 1, 0}.Cross(glm.Int3{1, 0, 0}))
}

func TestDivisionByZero(t *testing.T) {
	f := glm.Float2{1, 0}.CompDiv(glm.Float2{0, 0})
	assert.True(t, math.IsInf(float64(f[0]), 1))
	assert.True(t, math.IsNaN(float64(f[1])))

	assert.Panics(t, func() {
		_ = glm.Int2{1, 1}.DivScalar(0)
	})
}

func TestVectorAccessors(t *testing.T) {
	v := glm.Float4{1, 2, 3, 4}

	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []float32{1, 2, 3, 4}, v.Components())
	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.G())
	assert.Equal(t, float32(3), v.B())
	assert.Equal(t, float32(4), v.W())

	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, float32(3), x)

	_, err = v.At(4)
	require.ErrorIs(t, err, glm.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, glm.ErrOutOfRange)

	require.NoError(t, v.Set(0, 9))
	require.ErrorIs(t, v.Set(7, 9), glm.ErrOutOfRange)
	v.SetA(8)
	v.SetY(7)
	assert.Equal(t, glm.Float4{9, 7, 3, 8}, v)

	var seen []float32
	for x := range v.Values() {
		seen = append(seen, x)
	}
	assert.Equal(t, []float32{9, 7, 3, 8}, seen)

	// Components is a copy.
	c := v.Components()
	c[0] = -1
	assert.Equal(t, float32(9), v.X())
}

func TestVectorValueSemantics(t *testing.T) {
	a := glm.Int2{1, 2}
	b := a
	b.SetX(5)
	assert.Equal(t, glm.Int2{1, 2}, a)
	assert.True(t, a.Equal(glm.Int2{1, 2}))
	assert.False(t, a.Equal(b))

	set := map[glm.Int2]int{a: 1, b: 2}
	assert.Equal(t, 2, set[glm.Int2{5, 2}])
}

func TestBoolVectors(t *testing.T) {
	a := glm.Bool4{true, true, false, false}
	b := glm.Bool4{true, false, true, false}

	assert.Equal(t, glm.Bool4{true, false, false, false}, a.And(b))
	assert.Equal(t, glm.Bool4{true, true, true, false}, a.Or(b))
	assert.Equal(t, glm.Bool4{false, true, true, false}, a.Xor(b))
	assert.Equal(t, glm.Bool4{false, false, true, true}, a.Not())
	assert.Equal(t, glm.Bool4{false, false, false, false}, a.AndScalar(false))
	assert.Equal(t, glm.Bool4{true, true, true, true}, a.OrScalar(true))
	assert.Equal(t, glm.Bool4{true, false, false, true}, a.EqualTo(b))
	assert.Equal(t, glm.Bool4{false, true, true, false}, a.NotEqualTo(b))

	assert.False(t, a.All())
	assert.True(t, a.Any())
	assert.Equal(t, a.All(), a.MinElement())
	assert.Equal(t, a.Any(), a.MaxElement())
	assert.True(t, glm.Bool2{true, true}.All())
	assert.False(t, glm.Bool3{}.Any())
}
