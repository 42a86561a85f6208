// SPDX-License-Identifier: MIT

package glm_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filled returns a matrix whose flat column-major components are 1, 2, 3, ...
func filled[M any, PM interface {
	*M
	SetIndex(int, float64) error
	Len() int
}](t *testing.T) M {
	t.Helper()
	var m M
	pm := PM(&m)
	for i := 0; i < pm.Len(); i++ {
		require.NoError(t, pm.SetIndex(i, float64(i+1)))
	}

	return m
}

func TestFloat4x3Scenario(t *testing.T) {
	m := glm.Float4x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}

	tr := m.Transposed()
	assert.Equal(t, glm.Float3x4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}, tr)
	for i := 0; i < 4; i++ {
		row, err := tr.Row(i)
		require.NoError(t, err)
		col, err := m.Col(i)
		require.NoError(t, err)
		assert.Equal(t, col, row, "row %d of the transpose is column %d", i, i)
	}

	assert.Equal(t, float32(0), m.MinElement())
	assert.Equal(t, float32(1), m.MaxElement())
}

func TestTransposeInvolution(t *testing.T) {
	m22 := filled[glm.Double2x2](t)
	m23 := filled[glm.Double2x3](t)
	m24 := filled[glm.Double2x4](t)
	m32 := filled[glm.Double3x2](t)
	m33 := filled[glm.Double3x3](t)
	m34 := filled[glm.Double3x4](t)
	m42 := filled[glm.Double4x2](t)
	m43 := filled[glm.Double4x3](t)
	m44 := filled[glm.Double4x4](t)

	assert.Equal(t, m22, m22.Transposed().Transposed())
	assert.Equal(t, m23, m23.Transposed().Transposed())
	assert.Equal(t, m24, m24.Transposed().Transposed())
	assert.Equal(t, m32, m32.Transposed().Transposed())
	assert.Equal(t, m33, m33.Transposed().Transposed())
	assert.Equal(t, m34, m34.Transposed().Transposed())
	assert.Equal(t, m42, m42.Transposed().Transposed())
	assert.Equal(t, m43, m43.Transposed().Transposed())
	assert.Equal(t, m44, m44.Transposed().Transposed())

	// result[i][j] == source[j][i]
	tr := m43.Transposed()
	for c := 0; c < 3; c++ {
		for r := 0; r < 4; r++ {
			assert.Equal(t, m43[r][c], tr[c][r])
		}
	}
}

func TestMultiplyIdentityLaw(t *testing.T) {
	m22 := filled[glm.Double2x2](t)
	m33 := filled[glm.Double3x3](t)
	m44 := filled[glm.Double4x4](t)
	i2 := glm.Identity[glm.Double2x2, float64]()
	i3 := glm.Identity[glm.Double3x3, float64]()
	i4 := glm.Identity[glm.Double4x4, float64]()

	assert.Equal(t, m22, m22.MulMat2x2(i2))
	assert.Equal(t, m22, i2.MulMat2x2(m22))
	assert.Equal(t, m33, m33.MulMat3x3(i3))
	assert.Equal(t, m33, i3.MulMat3x3(m33))
	assert.Equal(t, m44, m44.MulMat4x4(i4))
	assert.Equal(t, m44, i4.MulMat4x4(m44))

	// Non-square: I(rows) * M == M == M * I(cols).
	m43 := filled[glm.Double4x3](t)
	assert.Equal(t, m43, m43.MulMat4x4(i4))
	assert.Equal(t, m43, i3.MulMat4x3(m43))
}

func TestMultiplyShapes(t *testing.T) {
	// 3 columns x 2 rows times 2 columns x 3 rows = 2x2.
	a := glm.Int3x2{{1, 4}, {2, 5}, {3, 6}}
	b := glm.Int2x3{{7, 9, 11}, {8, 10, 12}}

	var p glm.Int2x2 = a.MulMat2x3(b)
	assert.Equal(t, glm.Int2x2{{58, 139}, {64, 154}}, p)

	var q glm.Int3x3 = b.MulMat3x2(a)
	assert.Equal(t, glm.Int3x3{{39, 49, 59}, {54, 68, 82}, {69, 87, 105}}, q)

	assert.Equal(t, glm.Int2{-2, -2}, a.MulVec(glm.Int3{1, 0, -1}))
}

func TestMatrixArithmeticAndComparison(t *testing.T) {
	a := glm.Int2x2{{1, 2}, {3, 4}}
	b := glm.Int2x2{{4, 3}, {2, 1}}

	assert.Equal(t, glm.Int2x2{{5, 5}, {5, 5}}, a.Add(b))
	assert.Equal(t, glm.Int2x2{{-3, -1}, {1, 3}}, a.Sub(b))
	assert.Equal(t, glm.Int2x2{{4, 6}, {6, 4}}, a.CompMul(b))
	assert.Equal(t, glm.Int2x2{{0, 0}, {1, 4}}, a.CompDiv(b))
	assert.Equal(t, glm.Int2x2{{2, 4}, {6, 8}}, a.MulScalar(2))
	assert.Equal(t, glm.Int2x2{{9, 8}, {7, 6}}, a.RSub(10))
	assert.Equal(t, glm.Int2x2{{-1, -2}, {-3, -4}}, a.Neg())
	assert.Equal(t, glm.Int2x2{{1, 2}, {2, 1}}, a.Min(b))

	assert.Equal(t, glm.Bool2x2{{true, true}, {false, false}}, a.Less(b))
	assert.Equal(t, glm.Bool2x2{{false, false}, {true, true}}, a.GreaterScalar(2))
	assert.Equal(t, glm.Bool2x2{{false, true}, {false, false}}, a.EqualToScalar(2))

	assert.Equal(t, int32(10), a.Sum())
	assert.Equal(t, int32(30), a.LengthSqr())
	assert.Equal(t, 10.0, a.Norm1())
	assert.Equal(t, 4.0, a.NormMax())
}

func TestMatrixAccessors(t *testing.T) {
	m := glm.Float3x2{{1, 2}, {3, 4}, {5, 6}}

	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 6, m.Len())

	x, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(6), x)

	x, err = m.AtIndex(3) // col 1, row 1
	require.NoError(t, err)
	assert.Equal(t, float32(4), x)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, glm.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, glm.ErrOutOfRange)
	_, err = m.AtIndex(6)
	require.ErrorIs(t, err, glm.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, glm.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, glm.ErrOutOfRange)

	require.NoError(t, m.Set(0, 1, 9))
	require.NoError(t, m.SetIndex(4, 8))
	require.ErrorIs(t, m.Set(-1, 0, 0), glm.ErrOutOfRange)
	assert.Equal(t, glm.Float3x2{{1, 9}, {3, 4}, {8, 6}}, m)

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, glm.Float3{1, 3, 8}, row)

	var seen []float32
	for x := range m.Values() {
		seen = append(seen, x)
	}
	assert.Equal(t, []float32{1, 9, 3, 4, 8, 6}, seen)

	// Grid is a view over a copy.
	g := m.Grid()
	g[0][0] = 100
	assert.Equal(t, float32(1), m[0][0])
	assert.True(t, m.Equal(glm.Float3x2{{1, 9}, {3, 4}, {8, 6}}))
}

func TestSquareExtras(t *testing.T) {
	m := glm.Double3x3{{4, 2, 0}, {7, 6, 1}, {2, 1, 3}}

	assert.Equal(t, 13.0, m.Trace())
	assert.InDelta(t, 30.0, m.Determinant(), 1e-9)

	inv, err := m.Inverse()
	require.NoError(t, err)
	prod := m.MulMat3x3(inv)
	id := glm.Identity[glm.Double3x3, float64]()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			assert.InDelta(t, id[c][r], prod[c][r], 1e-12)
		}
	}

	_, err = glm.Double2x2{{1, 2}, {2, 4}}.Inverse()
	require.ErrorIs(t, err, glm.ErrSingular)
	assert.Equal(t, 0.0, glm.Int2x2{{1, 2}, {2, 4}}.Determinant())
}

func TestIntegerInverseTruncates(t *testing.T) {
	inv, err := glm.Int2x2{{2, 0}, {0, 2}}.Inverse()
	require.NoError(t, err)
	assert.Equal(t, glm.Int2x2{}, inv)

	exact, err := glm.Double2x2{{2, 0}, {0, 2}}.Inverse()
	require.NoError(t, err)
	assert.Equal(t, glm.Double2x2{{0.5, 0}, {0, 0.5}}, exact)

	unimodular, err := glm.Int2x2{{1, 1}, {0, 1}}.Inverse()
	require.NoError(t, err)
	assert.Equal(t, glm.Int2x2{{1, -1}, {0, 1}}, unimodular)
}

func TestBoolMatrices(t *testing.T) {
	a := glm.Bool2x3{{true, false, true}, {false, false, true}}
	b := glm.Bool2x3{{true, true, false}, {false, true, true}}

	assert.Equal(t, glm.Bool2x3{{true, false, false}, {false, false, true}}, a.And(b))
	assert.Equal(t, glm.Bool2x3{{true, true, true}, {false, true, true}}, a.Or(b))
	assert.Equal(t, glm.Bool2x3{{false, true, true}, {false, true, false}}, a.Xor(b))
	assert.Equal(t, glm.Bool2x3{{false, true, false}, {true, true, false}}, a.Not())
	assert.Equal(t, glm.Bool2x3{{true, false, false}, {true, false, true}}, a.EqualTo(b))
	assert.Equal(t, glm.Bool3x2{{true, false}, {false, false}, {true, true}}, a.Transposed())

	assert.False(t, a.All())
	assert.True(t, a.Any())
	assert.Equal(t, a.All(), a.MinElement())
	assert.Equal(t, a.Any(), a.MaxElement())
	assert.True(t, glm.IdentityBool[glm.Bool2x2]().Or(glm.Bool2x2{{false, true}, {true, false}}).All())

	row, err := a.Row(2)
	require.NoError(t, err)
	assert.Equal(t, glm.Bool2{true, true}, row)
}
