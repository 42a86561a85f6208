// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Grid view.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewGridInvalidShape ensures NewGrid rejects shapes outside {2,3,4}.
func TestNewGridInvalidShape(t *testing.T) {
	_, err := matrix.NewGrid[float64](1, 3) // one column
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewGrid[float64](3, 5) // five rows
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestGridShape verifies Cols/Rows/Len on a 4x3 grid.
func TestGridShape(t *testing.T) {
	g := MustGrid[float32](t, 4, 3)

	cols, rows := g.Shape()
	require.Equal(t, 4, cols)
	require.Equal(t, 3, rows)
	require.Equal(t, 12, g.Len())
	require.Equal(t, 0, matrix.Grid[int]{}.Rows())
}

// TestAtSetOutOfRange ensures At/Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	g := MustGrid[int](t, 2, 2)

	_, err := g.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = g.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, g.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = g.AtIndex(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, g.SetIndex(-1, 1), matrix.ErrOutOfRange)
}

// TestFlatIndexIsColumnMajor checks this[col,row] == this[col*R+row].
func TestFlatIndexIsColumnMajor(t *testing.T) {
	g := MustGrid[int](t, 3, 4)
	for c := 0; c < 3; c++ {
		for r := 0; r < 4; r++ {
			require.NoError(t, g.Set(c, r, 10*c+r))
		}
	}

	for c := 0; c < 3; c++ {
		for r := 0; r < 4; r++ {
			v, err := g.AtIndex(c*4 + r)
			require.NoError(t, err)
			require.Equal(t, 10*c+r, v)
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23}, Flatten(g))
}

// TestColRow checks column/row extraction and their guards.
func TestColRow(t *testing.T) {
	g := FilledGrid(t, 3, 2, 1, 2, 3, 4, 5, 6) // columns (1,2) (3,4) (5,6)

	col := make([]int, 2)
	require.NoError(t, g.Col(1, col))
	require.Equal(t, []int{3, 4}, col)

	row := make([]int, 3)
	require.NoError(t, g.Row(1, row))
	require.Equal(t, []int{2, 4, 6}, row)

	require.ErrorIs(t, g.Col(3, col), matrix.ErrOutOfRange)
	require.ErrorIs(t, g.Row(0, col), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, g.Row(2, row), matrix.ErrOutOfRange)
}

// TestValuesRestartable ranges twice over the same sequence.
func TestValuesRestartable(t *testing.T) {
	g := FilledGrid(t, 2, 2, 1.0, 2.0, 3.0, 4.0)
	seq := g.Values()

	var first, second []float64
	for x := range seq {
		first = append(first, x)
	}
	for x := range seq {
		second = append(second, x)
	}
	require.Equal(t, first, second)

	var prefix []float64
	for x := range seq {
		prefix = append(prefix, x)
		if len(prefix) == 2 {
			break
		}
	}
	require.Equal(t, []float64{1, 2}, prefix)
}

// TestDoApply covers the visitor and the in-place transformer.
func TestDoApply(t *testing.T) {
	g := FilledGrid(t, 2, 2, 1, 2, 3, 4)

	visited := 0
	g.Do(func(col, row int, x int) bool {
		visited++
		return x < 2 // stop after the second element
	})
	require.Equal(t, 2, visited)

	g.Apply(func(col, row int, x int) int { return x * 10 })
	require.Equal(t, []int{10, 20, 30, 40}, Flatten(g))
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	g := FilledGrid(t, 2, 2, 1, 2, 3, 4)
	cp := g.Clone()

	require.NoError(t, cp.Set(0, 0, 99))
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, []int{99, 2, 3, 4}, Flatten(cp))
}

// TestStringOutput checks the column-list rendering.
func TestStringOutput(t *testing.T) {
	g := FilledGrid(t, 2, 2, 1, 0, 0, 1)
	require.Equal(t, "((1, 0), (0, 1))", g.String())
	require.Equal(t, "((true, false), (false, true))", FilledGrid(t, 2, 2, true, false, false, true).String())
}
