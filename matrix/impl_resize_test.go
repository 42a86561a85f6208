// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/stretchr/testify/require"
)

// TestResizeIdentityFill grows a 2x2 into a 4x3 and checks the fill policy.
func TestResizeIdentityFill(t *testing.T) {
	src := FilledGrid(t, 2, 2, 5, 6, 7, 8)
	dst := MustGrid[int](t, 4, 3)
	matrix.Resize(dst, src, 0, 1)

	// columns: (5,6,0) (7,8,0) (0,0,1) (0,0,0)
	require.Equal(t, []int{5, 6, 0, 7, 8, 0, 0, 0, 1, 0, 0, 0}, Flatten(dst))
}

// TestResizeShrinkNeverReadsPastSource shrinks a 4x4 into a 2x3.
func TestResizeShrinkNeverReadsPastSource(t *testing.T) {
	src := MustGrid[float64](t, 4, 4)
	src.Apply(func(col, row int, _ float64) float64 { return float64(10*col + row) })

	dst := MustGrid[float64](t, 2, 3)
	matrix.Resize(dst, src, 0, 1)
	require.Equal(t, []float64{0, 1, 2, 10, 11, 12}, Flatten(dst))
}

// TestResizeRoundTrip checks up-then-down conversion for every shape pair.
func TestResizeRoundTrip(t *testing.T) {
	for sc := matrix.MinDim; sc <= matrix.MaxDim; sc++ {
		for sr := matrix.MinDim; sr <= matrix.MaxDim; sr++ {
			src := MustGrid[int](t, sc, sr)
			src.Apply(func(col, row int, _ int) int { return 1 + col*sr + row })

			big := MustGrid[int](t, matrix.MaxDim, matrix.MaxDim)
			matrix.Resize(big, src, 0, 1)
			back := MustGrid[int](t, sc, sr)
			matrix.Resize(back, big, 0, 1)

			require.Equal(t, Flatten(src), Flatten(back), "shape %dx%d", sc, sr)
		}
	}
}

// TestResizeBool uses false/true as neutral elements.
func TestResizeBool(t *testing.T) {
	src := FilledGrid(t, 2, 2, false, false, false, false)
	dst := MustGrid[bool](t, 3, 3)
	matrix.Resize(dst, src, false, true)
	require.Equal(t, []bool{false, false, false, false, false, false, false, false, true}, Flatten(dst))
}

// TestResizeVec zero-fills new components and truncates on shrink.
func TestResizeVec(t *testing.T) {
	dst := make([]int, 4)
	matrix.ResizeVec(dst, []int{1, 2}, 0)
	require.Equal(t, []int{1, 2, 0, 0}, dst)

	small := make([]int, 2)
	matrix.ResizeVec(small, []int{7, 8, 9}, 0)
	require.Equal(t, []int{7, 8}, small)
}

// TestIdentity covers square and rectangular identity.
func TestIdentity(t *testing.T) {
	id, err := matrix.NewIdentity[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, Flatten(id))

	rect := MustGrid[int](t, 3, 2)
	matrix.Identity(rect, 0, 1)
	require.Equal(t, []int{1, 0, 0, 1, 0, 0}, Flatten(rect))

	_, err = matrix.NewIdentity[int](5)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
