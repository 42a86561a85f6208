// SPDX-License-Identifier: MIT

package swizzle_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, letters string, n int) swizzle.Pattern {
	t.Helper()
	p, err := swizzle.Parse(letters, n)
	require.NoError(t, err)

	return p
}

func TestRead(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	dst := make([]float64, 4)
	require.NoError(t, swizzle.Read(dst, src, mustParse(t, "wzyx", 4)))
	assert.Equal(t, []float64{4, 3, 2, 1}, dst)

	dst = make([]float64, 3)
	require.NoError(t, swizzle.Read(dst, src, mustParse(t, "xxy", 4)))
	assert.Equal(t, []float64{1, 1, 2}, dst)

	require.ErrorIs(t, swizzle.Read(make([]float64, 2), src, mustParse(t, "xxy", 4)), swizzle.ErrLengthMismatch)

	short := []float64{1, 2}
	dst = []float64{9, 9}
	require.ErrorIs(t, swizzle.Read(dst, short, mustParse(t, "xz", 3)), swizzle.ErrOutOfRange)
	assert.Equal(t, []float64{9, 9}, dst)

	bad := swizzle.Pattern{Letters: "?", Index: []int{-1}}
	require.ErrorIs(t, swizzle.Read(make([]float64, 1), src, bad), swizzle.ErrOutOfRange)
}

func TestWrite(t *testing.T) {
	dst := []bool{false, false, false}
	require.NoError(t, swizzle.Write(dst, mustParse(t, "zx", 3), []bool{true, true}))
	assert.Equal(t, []bool{true, false, true}, dst)

	dst = []bool{false, false, false}
	require.ErrorIs(t, swizzle.Write(dst, mustParse(t, "xx", 3), []bool{true, true}), swizzle.ErrDuplicateLetter)
	require.ErrorIs(t, swizzle.Write(dst, mustParse(t, "xy", 3), []bool{true}), swizzle.ErrLengthMismatch)
	require.ErrorIs(t, swizzle.Write(dst[:2], mustParse(t, "xyz", 3), []bool{true, true, true}), swizzle.ErrOutOfRange)
	assert.Equal(t, []bool{false, false, false}, dst)
}
