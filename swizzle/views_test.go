// SPDX-License-Identifier: MIT

package swizzle_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	vec2 [2]int
	vec3 [3]int
	vec4 [4]int
)

func TestView(t *testing.T) {
	v := swizzle.New3[int, vec2, vec3, vec4]([3]int{1, 2, 3})
	assert.Equal(t, vec2{3, 1}, v.ZX())
	assert.Equal(t, vec3{1, 1, 1}, v.XXX())
	assert.Equal(t, vec4{3, 2, 1, 3}, v.ZYXZ())
	assert.Equal(t, vec3{2, 3, 2}, v.GBG())

	got, err := v.Read("bgr")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got)

	_, err = v.Read("xw")
	require.ErrorIs(t, err, swizzle.ErrOutOfRange)
	_, err = v.Read("xg")
	require.ErrorIs(t, err, swizzle.ErrMixedAlphabet)
}

func TestViewIsSnapshot(t *testing.T) {
	src := [2]int{1, 2}
	v := swizzle.New2[int, vec2, vec3, vec4](src)
	src[0] = 100
	assert.Equal(t, vec2{2, 1}, v.YX())
}

func TestRef(t *testing.T) {
	target := [4]int{1, 2, 3, 4}
	r := swizzle.NewRef4[int, vec2, vec3, vec4](&target)

	r.SetWX(vec2{40, 10})
	assert.Equal(t, [4]int{10, 2, 3, 40}, target)

	r.SetRGBA(vec4{5, 6, 7, 8})
	assert.Equal(t, [4]int{5, 6, 7, 8}, target)

	r.SetZYX(vec3{0, 0, 0})
	assert.Equal(t, [4]int{0, 0, 0, 8}, target)

	require.NoError(t, r.Write("ag", 1, 2))
	assert.Equal(t, [4]int{0, 2, 0, 1}, target)

	got, err := r.Read("ww")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got)

	require.ErrorIs(t, r.Write("xx", 1, 2), swizzle.ErrDuplicateLetter)
	require.ErrorIs(t, r.Write("xy", 1), swizzle.ErrLengthMismatch)
	require.ErrorIs(t, r.Write("q", 1), swizzle.ErrUnknownLetter)
	assert.Equal(t, [4]int{0, 2, 0, 1}, target)
}

func TestRefTwoComponents(t *testing.T) {
	target := [2]int{1, 2}
	r := swizzle.NewRef2[int, vec2, vec3, vec4](&target)
	r.SetYX(vec2{1, 2})
	assert.Equal(t, [2]int{2, 1}, target)
	r.SetRG(vec2{7, 8})
	assert.Equal(t, [2]int{7, 8}, target)

	require.ErrorIs(t, r.Write("xz", 1, 2), swizzle.ErrOutOfRange)
}
