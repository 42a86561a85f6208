// SPDX-License-Identifier: MIT

package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leftoverToken = regexp.MustCompile(`\{[A-Z][A-Za-z0-9]*\}`)

func TestGenerate(t *testing.T) {
	cases := []struct {
		kind    string
		present []string
		absent  []string
	}{
		{
			kind: kindViews,
			present: []string{
				"func (s View2[T, V2, V3, V4]) YX() V2 {",
				"func (s View4[T, V2, V3, V4]) WWWW() V4 {",
				"func (s Ref3[T, V2, V3, V4]) SetZXY(v V3) {",
			},
			absent: []string{
				"View2[T, V2, V3, V4]) XZ()",
				"View3[T, V2, V3, V4]) RGBA()",
				"SetXX(",
				"View2[T, V2, V3, V4]) X()",
			},
		},
		{
			kind: kindVectors,
			present: []string{
				"func (v Vec4[T]) NormP(p float64) float64 {",
				"func (v Bool4) Any() bool {",
				"func (v *Vec3[T]) SetZ(x T) {",
			},
			absent: []string{
				"func (v Vec2[T]) Z()",
				"func (v Bool3) Sum()",
			},
		},
		{
			kind: kindMatrices,
			present: []string{
				"func (m Mat3x2[T]) Transposed() Mat2x3[T] {",
				"func (m Mat4x4[T]) Inverse() (Mat4x4[T], error) {",
				"func (m Mat2x3[T]) MulMat4x2(o Mat4x2[T]) Mat4x3[T] {",
			},
			absent: []string{
				"func (m Mat2x3[T]) Inverse()",
				"func (m Mat2x3[T]) MulMat2x3(",
			},
		},
		{
			kind:    kindAliases,
			present: []string{"type Long4x4 = Mat4x4[int64]", "type Float3 = Vec3[float32]"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			src, err := generate(tc.kind)
			require.NoError(t, err)

			s := string(src)
			assert.True(t, strings.HasPrefix(s, "// Code generated by glmgen; DO NOT EDIT."))
			assert.Empty(t, leftoverToken.FindAllString(s, 5))
			for _, want := range tc.present {
				assert.Contains(t, s, want)
			}
			for _, bad := range tc.absent {
				assert.NotContains(t, s, bad)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := generate(kindViews)
	require.NoError(t, err)
	b, err := generate(kindViews)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := generate("quaternions")
	require.ErrorIs(t, err, ErrUnknownKind)
}
