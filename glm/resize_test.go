// SPDX-License-Identifier: MIT

package glm_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeIdentityFill(t *testing.T) {
	m := glm.Float2x2{{1, 2}, {3, 4}}

	up := glm.Resize[glm.Float4x3, float32](m)
	assert.Equal(t, glm.Float4x3{{1, 2, 0}, {3, 4, 0}, {0, 0, 1}, {0, 0, 0}}, up)

	down := glm.Resize[glm.Float2x3, float32](glm.Float4x4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}})
	assert.Equal(t, glm.Float2x3{{1, 2, 3}, {5, 6, 7}}, down)
}

func TestResizeRoundTrip(t *testing.T) {
	m23 := filled[glm.Double2x3](t)
	require.Equal(t, m23, glm.Resize[glm.Double2x3, float64](glm.Resize[glm.Double4x4, float64](m23)))
	require.Equal(t, m23, glm.Resize[glm.Double2x3, float64](glm.Resize[glm.Double3x3, float64](m23)))

	m32 := filled[glm.Double3x2](t)
	require.Equal(t, m32, glm.Resize[glm.Double3x2, float64](glm.Resize[glm.Double3x4, float64](m32)))

	m44 := filled[glm.Double4x4](t)
	require.Equal(t, m44, glm.Resize[glm.Double4x4, float64](m44))

	v := glm.Int2{7, 8}
	up := glm.ResizeVec[glm.Int4, int32](v)
	assert.Equal(t, glm.Int4{7, 8, 0, 0}, up)
	assert.Equal(t, v, glm.ResizeVec[glm.Int2, int32](up))
	assert.Equal(t, glm.Int3{7, 8, 0}, glm.ResizeVec[glm.Int3, int32](up))
}

func TestResizeBool(t *testing.T) {
	m := glm.Bool2x2{{false, true}, {true, false}}
	up := glm.ResizeBool[glm.Bool3x3](m)
	assert.Equal(t, glm.Bool3x3{{false, true, false}, {true, false, false}, {false, false, true}}, up)
	assert.Equal(t, m, glm.ResizeBool[glm.Bool2x2](up))

	v := glm.ResizeBoolVec[glm.Bool4](glm.Bool2{true, true})
	assert.Equal(t, glm.Bool4{true, true, false, false}, v)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, glm.Int3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, glm.Identity[glm.Int3x3, int32]())
	assert.Equal(t, glm.Int4x2{{1, 0}, {0, 1}, {0, 0}, {0, 0}}, glm.Identity[glm.Int4x2, int32]())
	assert.Equal(t, glm.Bool2x3{{true, false, false}, {false, true, false}}, glm.IdentityBool[glm.Bool2x3]())
}
