// SPDX-License-Identifier: MIT

package glm_test

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvglm/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", glm.Float3{1, 2.5, -3}.String())
	assert.Equal(t, "(true, false)", glm.Bool2{true, false}.String())
	assert.Equal(t, "((1, 2), (3, 4))", glm.Int2x2{{1, 2}, {3, 4}}.String())
	assert.Equal(t, "((true, false, false), (false, true, false))", glm.IdentityBool[glm.Bool2x3]().String())
}

func TestFormatOptions(t *testing.T) {
	v := glm.Double3{1, 2.5, -3}
	s := glm.FormatVector(v[:], glm.WithBrackets("[", "]"), glm.WithSeparator(" "), glm.WithVerb("%.1f"))
	assert.Equal(t, "[1.0 2.5 -3.0]", s)

	back, err := glm.ParseVec[glm.Double3, float64](s, glm.WithBrackets("[", "]"), glm.WithSeparator(" "))
	require.NoError(t, err)
	assert.Equal(t, v, back)

	m := glm.Int2x2{{1, 2}, {3, 4}}
	assert.Equal(t, "<<1;2>;<3;4>>", glm.FormatMatrix(m.Grid(), glm.WithBrackets("<", ">"), glm.WithSeparator(";")))

	assert.Panics(t, func() { glm.WithSeparator("") })
	assert.Panics(t, func() { glm.WithBrackets("", ")") })
	assert.Panics(t, func() { glm.WithVerb("v") })
}

func TestParseRoundTrip(t *testing.T) {
	v := glm.Float4{1.25, -2, 0, 1e-7}
	got, err := glm.ParseVec[glm.Float4, float32](v.String())
	require.NoError(t, err)
	assert.Equal(t, v, got)

	m := glm.Long3x2{{1, -2}, {3, math.MaxInt64}, {math.MinInt64, 0}}
	gotM, err := glm.ParseMat[glm.Long3x2, int64](m.String())
	require.NoError(t, err)
	assert.Equal(t, m, gotM)

	b := glm.Bool2x2{{true, false}, {false, true}}
	gotB, err := glm.ParseBoolMat[glm.Bool2x2](b.String())
	require.NoError(t, err)
	assert.Equal(t, b, gotB)

	bv, err := glm.ParseBoolVec[glm.Bool3](" ( true,false , true ) ")
	require.NoError(t, err)
	assert.Equal(t, glm.Bool3{true, false, true}, bv)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too few", "(1, 2)"},
		{"too many", "(1, 2, 3, 4)"},
		{"no brackets", "1, 2, 3"},
		{"empty", "()"},
		{"bad number", "(1, x, 3)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := glm.ParseVec[glm.Int3, int32](tc.in)
			require.ErrorIs(t, err, glm.ErrSyntax)
		})
	}

	_, err := glm.ParseVec[glm.Vec2[int8], int8]("(1, 300)")
	require.ErrorIs(t, err, glm.ErrSyntax)
	require.ErrorIs(t, err, strconv.ErrRange)

	_, err = glm.ParseVec[glm.Vec2[uint8], uint8]("(-1, 2)")
	require.ErrorIs(t, err, strconv.ErrRange)

	_, err = glm.ParseVec[glm.Float2, float32]("(1e300, 2)")
	require.ErrorIs(t, err, glm.ErrSyntax)
	require.ErrorIs(t, err, strconv.ErrRange)
	_, err = glm.ParseVec[glm.Double2, float64]("(1e400, 2)")
	require.ErrorIs(t, err, strconv.ErrRange)
	d, err := glm.ParseVec[glm.Double2, float64]("(1e300, 2)")
	require.NoError(t, err)
	assert.Equal(t, glm.Double2{1e300, 2}, d)

	f := glm.Float2{1, 2}
	require.ErrorIs(t, f.UnmarshalText([]byte("(1e300, 2)")), strconv.ErrRange)
	assert.Equal(t, glm.Float2{1, 2}, f)

	_, err = glm.ParseMat[glm.Int2x2, int32]("((1, 2), (3, 4), (5, 6))")
	require.ErrorIs(t, err, glm.ErrSyntax)
	_, err = glm.ParseMat[glm.Int2x2, int32]("((1, 2) (3, 4))")
	require.ErrorIs(t, err, glm.ErrSyntax)
	_, err = glm.ParseMat[glm.Int2x2, int32]("((1, 2), )")
	require.ErrorIs(t, err, glm.ErrSyntax)
}

func TestUnmarshalTextLeavesTargetOnError(t *testing.T) {
	v := glm.Int3{1, 2, 3}
	require.Error(t, v.UnmarshalText([]byte("(4, 5)")))
	assert.Equal(t, glm.Int3{1, 2, 3}, v)

	m := glm.Int2x2{{1, 2}, {3, 4}}
	require.Error(t, m.UnmarshalText([]byte("((9, 9), (9, x))")))
	assert.Equal(t, glm.Int2x2{{1, 2}, {3, 4}}, m)
}

type transform struct {
	Position glm.Float3   `json:"position" yaml:"position"`
	Basis    glm.Float3x3 `json:"basis" yaml:"basis"`
	Visible  glm.Bool2    `json:"visible" yaml:"visible"`
}

func TestTextEncodings(t *testing.T) {
	in := transform{
		Position: glm.Float3{1, -2.5, 3},
		Basis:    glm.Identity[glm.Float3x3, float32](),
		Visible:  glm.Bool2{true, false},
	}

	js, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":"(1, -2.5, 3)","basis":"((1, 0, 0), (0, 1, 0), (0, 0, 1))","visible":"(true, false)"}`, string(js))

	var fromJSON transform
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, in, fromJSON)

	ys, err := yaml.Marshal(in)
	require.NoError(t, err)

	var fromYAML transform
	require.NoError(t, yaml.Unmarshal(ys, &fromYAML))
	assert.Equal(t, in, fromYAML)
}
