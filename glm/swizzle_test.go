// SPDX-License-Identifier: MIT

package glm_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lvglm/glm"
	"github.com/katalvlaran/lvglm/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSwizzles walks every letter pattern valid for *pv and checks that
// (1) the getter exists and agrees with swizzle.Read, (2) a setter exists
// exactly when the letters are distinct, and (3) writing back what was read
// leaves the vector unchanged.
func checkSwizzles[T comparable, V glm.Vector[T]](t *testing.T, pv *V) {
	t.Helper()
	before := *pv
	n := (*pv).Len()
	src := (*pv).Components()

	for _, a := range swizzle.Alphabets {
		for length := 2; length <= swizzle.MaxLen; length++ {
			seq, err := swizzle.Sequences(n, length, a)
			require.NoError(t, err)
			for _, p := range seq {
				view := reflect.ValueOf(*pv).MethodByName("Swizzle").Call(nil)[0]
				get := view.MethodByName(p.Method())
				require.True(t, get.IsValid(), "getter %s", p.Method())
				got := get.Call(nil)[0]

				want := make([]T, p.Len())
				require.NoError(t, swizzle.Read(want, src, p))
				require.Equal(t, want, got.Interface().(glm.Vector[T]).Components(), p.Letters)

				ref := reflect.ValueOf(pv).MethodByName("SwizzleRef").Call(nil)[0]
				set := ref.MethodByName(p.Setter())
				if !p.Distinct() {
					require.False(t, set.IsValid(), "setter %s must not exist", p.Setter())
					continue
				}
				require.True(t, set.IsValid(), "setter %s", p.Setter())
				set.Call([]reflect.Value{got})
				require.Equal(t, before, *pv, "round trip %s", p.Letters)
			}
		}
	}
}

func TestSwizzleRoundTrip(t *testing.T) {
	v2 := glm.Int2{7, -2}
	v3 := glm.Float3{1.5, -2, 9}
	v4 := glm.Long4{1, 2, 3, 4}
	b3 := glm.Bool3{true, false, true}
	b4 := glm.Bool4{false, true, true, false}

	checkSwizzles[int32](t, &v2)
	checkSwizzles[float32](t, &v3)
	checkSwizzles[int64](t, &v4)
	checkSwizzles[bool](t, &b3)
	checkSwizzles[bool](t, &b4)
}

func TestSwizzleInvalidLettersAbsent(t *testing.T) {
	view2 := reflect.ValueOf(glm.Float2{}.Swizzle())
	assert.False(t, view2.MethodByName("XZ").IsValid())
	assert.False(t, view2.MethodByName("RB").IsValid())
	assert.True(t, view2.MethodByName("YX").IsValid())

	view3 := reflect.ValueOf(glm.Float3{}.Swizzle())
	assert.False(t, view3.MethodByName("XW").IsValid())

	v := glm.Float3{}
	ref3 := reflect.ValueOf(v.SwizzleRef())
	assert.False(t, ref3.MethodByName("SetXX").IsValid())
	assert.False(t, ref3.MethodByName("SetXYZW").IsValid())
	assert.True(t, ref3.MethodByName("SetZXY").IsValid())

	// Mixed alphabets are never generated.
	view4 := reflect.ValueOf(glm.Float4{}.Swizzle())
	assert.False(t, view4.MethodByName("XG").IsValid())
}

func TestSwizzleOrderMatters(t *testing.T) {
	v := glm.Double3{1, 2, 3}
	xy := v.Swizzle().XY()
	yx := v.Swizzle().YX()

	assert.Equal(t, xy.X(), yx.Y())
	assert.Equal(t, xy.Y(), yx.X())
	assert.Equal(t, glm.Double3{3, 1, 2}, v.Swizzle().ZXY())
	assert.Equal(t, glm.Double4{1, 1, 3, 3}, v.Swizzle().RRBB())
}

func TestBool3Swizzles(t *testing.T) {
	assert.Equal(t, glm.Bool3{false, true, true}, glm.Bool3{false, true, true}.Swizzle().XZY())
	assert.Equal(t, glm.Bool3{true, false, true}, glm.Bool3{true, false, true}.Swizzle().ZYX())
	assert.Equal(t, glm.Bool3{false, false, true}, glm.Bool3{true, false, false}.Swizzle().ZYX())
}

func TestSwizzleWrite(t *testing.T) {
	v := glm.Int4{1, 2, 3, 4}
	v.SwizzleRef().SetXW(glm.Int2{0, 9})
	assert.Equal(t, glm.Int4{0, 2, 3, 9}, v)

	v.SwizzleRef().SetBGR(glm.Int3{7, 8, 6})
	assert.Equal(t, glm.Int4{6, 8, 7, 9}, v)

	// A read view is a snapshot.
	view := v.Swizzle()
	v.SetX(100)
	assert.Equal(t, glm.Int2{6, 8}, view.XY())
}

func TestSwizzleRuntimeForms(t *testing.T) {
	v := glm.Float3{1, 2, 3}

	got, err := v.Swizzle().Read("zx")
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 1}, got)

	_, err = v.Swizzle().Read("xw")
	require.ErrorIs(t, err, swizzle.ErrOutOfRange)
	_, err = v.Swizzle().Read("xg")
	require.ErrorIs(t, err, swizzle.ErrMixedAlphabet)

	require.NoError(t, v.SwizzleRef().Write("yz", 5, 6))
	assert.Equal(t, glm.Float3{1, 5, 6}, v)

	require.ErrorIs(t, v.SwizzleRef().Write("xx", 0, 0), swizzle.ErrDuplicateLetter)
	require.ErrorIs(t, v.SwizzleRef().Write("xy", 0), swizzle.ErrLengthMismatch)
	assert.Equal(t, glm.Float3{1, 5, 6}, v)
}
