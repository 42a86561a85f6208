// SPDX-License-Identifier: MIT

package swizzle_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, a := range swizzle.Alphabets {
		for i := 0; i < swizzle.MaxDim; i++ {
			idx, got, ok := swizzle.Lookup(a.Letter(i))
			require.True(t, ok)
			assert.Equal(t, i, idx)
			assert.Equal(t, a, got)
		}
	}

	for _, c := range []byte{'X', 'q', 'u', '0', ' '} {
		_, _, ok := swizzle.Lookup(c)
		assert.False(t, ok, "%q", c)
	}
	assert.Equal(t, "xyzw", swizzle.Positional.String())
	assert.Equal(t, "rgba", swizzle.Color.String())
}

func TestParse(t *testing.T) {
	p, err := swizzle.Parse("xzy", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, p.Index)
	assert.Equal(t, swizzle.Positional, p.Alphabet)
	assert.Equal(t, "XZY", p.Method())
	assert.Equal(t, "SetXZY", p.Setter())
	assert.True(t, p.Distinct())

	p, err = swizzle.Parse("abgr", 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, p.Index)
	assert.Equal(t, swizzle.Color, p.Alphabet)

	p, err = swizzle.Parse("rr", 2)
	require.NoError(t, err)
	assert.False(t, p.Distinct())
	assert.Equal(t, "rr", p.String())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		letters string
		n       int
		want    error
	}{
		{"xy", 1, swizzle.ErrBadDimension},
		{"xy", 5, swizzle.ErrBadDimension},
		{"", 3, swizzle.ErrBadLength},
		{"xyzwx", 4, swizzle.ErrBadLength},
		{"xq", 3, swizzle.ErrUnknownLetter},
		{"XY", 3, swizzle.ErrUnknownLetter},
		{"xg", 3, swizzle.ErrMixedAlphabet},
		{"rgby", 4, swizzle.ErrMixedAlphabet},
		{"xz", 2, swizzle.ErrOutOfRange},
		{"a", 3, swizzle.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.letters, func(t *testing.T) {
			_, err := swizzle.Parse(tc.letters, tc.n)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSequences(t *testing.T) {
	for n := swizzle.MinDim; n <= swizzle.MaxDim; n++ {
		for length := swizzle.MinLen; length <= swizzle.MaxLen; length++ {
			seq, err := swizzle.Sequences(n, length, swizzle.Positional)
			require.NoError(t, err)

			total, distinct := 1, 1
			for i := 0; i < length; i++ {
				total *= n
				distinct *= n - i
			}
			require.Len(t, seq, total)

			d := 0
			for _, p := range seq {
				parsed, err := swizzle.Parse(p.Letters, n)
				require.NoError(t, err)
				assert.Equal(t, parsed, p)
				if p.Distinct() {
					d++
				}
			}
			assert.Equal(t, distinct, d, "n=%d len=%d", n, length)
		}
	}
}

func TestSequencesOrder(t *testing.T) {
	seq, err := swizzle.Sequences(2, 2, swizzle.Color)
	require.NoError(t, err)
	got := make([]string, len(seq))
	for i, p := range seq {
		got[i] = p.Letters
	}
	assert.Equal(t, []string{"rr", "rg", "gr", "gg"}, got)

	_, err = swizzle.Sequences(1, 2, swizzle.Color)
	require.ErrorIs(t, err, swizzle.ErrBadDimension)
	_, err = swizzle.Sequences(3, 0, swizzle.Color)
	require.ErrorIs(t, err, swizzle.ErrBadLength)
}
