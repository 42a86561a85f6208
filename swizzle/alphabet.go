// SPDX-License-Identifier: MIT

package swizzle

import "strings"

// Alphabet selects one of the two letter tables.
type Alphabet uint8

const (
	// Positional is the x y z w table.
	Positional Alphabet = iota
	// Color is the r g b a table.
	Color
)

// Letter tables; the byte at position i names component i.
const (
	positionalLetters = "xyzw"
	colorLetters      = "rgba"
)

// Alphabets lists both tables in a fixed order (generation order).
var Alphabets = [...]Alphabet{Positional, Color}

// Letters returns the four letters of the table in index order.
func (a Alphabet) Letters() string {
	if a == Color {
		return colorLetters
	}

	return positionalLetters
}

// Letter returns the letter naming component i (0..3).
func (a Alphabet) Letter(i int) byte { return a.Letters()[i] }

// String implements fmt.Stringer.
func (a Alphabet) String() string { return a.Letters() }

// Lookup maps one letter to its component index and alphabet.
// ok is false for letters outside both tables. Lookup is case-sensitive.
func Lookup(letter byte) (index int, alphabet Alphabet, ok bool) {
	if i := strings.IndexByte(positionalLetters, letter); i >= 0 {
		return i, Positional, true
	}
	if i := strings.IndexByte(colorLetters, letter); i >= 0 {
		return i, Color, true
	}

	return 0, Positional, false
}
