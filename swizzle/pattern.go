// SPDX-License-Identifier: MIT
// Package: swizzle
//
// Purpose:
//   - The letter <-> index bijection: Parse turns "xzy" into (0, 2, 1) for a
//     vector of length N and rejects everything that is not addressable.
//   - Sequences enumerates the addressable patterns, which is what the
//     generated views are built from.
//
// Determinism:
//   - Sequences yields patterns in lexicographic index order; the generated
//     method order follows it.

package swizzle

import (
	"fmt"
	"strings"
)

// Bounds of the closed sets.
const (
	MinDim = 2 // shortest source vector
	MaxDim = 4 // longest source vector
	MinLen = 1 // single letter (direct component accessor)
	MaxLen = 4 // longest pattern
)

// Pattern is a parsed swizzle: the letters as written, their alphabet and
// the component index named by each letter.
type Pattern struct {
	Letters  string
	Alphabet Alphabet
	Index    []int
}

// swizzleErrorf wraps err with the operation and the letters involved.
func swizzleErrorf(op, letters string, err error) error {
	return fmt.Errorf("%s(%q): %w", op, letters, err)
}

// Parse validates letters against a source vector of length n.
// MAIN DESCRIPTION:
//   - Every letter must come from the same alphabet and name an index < n.
//
// Errors:
//   - ErrBadDimension (n outside 2..4), ErrBadLength (len outside 1..4),
//     ErrUnknownLetter, ErrMixedAlphabet, ErrOutOfRange.
//
// Complexity:
//   - Time O(len(letters)), Space O(len(letters)).
func Parse(letters string, n int) (Pattern, error) {
	if n < MinDim || n > MaxDim {
		return Pattern{}, swizzleErrorf("Parse", letters, ErrBadDimension)
	}
	if len(letters) < MinLen || len(letters) > MaxLen {
		return Pattern{}, swizzleErrorf("Parse", letters, ErrBadLength)
	}

	p := Pattern{Letters: letters, Index: make([]int, len(letters))}
	for i := 0; i < len(letters); i++ {
		idx, a, ok := Lookup(letters[i])
		if !ok {
			return Pattern{}, swizzleErrorf("Parse", letters, ErrUnknownLetter)
		}
		if i == 0 {
			p.Alphabet = a
		} else if a != p.Alphabet {
			return Pattern{}, swizzleErrorf("Parse", letters, ErrMixedAlphabet)
		}
		if idx >= n {
			return Pattern{}, swizzleErrorf("Parse", letters, ErrOutOfRange)
		}
		p.Index[i] = idx
	}

	return p, nil
}

// Len returns the number of letters (the length of the result vector).
func (p Pattern) Len() int { return len(p.Index) }

// Distinct reports whether no index repeats, i.e. whether the pattern may
// be used as a write target.
func (p Pattern) Distinct() bool {
	for a := 1; a < len(p.Index); a++ {
		for b := 0; b < a; b++ {
			if p.Index[a] == p.Index[b] {
				return false
			}
		}
	}

	return true
}

// Method returns the exported Go method name of the getter: "xzy" -> "XZY".
func (p Pattern) Method() string { return strings.ToUpper(p.Letters) }

// Setter returns the exported Go method name of the setter: "xz" -> "SetXZ".
func (p Pattern) Setter() string { return "Set" + p.Method() }

// String returns the letters as written.
func (p Pattern) String() string { return p.Letters }

// Sequences returns every pattern of the given length over alphabet a that
// is valid for a source vector of length n, in lexicographic index order.
// There are n^length of them; the distinct ones are exactly the writable
// patterns.
//
// Errors: ErrBadDimension, ErrBadLength.
// Complexity: O(length * n^length).
func Sequences(n, length int, a Alphabet) ([]Pattern, error) {
	if n < MinDim || n > MaxDim {
		return nil, fmt.Errorf("Sequences(%d, %d): %w", n, length, ErrBadDimension)
	}
	if length < MinLen || length > MaxLen {
		return nil, fmt.Errorf("Sequences(%d, %d): %w", n, length, ErrBadLength)
	}

	total := 1
	for i := 0; i < length; i++ {
		total *= n
	}

	out := make([]Pattern, 0, total)
	letters := make([]byte, length)
	for k := 0; k < total; k++ {
		idx := make([]int, length)
		rest := k
		for pos := length - 1; pos >= 0; pos-- { // last letter varies fastest
			idx[pos] = rest % n
			rest /= n
			letters[pos] = a.Letter(idx[pos])
		}
		out = append(out, Pattern{Letters: string(letters), Alphabet: a, Index: idx})
	}

	return out, nil
}
