// SPDX-License-Identifier: MIT
// Package swizzle: sentinel error set.
// Every message is prefixed with "swizzle: ..."; callers match with errors.Is.

package swizzle

import "errors"

var (
	// ErrBadDimension is returned when the source vector length is not 2, 3 or 4.
	ErrBadDimension = errors.New("swizzle: vector dimension must be 2, 3 or 4")

	// ErrBadLength is returned for a letter sequence shorter than 1 or longer than 4.
	ErrBadLength = errors.New("swizzle: pattern must have 1 to 4 letters")

	// ErrUnknownLetter is returned for a letter outside xyzw and rgba.
	ErrUnknownLetter = errors.New("swizzle: unknown component letter")

	// ErrMixedAlphabet is returned when positional and color letters are mixed.
	ErrMixedAlphabet = errors.New("swizzle: letters mix xyzw and rgba")

	// ErrOutOfRange is returned when a letter names a component >= N.
	ErrOutOfRange = errors.New("swizzle: component out of range")

	// ErrDuplicateLetter is returned when a write pattern repeats a letter.
	ErrDuplicateLetter = errors.New("swizzle: repeated letter in write pattern")

	// ErrLengthMismatch is returned when a value count differs from the pattern length.
	ErrLengthMismatch = errors.New("swizzle: value count does not match pattern")
)
