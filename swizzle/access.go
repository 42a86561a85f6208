// SPDX-License-Identifier: MIT

package swizzle

// Read copies src[p.Index[i]] into dst[i] for every letter, in letter order.
//
// Errors:
//   - ErrLengthMismatch when len(dst) != p.Len().
//   - ErrOutOfRange when an index is not inside src.
//
// Nothing is written on error.
func Read[T any](dst, src []T, p Pattern) error {
	if len(dst) != p.Len() {
		return swizzleErrorf("Read", p.Letters, ErrLengthMismatch)
	}
	for _, i := range p.Index {
		if i < 0 || i >= len(src) {
			return swizzleErrorf("Read", p.Letters, ErrOutOfRange)
		}
	}
	for k, i := range p.Index {
		dst[k] = src[i]
	}

	return nil
}

// Write assigns val[i] to dst[p.Index[i]] for every letter, left to right.
// Since the indices are distinct the order has no observable effect.
//
// Errors:
//   - ErrDuplicateLetter when p repeats a letter ("xx" is not writable).
//   - ErrLengthMismatch when len(val) != p.Len().
//   - ErrOutOfRange when an index is not inside dst.
//
// Nothing is written on error.
func Write[T any](dst []T, p Pattern, val []T) error {
	if !p.Distinct() {
		return swizzleErrorf("Write", p.Letters, ErrDuplicateLetter)
	}
	if len(val) != p.Len() {
		return swizzleErrorf("Write", p.Letters, ErrLengthMismatch)
	}
	for _, i := range p.Index {
		if i < 0 || i >= len(dst) {
			return swizzleErrorf("Write", p.Letters, ErrOutOfRange)
		}
	}
	for k, i := range p.Index {
		dst[i] = val[k]
	}

	return nil
}
