// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Shape conversion between any two shapes of the closed set.
//   - One rule for every pair: copy the overlap, identity-fill the rest.
//
// Identity-fill policy:
//   - Matrices: a destination cell (c,r) not covered by the source gets
//     `one` when c == r and `zero` otherwise (the identity matrix value).
//   - Vectors: uncovered components get `zero` (0 or false).
//
// Determinism:
//   - Fixed col→row loops; never reads past the source's own shape.

package matrix

// Resize writes the shape conversion of src into dst.
// MAIN DESCRIPTION:
//   - Total function over any pair of shapes: dst keeps its own shape.
//
// Implementation:
//   - Stage 1: for each dst cell, copy src[c][r] when (c,r) is inside src.
//   - Stage 2: otherwise write one on the diagonal, zero elsewhere.
//
// Behavior highlights:
//   - Up-then-down conversion is lossless: the smaller shape is fully
//     contained in the larger one and copied back unchanged.
//   - dst and src must not alias.
//
// Inputs:
//   - dst: destination view (any rectangular shape).
//   - src: source view (any rectangular shape).
//   - zero, one: the neutral elements of T (0/1 or false/true).
//
// Complexity:
//   - Time O(c*r) of dst, Space O(1).
func Resize[T any](dst, src Grid[T], zero, one T) {
	srcCols, srcRows := src.Shape()
	var c, r int
	for c = 0; c < len(dst); c++ {
		for r = 0; r < len(dst[c]); r++ {
			switch {
			case c < srcCols && r < srcRows:
				dst[c][r] = src[c][r] // overlap: copy
			case c == r:
				dst[c][r] = one // identity diagonal
			default:
				dst[c][r] = zero
			}
		}
	}
}

// ResizeVec writes the shape conversion of vector src into dst: the first
// min(len(dst), len(src)) components are copied, the rest set to zero.
// Complexity: O(len(dst)).
func ResizeVec[T any](dst, src []T, zero T) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = zero
	}
}

// Identity writes the identity matrix of dst's shape (one on the diagonal,
// zero elsewhere). Non-square shapes get the truncated identity.
// Complexity: O(c*r).
func Identity[T any](dst Grid[T], zero, one T) {
	dst.Apply(func(col, row int, _ T) T {
		if col == row {
			return one
		}

		return zero
	})
}
