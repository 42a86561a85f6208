// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Kernels wrap with matrixErrorf("Op", ErrX) at the detection
// site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> index -> dimension mismatch -> numeric (singular).

var (
	// ErrBadShape is returned when a requested shape is outside the closed
	// dimension set {2,3,4} or a grid is not rectangular.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a column, row or flat index is outside
	// valid bounds. Public indexers (At/Set/AtIndex/SetIndex) return this.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Zip on different lengths, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square grid was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds no usable pivot.
	ErrSingular = errors.New("matrix: singular matrix")
)
