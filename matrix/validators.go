// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating shape/length checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (except on the
//    error path).
//
// Note:
//  - Every kernel validates BEFORE the first write, so a failing call never
//    leaves a partially computed destination behind.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures cols and rows are inside the closed set {2,3,4}.
//
// Inputs: column and row counts.
// Returns: nil or wrapped ErrBadShape.
// Complexity: O(1).
func ValidateShape(cols, rows int) error {
	if cols < MinDim || cols > MaxDim {
		return validatorErrorf("ValidateShape: Columns", ErrBadShape)
	}
	if rows < MinDim || rows > MaxDim {
		return validatorErrorf("ValidateShape: Rows", ErrBadShape)
	}

	return nil
}

// ValidateRect ensures every column of g has the same length.
// A grid with zero columns is rectangular (and 0×0).
// Complexity: O(c).
func ValidateRect[T any](g Grid[T]) error {
	rows := g.Rows()
	for c := 1; c < len(g); c++ {
		if len(g[c]) != rows {
			return validatorErrorf("ValidateRect", ErrBadShape)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes both are rectangular (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Zip kernels and compatibility guards.
func ValidateSameShape[T, U any](a Grid[T], b Grid[U]) error {
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that g is square (Cols == Rows).
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T any](g Grid[T]) error {
	if g.Cols() != g.Rows() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures dst = a × b is well-formed:
// a.Cols == b.Rows, dst.Cols == b.Cols and dst.Rows == a.Rows.
// Complexity: O(1).
func ValidateMulCompatible[T any](dst, a, b Grid[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible: Inner", ErrDimensionMismatch)
	}
	if dst.Cols() != b.Cols() || dst.Rows() != a.Rows() {
		return validatorErrorf("ValidateMulCompatible: Result", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTranspose ensures dst has the flipped shape of src.
// Complexity: O(1).
func ValidateTranspose[T any](dst, src Grid[T]) error {
	if dst.Cols() != src.Rows() || dst.Rows() != src.Cols() {
		return validatorErrorf("ValidateTranspose", ErrDimensionMismatch)
	}

	return nil
}
