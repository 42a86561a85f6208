// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small element-wise and broadcast kernels so that every
//     component-wise operator of the glm types (+ - * /, comparisons, logic)
//     is one call with a scalar function value (see package scalar).
//   - Keep all loops deterministic: flat 0..n-1, grids column by column.
//
// Design:
//   - Flat kernels work on vectors ([]T); the ...Grid forms apply the flat
//     kernel to each aligned column, which preserves column-major order.
//   - Output type U may differ from T (comparisons produce bool).
//   - Validation happens before the first write; a failing call leaves dst
//     untouched.
//
// AI-Hints:
//   - dst may alias an operand when U == T: each index is read before it is
//     written.

package matrix

const (
	opZip         = "Zip"
	opZipScalar   = "ZipScalar"
	opScalarZip   = "ScalarZip"
	opMap         = "Map"
	opZipGrid     = "ZipGrid"
	opZipScalarG  = "ZipScalarGrid"
	opScalarZipG  = "ScalarZipGrid"
	opMapGrid     = "MapGrid"
	_sameLenTag   = "lengths"
	_sameShapeTag = "shapes"
)

// Zip computes dst[i] = f(a[i], b[i]).
// Errors: ErrDimensionMismatch unless len(dst) == len(a) == len(b).
// Time: O(n). Space: O(1).
func Zip[T, U any](dst []U, a, b []T, f func(x, y T) U) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return matrixErrorf(opZip, validatorErrorf(_sameLenTag, ErrDimensionMismatch))
	}
	for i := range a {
		dst[i] = f(a[i], b[i])
	}

	return nil
}

// ZipScalar computes dst[i] = f(a[i], s): the scalar is broadcast on the right.
// Time: O(n). Space: O(1).
func ZipScalar[T, U any](dst []U, a []T, s T, f func(x, y T) U) error {
	if len(dst) != len(a) {
		return matrixErrorf(opZipScalar, validatorErrorf(_sameLenTag, ErrDimensionMismatch))
	}
	for i := range a {
		dst[i] = f(a[i], s)
	}

	return nil
}

// ScalarZip computes dst[i] = f(s, a[i]): the scalar is broadcast on the left
// (s - v, s / v).
// Time: O(n). Space: O(1).
func ScalarZip[T, U any](dst []U, s T, a []T, f func(x, y T) U) error {
	if len(dst) != len(a) {
		return matrixErrorf(opScalarZip, validatorErrorf(_sameLenTag, ErrDimensionMismatch))
	}
	for i := range a {
		dst[i] = f(s, a[i])
	}

	return nil
}

// Map computes dst[i] = f(a[i]).
// Time: O(n). Space: O(1).
func Map[T, U any](dst []U, a []T, f func(x T) U) error {
	if len(dst) != len(a) {
		return matrixErrorf(opMap, validatorErrorf(_sameLenTag, ErrDimensionMismatch))
	}
	for i := range a {
		dst[i] = f(a[i])
	}

	return nil
}

// ZipGrid applies Zip column by column: dst[c][r] = f(a[c][r], b[c][r]).
// Errors: ErrDimensionMismatch unless all three grids share one shape.
// Time: O(c*r). Space: O(1).
func ZipGrid[T, U any](dst Grid[U], a, b Grid[T], f func(x, y T) U) error {
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opZipGrid, err)
	}
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opZipGrid, err)
	}
	for c := range a {
		if err := Zip(dst[c], a[c], b[c], f); err != nil {
			return matrixErrorf(opZipGrid, validatorErrorf(_sameShapeTag, err))
		}
	}

	return nil
}

// ZipScalarGrid computes dst[c][r] = f(a[c][r], s).
// Time: O(c*r). Space: O(1).
func ZipScalarGrid[T, U any](dst Grid[U], a Grid[T], s T, f func(x, y T) U) error {
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opZipScalarG, err)
	}
	for c := range a {
		if err := ZipScalar(dst[c], a[c], s, f); err != nil {
			return matrixErrorf(opZipScalarG, validatorErrorf(_sameShapeTag, err))
		}
	}

	return nil
}

// ScalarZipGrid computes dst[c][r] = f(s, a[c][r]).
// Time: O(c*r). Space: O(1).
func ScalarZipGrid[T, U any](dst Grid[U], s T, a Grid[T], f func(x, y T) U) error {
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opScalarZipG, err)
	}
	for c := range a {
		if err := ScalarZip(dst[c], s, a[c], f); err != nil {
			return matrixErrorf(opScalarZipG, validatorErrorf(_sameShapeTag, err))
		}
	}

	return nil
}

// MapGrid computes dst[c][r] = f(a[c][r]).
// Time: O(c*r). Space: O(1).
func MapGrid[T, U any](dst Grid[U], a Grid[T], f func(x T) U) error {
	if err := ValidateSameShape(dst, a); err != nil {
		return matrixErrorf(opMapGrid, err)
	}
	for c := range a {
		if err := Map(dst[c], a[c], f); err != nil {
			return matrixErrorf(opMapGrid, validatorErrorf(_sameShapeTag, err))
		}
	}

	return nil
}
