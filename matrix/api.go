// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common runtime-shape tasks.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - Use NewIdentity/ZerosLike to build grids with explicit shape and neutral elements.
//   - Typed code should prefer the glm values; these facades serve tooling and tests.

package matrix

import "github.com/katalvlaran/lvglm/scalar"

// NewIdentity returns the n×n identity grid (ones on the diagonal).
// Errors: ErrBadShape when n is outside {2,3,4}.
// Complexity: O(n²).
func NewIdentity[T scalar.Number](n int) (Grid[T], error) {
	g, err := NewGrid[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	Identity(g, 0, 1)

	return g, nil
}

// ZerosLike returns a new zero grid with the same shape as g.
// Errors: ErrBadShape when g's shape is outside the closed set.
func ZerosLike[T any](g Grid[T]) (Grid[T], error) {
	return NewGrid[T](g.Cols(), g.Rows())
}

// Resized allocates a cols×rows grid holding the identity-fill conversion of src.
// Errors: ErrBadShape for an invalid destination shape or a ragged src.
// Complexity: O(cols*rows).
func Resized[T scalar.Number](src Grid[T], cols, rows int) (Grid[T], error) {
	if err := ValidateRect(src); err != nil {
		return nil, err
	}
	dst, err := NewGrid[T](cols, rows)
	if err != nil {
		return nil, err
	}
	Resize(dst, src, 0, 1)

	return dst, nil
}

// Transposed allocates srcᵀ.
// Errors: ErrBadShape for shapes outside the closed set or a ragged src.
func Transposed[T any](src Grid[T]) (Grid[T], error) {
	if err := ValidateRect(src); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dst, err := NewGrid[T](src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = Transpose(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// Product allocates a × b.
// Errors: ErrDimensionMismatch when a.Cols != b.Rows; ErrBadShape (also for
// ragged operands).
func Product[T scalar.Number](a, b Grid[T]) (Grid[T], error) {
	for _, g := range []Grid[T]{a, b} {
		if err := ValidateRect(g); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, validatorErrorf("Product: Inner", ErrDimensionMismatch))
	}
	dst, err := NewGrid[T](b.Cols(), a.Rows())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = Mul(dst, a, b); err != nil {
		return nil, err
	}

	return dst, nil
}
