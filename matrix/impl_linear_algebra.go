// SPDX-License-Identifier: MIT
// Package matrix provides the shape-sensitive linear-algebra kernels:
// matrix product, matrix-vector product, transpose, trace, determinant and
// inverse. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches BEFORE writing into dst.
//
// Notes:
//   - Kernels write into a caller-provided dst view; dst must not alias an
//     operand. The glm types always pass a fresh result value.
//   - Products use T's native + and * with no zero-skipping, so IEEE
//     propagation (Inf*0 = NaN) is preserved.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvglm/scalar"
)

// ZeroPivot is the sentinel for detecting a zero pivot in elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opTranspose   = "Transpose"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opDot         = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs the standard matrix product dst = a × b.
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows, dst is b.Cols × a.Rows).
//   - Stage 2: for each dst column c and row r, dot row r of a with column c of b.
//
// Behavior highlights:
//   - Column-major friendly loop order c→r→k; one accumulator per cell.
//
// Inputs:
//   - dst: result view with b.Cols columns and a.Rows rows.
//   - a:   left operand (K columns × R rows).
//   - b:   right operand (C columns × K rows).
//
// Errors:
//   - ErrDimensionMismatch (inner or result mismatch); dst untouched.
//
// Complexity:
//   - Time O(R*K*C), Space O(1).
func Mul[T scalar.Number](dst, a, b Grid[T]) error {
	if err := ValidateMulCompatible(dst, a, b); err != nil {
		return matrixErrorf(opMul, err)
	}

	inner := a.Cols()
	var (
		c, r, k int // loop iterators
		acc     T
	)
	for c = 0; c < len(dst); c++ {
		for r = 0; r < len(dst[c]); r++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += a[k][r] * b[c][k] // row r of a · column c of b
			}
			dst[c][r] = acc
		}
	}

	return nil
}

// MulVec computes dst = a * x for a column vector x.
//
// Contract: len(x) == a.Cols(); len(dst) == a.Rows().
// Each dst[r] is the dot product of row r of a with x.
// Determinism: fixed r→c loop order.
// Complexity: Time O(r*c), Space O(1).
func MulVec[T scalar.Number](dst []T, a Grid[T], x []T) error {
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(dst, a.Rows()); err != nil {
		return matrixErrorf(opMulVec, err)
	}

	var acc T
	for r := range dst {
		acc = 0
		for c := range a {
			acc += a[c][r] * x[c]
		}
		dst[r] = acc
	}

	return nil
}

// Transpose writes srcᵀ into dst: dst[i][j] = src[j][i].
//
// Errors:
//   - ErrDimensionMismatch when dst is not src.Rows × src.Cols.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Transpose[T any](dst, src Grid[T]) error {
	if err := ValidateTranspose(dst, src); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	var i, j int
	for i = 0; i < len(dst); i++ {
		for j = 0; j < len(dst[i]); j++ {
			dst[i][j] = src[j][i]
		}
	}

	return nil
}

// Trace returns the sum of the diagonal of a square grid.
// Errors: ErrNonSquare.
// Complexity: O(n).
func Trace[T scalar.Number](g Grid[T]) (T, error) {
	if err := ValidateSquare(g); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var sum T
	for i := range g {
		sum += g[i][i]
	}

	return sum, nil
}

// widenSquare copies a square grid into a float64 row-major scratch buffer
// a[r*n+c]. n ≤ MaxDim, so the buffer is tiny.
func widenSquare[T scalar.Number](g Grid[T]) ([]float64, int) {
	n := g.Cols()
	a := make([]float64, n*n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			a[r*n+c] = scalar.Widen(g[c][r])
		}
	}

	return a, n
}

// pivotRow returns the row index ≥ k with the largest |a[row][k]|.
func pivotRow(a []float64, n, k int) int {
	best, bestAbs := k, math.Abs(a[k*n+k])
	for r := k + 1; r < n; r++ {
		if v := math.Abs(a[r*n+k]); v > bestAbs {
			best, bestAbs = r, v
		}
	}

	return best
}

// swapRows exchanges rows i and j of a row-major n×n buffer.
func swapRows(a []float64, n, i, j int) {
	if i == j {
		return
	}
	for c := 0; c < n; c++ {
		a[i*n+c], a[j*n+c] = a[j*n+c], a[i*n+c]
	}
}

// Determinant computes det(g) in float64 via Gaussian elimination with
// partial pivoting.
// Implementation:
//   - Stage 1: ValidateSquare; widen to float64.
//   - Stage 2: eliminate column by column, flipping the sign on row swaps.
//   - Stage 3: product of the pivots.
//
// Behavior highlights:
//   - A zero pivot column yields det == 0 (not an error).
//   - Precision is float64 for every domain.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[T scalar.Number](g Grid[T]) (float64, error) {
	if err := ValidateSquare(g); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	a, n := widenSquare(g)
	det := 1.0
	var k, r, c, p int
	var f float64
	for k = 0; k < n; k++ {
		p = pivotRow(a, n, k)
		if a[p*n+k] == ZeroPivot {
			return 0, nil // singular: determinant is exactly zero
		}
		if p != k {
			swapRows(a, n, p, k)
			det = -det
		}
		det *= a[k*n+k]
		for r = k + 1; r < n; r++ {
			f = a[r*n+k] / a[k*n+k]
			for c = k; c < n; c++ {
				a[r*n+c] -= f * a[k*n+c]
			}
		}
	}

	return det, nil
}

// Inverse writes src⁻¹ into dst using Gauss-Jordan elimination with partial
// pivoting in float64; results are converted back to T (integral domains
// truncate toward zero, so the inverse of the integer grid ((2, 0), (0, 2))
// is all zeros; callers wanting exact inverses use a float T).
// Implementation:
//   - Stage 1: ValidateSquare(src); ValidateSameShape(dst, src).
//   - Stage 2: reduce [A | I] to [I | A⁻¹] in a scratch buffer.
//   - Stage 3: copy A⁻¹ into dst (only after success, so dst is never partial).
//
// Errors:
//   - ErrNonSquare, ErrDimensionMismatch, ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T scalar.Number](dst, src Grid[T]) error {
	if err := ValidateSquare(src); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opInverse, err)
	}

	a, n := widenSquare(src)
	inv := make([]float64, n*n) // row-major identity
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	var k, r, c, p int
	var f, pivot float64
	for k = 0; k < n; k++ {
		p = pivotRow(a, n, k)
		if a[p*n+k] == ZeroPivot {
			return matrixErrorf(opInverse, ErrSingular)
		}
		swapRows(a, n, p, k)
		swapRows(inv, n, p, k)

		pivot = a[k*n+k]
		for c = 0; c < n; c++ {
			a[k*n+c] /= pivot
			inv[k*n+c] /= pivot
		}
		for r = 0; r < n; r++ {
			if r == k {
				continue
			}
			f = a[r*n+k]
			for c = 0; c < n; c++ {
				a[r*n+c] -= f * a[k*n+c]
				inv[r*n+c] -= f * inv[k*n+c]
			}
		}
	}

	for c = 0; c < n; c++ {
		for r = 0; r < n; r++ {
			dst[c][r] = T(inv[r*n+c])
		}
	}

	return nil
}
