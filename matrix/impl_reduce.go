// SPDX-License-Identifier: MIT
// Package matrix - scalar reductions over a fixed component set.
//
// Public API (this file):
//   - Sum, MinElement, MaxElement, LengthSqr -> T
//   - Length, Norm, Norm2, Norm1, NormMax, NormP(p) -> float64
//   - All, Any -> bool (AND/OR folds, the bool analogue of Min/Max)
//   - Dot(a, b) -> T
//
// Order:
//   - Every reduction takes its components as `cols ...[]T` and folds them
//     in argument order: vectors pass one slice, matrices pass their
//     columns, which yields column 0 top-to-bottom, then column 1, ...
//
// Precision policy:
//   - Norms always widen to float64 (one precision for every domain).
//   - Sum/LengthSqr/Dot/Min/Max stay in T with native overflow semantics.
//
// Empty input:
//   - Sum/LengthSqr of nothing is 0; Min/MaxElement of nothing is the zero
//     value of T; All of nothing is true, Any of nothing is false.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvglm/scalar"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Fold reduces the components with f, seeded by the first component.
// MAIN DESCRIPTION:
//   - Generic left fold in column-major order; the building block for
//     MinElement/MaxElement.
//
// Returns:
//   - (acc, true) when at least one component exists; (zero, false) otherwise.
//
// Complexity:
//   - Time O(n), Space O(1).
func Fold[T any](f func(acc, x T) T, cols ...[]T) (T, bool) {
	var acc T
	seeded := false
	for _, col := range cols {
		for _, x := range col {
			if !seeded {
				acc, seeded = x, true
				continue
			}
			acc = f(acc, x)
		}
	}

	return acc, seeded
}

// Sum folds + over all components.
func Sum[T scalar.Number](cols ...[]T) T {
	var s T
	for _, col := range cols {
		for _, x := range col {
			s += x
		}
	}

	return s
}

// MinElement folds the builtin min over all components.
func MinElement[T scalar.Number](cols ...[]T) T {
	m, _ := Fold(scalar.Min[T], cols...)

	return m
}

// MaxElement folds the builtin max over all components.
func MaxElement[T scalar.Number](cols ...[]T) T {
	m, _ := Fold(scalar.Max[T], cols...)

	return m
}

// LengthSqr returns the sum of squares, Σ x², in T.
func LengthSqr[T scalar.Number](cols ...[]T) T {
	var s T
	for _, col := range cols {
		for _, x := range col {
			s += x * x
		}
	}

	return s
}

// Length returns sqrt(Σ x²) in float64.
// Notes:
//   - Squares are accumulated in float64, so integral domains do not
//     overflow where LengthSqr (in T) would.
func Length[T scalar.Number](cols ...[]T) float64 {
	s := NormZero
	var f float64
	for _, col := range cols {
		for _, x := range col {
			f = scalar.Widen(x)
			s += f * f
		}
	}

	return math.Sqrt(s)
}

// Norm is the Euclidean norm; identical to Length.
func Norm[T scalar.Number](cols ...[]T) float64 { return Length(cols...) }

// Norm2 is the Euclidean (L2) norm; identical to Length.
func Norm2[T scalar.Number](cols ...[]T) float64 { return Length(cols...) }

// Norm1 returns Σ |x| in float64.
func Norm1[T scalar.Number](cols ...[]T) float64 {
	s := NormZero
	for _, col := range cols {
		for _, x := range col {
			s += math.Abs(scalar.Widen(x))
		}
	}

	return s
}

// NormMax returns max |x| in float64 (0 for no components).
func NormMax[T scalar.Number](cols ...[]T) float64 {
	m := NormZero
	for _, col := range cols {
		for _, x := range col {
			m = math.Max(m, math.Abs(scalar.Widen(x)))
		}
	}

	return m
}

// NormP returns (Σ |x|^p)^(1/p) in float64.
// Notes:
//   - No guarding: p ≤ 0 or non-finite p follow math.Pow semantics.
func NormP[T scalar.Number](p float64, cols ...[]T) float64 {
	s := NormZero
	for _, col := range cols {
		for _, x := range col {
			s += math.Pow(math.Abs(scalar.Widen(x)), p)
		}
	}

	return math.Pow(s, 1/p)
}

// All folds AND over all components (the bool MinElement).
func All(cols ...[]bool) bool {
	for _, col := range cols {
		for _, x := range col {
			if !x {
				return false
			}
		}
	}

	return true
}

// Any folds OR over all components (the bool MaxElement).
func Any(cols ...[]bool) bool {
	for _, col := range cols {
		for _, x := range col {
			if x {
				return true
			}
		}
	}

	return false
}

// Dot returns Σ a[i]*b[i] in T.
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: O(n).
func Dot[T scalar.Number](a, b []T) (T, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	var s T
	for i := range a {
		s += a[i] * b[i]
	}

	return s, nil
}
