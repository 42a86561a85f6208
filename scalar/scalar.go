// SPDX-License-Identifier: MIT

// Package scalar defines the scalar domains accepted by lvglm and the
// per-component operators the vector and matrix kernels are built from.
//
// Purpose:
//   - Single source of truth for the Number/Float/Integer constraints.
//   - Tiny, allocation-free binary/unary functions that can be passed as
//     values to the element-wise kernels in package matrix (e.g. Add[T]).
//
// Semantics:
//   - Every operator is the native Go operator for T. Division by an integer
//     zero panics with the runtime's integer-divide error; float division
//     follows IEEE-754 (±Inf, NaN). No guarding, rounding or saturation.
//
// AI-Hints:
//   - Instantiate once and pass the value: matrix.Zip(dst, a, b, scalar.Add[T]).
package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric scalar domains (int, long, float, double and
// every other Go integer or float kind).
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of floating-point scalar domains.
type Float interface {
	constraints.Float
}

// Integer is the set of integral scalar domains.
type Integer interface {
	constraints.Integer
}

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Div returns a / b using T's native division.
func Div[T Number](a, b T) T { return a / b }

// Neg returns -x. Unsigned kinds wrap.
func Neg[T Number](x T) T { return -x }

// Abs returns |x|. Unsigned kinds are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Min returns the smaller of a and b (builtin min semantics, NaN propagates).
func Min[T Number](a, b T) T { return min(a, b) }

// Max returns the larger of a and b (builtin max semantics, NaN propagates).
func Max[T Number](a, b T) T { return max(a, b) }

// Less reports a < b.
func Less[T Number](a, b T) bool { return a < b }

// LessEqual reports a <= b.
func LessEqual[T Number](a, b T) bool { return a <= b }

// Greater reports a > b.
func Greater[T Number](a, b T) bool { return a > b }

// GreaterEqual reports a >= b.
func GreaterEqual[T Number](a, b T) bool { return a >= b }

// Equal reports a == b under T's own equality (NaN != NaN).
func Equal[T comparable](a, b T) bool { return a == b }

// NotEqual reports a != b.
func NotEqual[T comparable](a, b T) bool { return a != b }

// And returns a && b.
func And(a, b bool) bool { return a && b }

// Or returns a || b.
func Or(a, b bool) bool { return a || b }

// Xor returns a != b.
func Xor(a, b bool) bool { return a != b }

// Not returns !a.
func Not(a bool) bool { return !a }

// Widen converts x to float64. The norm and elimination kernels of package
// matrix widen through it so that all domains share one precision.
func Widen[T Number](x T) float64 { return float64(x) }

// Lerp returns a + (b-a)*t computed in float64 and converted back to T.
// Integral domains truncate toward zero.
func Lerp[T Number](a, b T, t float64) T {
	fa := float64(a)

	return T(fa + (float64(b)-fa)*t)
}

// IsIntegral reports whether T is an integer kind.
func IsIntegral[T Number]() bool {
	half := 0.5 // non-constant so the conversion is legal for every T

	return T(half) == 0
}

// BitSize returns the width of T in bits (32 for float32, 8 for int8, ...),
// the bitSize argument strconv expects.
func BitSize[T Number]() int {
	var zero T

	return int(unsafe.Sizeof(zero)) * 8
}
