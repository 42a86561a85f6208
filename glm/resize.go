// SPDX-License-Identifier: MIT
// Package glm - shape conversion between the fixed types.
//
// Purpose:
//   - Construct any shape from any other shape of the same scalar domain.
//   - One rule for every pair: copy the overlap; matrices fill the rest from
//     the identity matrix, vectors fill it with zero (false).
//
// AI-Hints:
//   - The destination is a type argument and T must be spelled out:
//     glm.Resize[glm.Mat4x4[float32], float32](m).
//   - The constraint only admits glm types, so the destination is always a
//     valid shape.

package glm

import (
	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
)

// Resize returns src converted to the matrix type D.
// Cells present in both shapes are copied; cells only in D get 1 on the
// diagonal and 0 elsewhere. Growing then shrinking back is lossless.
// Complexity: O(cols*rows) of D.
func Resize[D any, T scalar.Number, PD matrixPtr[D, T]](src Matrix[T]) D {
	var dst D
	matrix.Resize(PD(&dst).view(), src.Grid(), 0, 1)

	return dst
}

// ResizeBool is Resize for boolean matrices (true on the diagonal).
func ResizeBool[D any, PD matrixPtr[D, bool]](src Matrix[bool]) D {
	var dst D
	matrix.Resize(PD(&dst).view(), src.Grid(), false, true)

	return dst
}

// ResizeVec returns src converted to the vector type D: the first
// min(len) components are copied and the rest are zero.
func ResizeVec[D any, T scalar.Number, PD vectorPtr[D, T]](src Vector[T]) D {
	var dst D
	matrix.ResizeVec(PD(&dst).view(), src.Components(), 0)

	return dst
}

// ResizeBoolVec is ResizeVec for boolean vectors (missing components are false).
func ResizeBoolVec[D any, PD vectorPtr[D, bool]](src Vector[bool]) D {
	var dst D
	matrix.ResizeVec(PD(&dst).view(), src.Components(), false)

	return dst
}

// Identity returns the identity of matrix type D. Non-square shapes get the
// truncated identity (1 where col == row).
func Identity[D any, T scalar.Number, PD matrixPtr[D, T]]() D {
	var dst D
	matrix.Identity(PD(&dst).view(), 0, 1)

	return dst
}

// IdentityBool returns the boolean identity of matrix type D.
func IdentityBool[D any, PD matrixPtr[D, bool]]() D {
	var dst D
	matrix.Identity(PD(&dst).view(), false, true)

	return dst
}
