// SPDX-License-Identifier: MIT

// Package glm provides fixed-size vector and matrix values in the style of
// shader math libraries.
//
// Types:
//
//   - Vec2[T], Vec3[T], Vec4[T]: N-component vectors over a numeric T.
//   - Mat{C}x{R}[T] for C, R in {2, 3, 4}: C columns of R rows, stored
//     column-major as C column vectors (Mat4x3 is [4]Vec3).
//   - Bool2..Bool4 and Bool{C}x{R}: the boolean counterparts.
//   - Aliases per scalar domain: Float3 = Vec3[float32], Double4x4,
//     Int2 = Vec2[int32], Long3x2 = Mat3x2[int64], ...
//
// Every type is an array, so values copy on assignment, compare with ==
// and can be used as map keys. Each shape is its own type: products are
// methods named after the right operand (Mat4x3.MulMat2x4 returns Mat2x3),
// Transposed on Mat4x3 returns Mat3x4, and a 2-component vector has no Z.
// Shape mistakes are therefore compile errors.
//
// Shape conversion goes through Resize, ResizeVec and their Bool forms:
// the overlap is copied and the remaining cells take the identity matrix
// value (1 on the diagonal, 0 elsewhere) or zero for vectors.
//
// Swizzles:
//
//	v := glm.Float4{1, 2, 3, 4}
//	v.Swizzle().WZYX()                       // Float4{4, 3, 2, 1}
//	v.Swizzle().RGB()                        // Float3{1, 2, 3}
//	v.SwizzleRef().SetXW(glm.Float2{0, 0})   // v == Float4{0, 2, 3, 0}
//
// Norms (Length, Norm1, NormP, ...) are computed in float64 for every
// domain; Sum, LengthSqr and Dot stay in T. Integer division by zero panics
// as in Go; float division follows IEEE-754.
//
// The per-shape methods are generated by cmd/glmgen.
package glm

//go:generate go run ../cmd/glmgen -kind vectors -o vectors_gen.go
//go:generate go run ../cmd/glmgen -kind matrices -o matrices_gen.go
//go:generate go run ../cmd/glmgen -kind aliases -o aliases_gen.go
