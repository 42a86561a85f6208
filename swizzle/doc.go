// SPDX-License-Identifier: MIT

// Package swizzle implements component letter addressing for small vectors.
//
// A swizzle is a sequence of one to four letters drawn from a single
// alphabet, either positional (x y z w) or color (r g b a). Each letter
// names a component index (x/r -> 0, y/g -> 1, z/b -> 2, w/a -> 3), and a
// sequence names an ordered list of indices: "xzy" is (0, 2, 1).
//
// The package provides:
//
//   - Parse, which validates letters against a vector length N and returns
//     the index list (Pattern).
//   - Read and Write, the slice forms of the two operations: Read copies
//     src[idx[i]] into dst[i] in letter order; Write assigns val[i] to
//     dst[idx[i]] and is only defined for patterns without repeated letters.
//   - Sequences, which enumerates every valid pattern for a given N.
//   - View2/View3/View4 and Ref2/Ref3/Ref4, typed views handed out by the
//     glm vector types. Their accessor methods are generated from Sequences,
//     so a View2 has XY and YX but no XZ, and a Ref never exposes a setter
//     with a repeated letter. Invalid swizzles therefore do not compile.
//
// Example:
//
//	v := glm.Float3{1, 2, 3}
//	v.Swizzle().ZYX()                  // Float3{3, 2, 1}
//	v.SwizzleRef().SetXZ(glm.Float2{7, 9}) // v == Float3{7, 2, 9}
package swizzle

//go:generate go run ../cmd/glmgen -kind views -o views_gen.go
