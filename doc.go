// Package lvglm is a small family of fixed-size linear-algebra primitives:
// vectors of 2 to 4 components and matrices of 2x2 up to 4x4, over bool,
// int32, int64, float32 and float64.
//
// 🚀 What is inside?
//
//	A typed, allocation-light library where every shape is its own type:
//		• glm/      Vec2..Vec4, Mat2x2..Mat4x4, Bool counterparts and the
//		             Float/Double/Int/Long aliases; arithmetic, comparisons,
//		             reductions, norms, products, transpose, resize, text I/O
//		• swizzle/  the xyzw/rgba letter table, read views and distinct-letter
//		             write views used by glm's Swizzle and SwizzleRef
//		• matrix/   shape-agnostic kernels over column-major grids (product,
//		             transpose, resize, element-wise zips, reductions, inverse)
//		• scalar/   numeric constraints and the scalar functions the kernels take
//		• cmd/glmgen: the generator behind the per-shape method sets
//
// ✨ Why fixed shapes?
//
//   - Mismatched products, transposes and swizzles fail to compile.
//   - Values are arrays: they copy, compare with == and work as map keys.
//   - The kernels are shared, so every shape behaves the same way.
//
// Quick example:
//
//	m := glm.Identity[glm.Float4x3, float32]()
//	v := m.MulVec(glm.Float4{1, 2, 3, 4})   // Float3{1, 2, 3}
//	v.Swizzle().ZYX()                       // Float3{3, 2, 1}
//
//	go get github.com/katalvlaran/lvglm
package lvglm
