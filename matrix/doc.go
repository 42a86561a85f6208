// Package matrix is the shape algebra of lvglm: shape-agnostic kernels over
// small column-major grids.
//
// The matrix package provides:
//
//   - Grid, a column-major view (one slice per column) with checked
//     At/Set, flat AtIndex/SetIndex (col*Rows+row) and iteration.
//   - Resize with the identity-fill policy and ResizeVec with zero fill.
//   - Mul, MulVec, Transpose, Trace, Determinant and Inverse.
//   - Element-wise Zip/Map kernels with scalar broadcast.
//   - Reductions (Sum, MinElement, MaxElement, LengthSqr, Norm family,
//     All, Any, Dot) that fold in column-major order.
//
// The typed vector and matrix values in package glm delegate to these
// kernels; there every shape is its own type, so mismatched shapes do not
// compile. Used directly, the kernels validate shapes and return sentinel
// errors without writing partial results.
package matrix
