// SPDX-License-Identifier: MIT

package glm

import "github.com/katalvlaran/lvglm/scalar"

// Vec2 is a 2-component vector (x, y).
type Vec2[T scalar.Number] [2]T

// Vec3 is a 3-component vector (x, y, z).
type Vec3[T scalar.Number] [3]T

// Vec4 is a 4-component vector (x, y, z, w).
type Vec4[T scalar.Number] [4]T

// Bool2 is a 2-component boolean vector.
type Bool2 [2]bool

// Bool3 is a 3-component boolean vector.
type Bool3 [3]bool

// Bool4 is a 4-component boolean vector.
type Bool4 [4]bool

// Mat2x2 has 2 columns and 2 rows; m[col][row].
type Mat2x2[T scalar.Number] [2]Vec2[T]

// Mat2x3 has 2 columns and 3 rows.
type Mat2x3[T scalar.Number] [2]Vec3[T]

// Mat2x4 has 2 columns and 4 rows.
type Mat2x4[T scalar.Number] [2]Vec4[T]

// Mat3x2 has 3 columns and 2 rows.
type Mat3x2[T scalar.Number] [3]Vec2[T]

// Mat3x3 has 3 columns and 3 rows.
type Mat3x3[T scalar.Number] [3]Vec3[T]

// Mat3x4 has 3 columns and 4 rows.
type Mat3x4[T scalar.Number] [3]Vec4[T]

// Mat4x2 has 4 columns and 2 rows.
type Mat4x2[T scalar.Number] [4]Vec2[T]

// Mat4x3 has 4 columns and 3 rows.
type Mat4x3[T scalar.Number] [4]Vec3[T]

// Mat4x4 has 4 columns and 4 rows.
type Mat4x4[T scalar.Number] [4]Vec4[T]

// Bool2x2 is a boolean matrix with 2 columns and 2 rows.
type Bool2x2 [2]Bool2

// Bool2x3 is a boolean matrix with 2 columns and 3 rows.
type Bool2x3 [2]Bool3

// Bool2x4 is a boolean matrix with 2 columns and 4 rows.
type Bool2x4 [2]Bool4

// Bool3x2 is a boolean matrix with 3 columns and 2 rows.
type Bool3x2 [3]Bool2

// Bool3x3 is a boolean matrix with 3 columns and 3 rows.
type Bool3x3 [3]Bool3

// Bool3x4 is a boolean matrix with 3 columns and 4 rows.
type Bool3x4 [3]Bool4

// Bool4x2 is a boolean matrix with 4 columns and 2 rows.
type Bool4x2 [4]Bool2

// Bool4x3 is a boolean matrix with 4 columns and 3 rows.
type Bool4x3 [4]Bool3

// Bool4x4 is a boolean matrix with 4 columns and 4 rows.
type Bool4x4 [4]Bool4
