// SPDX-License-Identifier: MIT

package glm

import "github.com/katalvlaran/lvglm/scalar"

// Cross returns the cross product a x b.
func Cross[T scalar.Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Cross returns the cross product v x o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] { return Cross(v, o) }
