// SPDX-License-Identifier: MIT

package glm

import (
	"fmt"

	"github.com/katalvlaran/lvglm/matrix"
)

// Vector is the capability shared by every vector type: a fixed number of
// indexable components.
type Vector[T any] interface {
	Len() int
	Components() []T
}

// Matrix is the capability shared by every matrix type: a fixed column-major
// grid of components.
type Matrix[T any] interface {
	Cols() int
	Rows() int
	Grid() matrix.Grid[T]
}

// vectorPtr is satisfied by *D for the glm vector types with components T.
type vectorPtr[D, T any] interface {
	*D
	view() []T
}

// matrixPtr is satisfied by *D for the glm matrix types with components T.
type matrixPtr[D, T any] interface {
	*D
	view() matrix.Grid[T]
}

// must panics when a kernel rejects shapes that the static types guarantee
// to be compatible; reaching it means a generator bug, not a caller error.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("glm: internal shape error: %v", err))
	}
}

// componentAt returns c[i] or ErrOutOfRange.
func componentAt[T any](c []T, i int) (T, error) {
	if i < 0 || i >= len(c) {
		var zero T
		return zero, fmt.Errorf("glm: component %d of %d: %w", i, len(c), ErrOutOfRange)
	}

	return c[i], nil
}

// componentSet stores x in c[i] or returns ErrOutOfRange.
func componentSet[T any](c []T, i int, x T) error {
	if i < 0 || i >= len(c) {
		return fmt.Errorf("glm: component %d of %d: %w", i, len(c), ErrOutOfRange)
	}
	c[i] = x

	return nil
}
