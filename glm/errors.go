// SPDX-License-Identifier: MIT
// Package glm: sentinel errors.
// Errors shared with the kernels are re-exported so callers only need to
// import glm; match them with errors.Is.

package glm

import (
	"errors"

	"github.com/katalvlaran/lvglm/matrix"
)

var (
	// ErrOutOfRange is returned by At/Set/AtIndex/SetIndex/Col/Row for an
	// index outside the type's fixed bounds.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrSingular is returned by Inverse when the matrix has no inverse.
	ErrSingular = matrix.ErrSingular

	// ErrSyntax is returned by the Parse family for malformed text or a
	// component count that does not match the destination shape.
	ErrSyntax = errors.New("glm: invalid syntax")
)
