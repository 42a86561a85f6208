// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the grid kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/stretchr/testify/require"
)

// MustGrid ALLOCATES a cols×rows grid or fails the test.
func MustGrid[T any](t testing.TB, cols, rows int) matrix.Grid[T] {
	t.Helper()
	g, err := matrix.NewGrid[T](cols, rows)
	require.NoError(t, err)

	return g
}

// FilledGrid builds a grid from column-major values (len == cols*rows).
func FilledGrid[T any](t testing.TB, cols, rows int, vals ...T) matrix.Grid[T] {
	t.Helper()
	require.Len(t, vals, cols*rows, "FilledGrid: value count")
	g := MustGrid[T](t, cols, rows)
	for i, v := range vals {
		require.NoError(t, g.SetIndex(i, v))
	}

	return g
}

// Flatten returns the grid's components in column-major order.
func Flatten[T any](g matrix.Grid[T]) []T {
	out := make([]T, 0, g.Len())
	for x := range g.Values() {
		out = append(out, x)
	}

	return out
}
