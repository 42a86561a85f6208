// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every kernel.
// This file intentionally contains ONLY the Grid view and the dimension
// bounds. Errors and validators live in dedicated files (errors.go,
// validators.go).
package matrix

// Dimension bounds of the closed shape set. Vectors have MinDim..MaxDim
// components; matrices have MinDim..MaxDim columns and rows.
const (
	MinDim = 2
	MaxDim = 4
)

// Grid is a column-major view over a small matrix: g[col][row].
//   - len(g) is the column count; every column has the same length (rows).
//   - Storage order is fixed: flat index i maps to (i / Rows, i % Rows).
//   - A Grid does not own memory: the glm types hand out views over their
//     own arrays, so writes through a Grid land in the viewed value.
//
// Complexity notes: all accessors are O(1); Clone/String/Values are O(c*r).
type Grid[T any] [][]T
