// SPDX-License-Identifier: MIT

// Package matrix - Grid view (column-major) & safe accessors.
//
// Purpose:
//   - Give every kernel one shape-agnostic representation of a small matrix:
//     a slice of column slices, g[col][row].
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Fix the enumeration order once: column 0 top-to-bottom, then column 1.
//
// Complexity quicksheet:
//   - At/Set/AtIndex/SetIndex: O(1); Col/Row: O(r)/O(c); Clone/String: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // flat read
	ctxSetIndex = "SetIndex" // flat write
	ctxCol      = "Col"      // column extraction
	ctxRow      = "Row"      // row extraction
)

// ---------- Formatting literals  ----------
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Grid.<method>(col,row): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func gridErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, col, row, err)
}

// NewGrid allocates a zero-valued cols×rows Grid backed by one flat buffer.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation for callers that work
//     with runtime shapes (tooling, tests). The glm types never need it.
//
// Implementation:
//   - Stage 1: ValidateShape(cols, rows).
//   - Stage 2: allocate one contiguous buffer; slice it into columns.
//
// Errors:
//   - ErrBadShape when cols or rows is outside {2,3,4}.
//
// Complexity:
//   - Time O(c*r), Space O(c*r).
func NewGrid[T any](cols, rows int) (Grid[T], error) {
	if err := ValidateShape(cols, rows); err != nil {
		return nil, matrixErrorf("NewGrid", err)
	}
	buf := make([]T, cols*rows) // column-major: column c is buf[c*rows:(c+1)*rows]
	g := make(Grid[T], cols)
	for c := 0; c < cols; c++ {
		g[c] = buf[c*rows : (c+1)*rows : (c+1)*rows]
	}

	return g, nil
}

// Cols returns the column count. Complexity: O(1).
func (g Grid[T]) Cols() int { return len(g) }

// Rows returns the row count (length of column 0). Complexity: O(1).
func (g Grid[T]) Rows() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// Shape packs Cols() and Rows() into a single call for convenience.
func (g Grid[T]) Shape() (cols, rows int) { return g.Cols(), g.Rows() }

// Len returns the number of components, Cols()*Rows().
func (g Grid[T]) Len() int { return g.Cols() * g.Rows() }

// inBounds reports whether (col,row) addresses a cell.
func (g Grid[T]) inBounds(col, row int) bool {
	return col >= 0 && col < g.Cols() && row >= 0 && row < g.Rows()
}

// locate maps a flat column-major index to (col,row) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - this[i] == this[i / Rows, i % Rows] for 0 ≤ i < Cols*Rows.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g Grid[T]) locate(i int) (col, row int, err error) {
	rows := g.Rows()
	if i < 0 || i >= g.Len() {
		return 0, 0, ErrOutOfRange
	}

	return i / rows, i % rows, nil
}

// At returns the value at (col,row) or ErrOutOfRange.
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel wrapped with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g Grid[T]) At(col, row int) (T, error) {
	if !g.inBounds(col, row) {
		var zero T
		return zero, gridErrorf(ctxAt, col, row, ErrOutOfRange)
	}

	return g[col][row], nil
}

// Set stores x at (col,row) or returns ErrOutOfRange.
// Complexity: O(1).
func (g Grid[T]) Set(col, row int, x T) error {
	if !g.inBounds(col, row) {
		return gridErrorf(ctxSet, col, row, ErrOutOfRange)
	}
	g[col][row] = x // write through to the viewed storage

	return nil
}

// AtIndex returns the value at flat column-major index i.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (g Grid[T]) AtIndex(i int) (T, error) {
	col, row, err := g.locate(i)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Grid.%s(%d): %w", ctxAtIndex, i, err)
	}

	return g[col][row], nil
}

// SetIndex stores x at flat column-major index i.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (g Grid[T]) SetIndex(i int, x T) error {
	col, row, err := g.locate(i)
	if err != nil {
		return fmt.Errorf("Grid.%s(%d): %w", ctxSetIndex, i, err)
	}
	g[col][row] = x

	return nil
}

// Col copies column col into dst.
// Errors: ErrOutOfRange (col), ErrDimensionMismatch (len(dst) != Rows).
// Complexity: O(r).
func (g Grid[T]) Col(col int, dst []T) error {
	if col < 0 || col >= g.Cols() {
		return gridErrorf(ctxCol, col, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(dst, g.Rows()); err != nil {
		return gridErrorf(ctxCol, col, 0, err)
	}
	copy(dst, g[col])

	return nil
}

// Row copies row row into dst (one component per column).
// Errors: ErrOutOfRange (row), ErrDimensionMismatch (len(dst) != Cols).
// Complexity: O(c).
func (g Grid[T]) Row(row int, dst []T) error {
	if row < 0 || row >= g.Rows() {
		return gridErrorf(ctxRow, 0, row, ErrOutOfRange)
	}
	if err := ValidateVecLen(dst, g.Cols()); err != nil {
		return gridErrorf(ctxRow, 0, row, err)
	}
	for c := range g {
		dst[c] = g[c][row]
	}

	return nil
}

// Values yields every component in column-major order.
// The sequence is finite and restartable: each range re-reads the grid.
func (g Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, col := range g {
			for _, x := range col {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Values yields the elements of s in index order (flat vectors).
func Values[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s {
			if !yield(x) {
				return
			}
		}
	}
}

// Do visits each element (col,row) in column-major order and calls f.
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed col→row order.
//
// Complexity:
//   - Time O(c*r), Space O(1).
func (g Grid[T]) Do(f func(col, row int, x T) bool) {
	var c, r int
	for c = 0; c < len(g); c++ {
		for r = 0; r < len(g[c]); r++ {
			if !f(c, r, g[c][r]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(col,row,x) in place, column-major.
// Complexity: O(c*r).
func (g Grid[T]) Apply(f func(col, row int, x T) T) {
	var c, r int
	for c = 0; c < len(g); c++ {
		for r = 0; r < len(g[c]); r++ {
			g[c][r] = f(c, r, g[c][r])
		}
	}
}

// Clone returns a deep copy backed by a fresh contiguous buffer.
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Complexity:
//   - Time O(c*r), Space O(c*r).
func (g Grid[T]) Clone() Grid[T] {
	cols, rows := g.Shape()
	buf := make([]T, 0, cols*rows)
	out := make(Grid[T], cols)
	for c := range g {
		start := len(buf)
		buf = append(buf, g[c]...)
		out[c] = buf[start:len(buf):len(buf)]
	}

	return out
}

// String renders the grid as a list of columns: "((1, 0), (0, 1))".
// Not for hot paths; intended for logs and debugging.
func (g Grid[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for c, col := range g {
		if c > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtOpen)
		for r, x := range col {
			if r > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, x)
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
