// SPDX-License-Identifier: MIT

package main

// Templates are plain text with {Token} placeholders, expanded by
// strings.NewReplacer in a single pass. Every function template starts
// with a newline so consecutive expansions are separated by a blank line.

const viewsHeaderTmpl = `// Code generated by glmgen; DO NOT EDIT.

package swizzle
`

const viewGetTmpl = `
func (s View{N}[T, V2, V3, V4]) {Name}() V{L} {
	return {Lit}
}
`

const viewSetTmpl = `
func (s Ref{N}[T, V2, V3, V4]) {Name}(v V{L}) {
{Assign}}
`

const vectorsHeaderTmpl = `// Code generated by glmgen; DO NOT EDIT.

package glm

import (
	"iter"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
	"github.com/katalvlaran/lvglm/swizzle"
)
`

const vecCoreTmpl = `
// Len returns {N}.
func (v {Self}) Len() int {
	return {N}
}

// Components returns the components as a new slice.
func (v {Self}) Components() []{Elem} {
	return v[:]
}

func (v *{Self}) view() []{Elem} {
	return v[:]
}

// At returns component i or ErrOutOfRange.
func (v {Self}) At(i int) ({Elem}, error) {
	return componentAt(v[:], i)
}

// Set stores x in component i or returns ErrOutOfRange.
func (v *{Self}) Set(i int, x {Elem}) error {
	return componentSet(v[:], i, x)
}

// Values yields the components in index order.
func (v {Self}) Values() iter.Seq[{Elem}] {
	return matrix.Values(v[:])
}

// String formats v as "(x, y, ...)".
func (v {Self}) String() string {
	return FormatVector(v[:])
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (v {Self}) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the String form.
func (v *{Self}) UnmarshalText(text []byte) error {
	return {Unmarshal}(v[:], string(text))
}

// Equal reports whether v and o have equal components.
func (v {Self}) Equal(o {Self}) bool {
	return v == o
}

// Swizzle returns a read view over a copy of v, e.g. v.Swizzle().YX().
func (v {Self}) Swizzle() swizzle.View{N}[{Elem}, {V2}, {V3}, {V4}] {
	return swizzle.New{N}[{Elem}, {V2}, {V3}, {V4}](v)
}

// SwizzleRef returns a write view into v, e.g. v.SwizzleRef().SetYX(w).
func (v *{Self}) SwizzleRef() swizzle.Ref{N}[{Elem}, {V2}, {V3}, {V4}] {
	return swizzle.NewRef{N}[{Elem}, {V2}, {V3}, {V4}]((*[{N}]{Elem})(v))
}
`

const vecLetterTmpl = `
// {L} returns component {I}.
func (v {Self}) {L}() {Elem} {
	return v[{I}]
}

// Set{L} stores x in component {I}.
func (v *{Self}) Set{L}(x {Elem}) {
	v[{I}] = x
}
`

const vecBinTmpl = `
// {Op} returns {Expr} per component.
func (v {Self}) {Op}(o {Self}) {Self} {
	var r {Self}
	must(matrix.Zip(r[:], v[:], o[:], scalar.{Fn}{Inst}))
	return r
}
`

const vecScalarTmpl = `
// {Op} returns {Expr} per component.
func (v {Self}) {Op}(s {Elem}) {Self} {
	var r {Self}
	must(matrix.ZipScalar(r[:], v[:], s, scalar.{Fn}{Inst}))
	return r
}
`

const vecRScalarTmpl = `
// {Op} returns {Expr} per component.
func (v {Self}) {Op}(s {Elem}) {Self} {
	var r {Self}
	must(matrix.ScalarZip(r[:], s, v[:], scalar.{Fn}{Inst}))
	return r
}
`

const vecUnaryTmpl = `
// {Op} returns {Expr} per component.
func (v {Self}) {Op}() {Self} {
	var r {Self}
	must(matrix.Map(r[:], v[:], scalar.{Fn}{Inst}))
	return r
}
`

const vecCmpTmpl = `
// {Op} returns {Expr} per component.
func (v {Self}) {Op}(o {Self}) {Bool} {
	var r {Bool}
	must(matrix.Zip(r[:], v[:], o[:], scalar.{Fn}[{Elem}]))
	return r
}
`

const vecCmpScalarTmpl = `
// {Op} returns {Expr} per component.
func (v {Self}) {Op}(s {Elem}) {Bool} {
	var r {Bool}
	must(matrix.ZipScalar(r[:], v[:], s, scalar.{Fn}[{Elem}]))
	return r
}
`

const vecRedTmpl = `
// {Op} {Doc}
func (v {Self}) {Op}() {Ret} {
	return matrix.{Fn}(v[:])
}
`

const vecNumericTmpl = `
// NormP returns the p-norm (sum |x|^p)^(1/p), computed in float64.
func (v {Self}) NormP(p float64) float64 {
	return matrix.NormP(p, v[:])
}

// Dot returns the dot product of v and o in T.
func (v {Self}) Dot(o {Self}) T {
	d, err := matrix.Dot(v[:], o[:])
	must(err)
	return d
}

// Clamp limits every component to the range [lo, hi].
func (v {Self}) Clamp(lo, hi {Self}) {Self} {
	return v.Max(lo).Min(hi)
}

// Lerp interpolates per component from v (t = 0) to o (t = 1).
// Integral domains truncate toward zero.
func (v {Self}) Lerp(o {Self}, t float64) {Self} {
	var r {Self}
	must(matrix.Zip(r[:], v[:], o[:], func(a, b T) T {
		return scalar.Lerp(a, b, t)
	}))
	return r
}

// Distance returns the Euclidean distance between v and o.
func (v {Self}) Distance(o {Self}) float64 {
	return v.Sub(o).Length()
}

// DistanceSqr returns the squared distance between v and o in T.
func (v {Self}) DistanceSqr(o {Self}) T {
	return v.Sub(o).LengthSqr()
}

// Normalized returns v divided by its length; integral domains truncate
// toward zero. The zero vector is returned unchanged.
func (v {Self}) Normalized() {Self} {
	l := v.Length()
	if l == 0 {
		return v
	}
	var r {Self}
	must(matrix.Map(r[:], v[:], func(x T) T {
		return T(float64(x) / l)
	}))
	return r
}
`

const matricesHeaderTmpl = `// Code generated by glmgen; DO NOT EDIT.

package glm

import (
	"iter"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
)
`

const matCoreTmpl = `
// Cols returns {C}.
func (m {Self}) Cols() int {
	return {C}
}

// Rows returns {R}.
func (m {Self}) Rows() int {
	return {R}
}

// Len returns the component count, {Len}.
func (m {Self}) Len() int {
	return {Len}
}

// Grid returns a column-major view over a copy of m.
func (m {Self}) Grid() matrix.Grid[{Elem}] {
	return m.view()
}

func (m *{Self}) view() matrix.Grid[{Elem}] {
	return {ViewLit}
}

// At returns the component at (col, row) or ErrOutOfRange.
func (m {Self}) At(col, row int) ({Elem}, error) {
	return m.view().At(col, row)
}

// Set stores x at (col, row) or returns ErrOutOfRange.
func (m *{Self}) Set(col, row int, x {Elem}) error {
	return m.view().Set(col, row, x)
}

// AtIndex returns the component at flat column-major index i or ErrOutOfRange.
func (m {Self}) AtIndex(i int) ({Elem}, error) {
	return m.view().AtIndex(i)
}

// SetIndex stores x at flat column-major index i or returns ErrOutOfRange.
func (m *{Self}) SetIndex(i int, x {Elem}) error {
	return m.view().SetIndex(i, x)
}

// Col returns column i or ErrOutOfRange.
func (m {Self}) Col(i int) ({ColV}, error) {
	var r {ColV}
	err := m.view().Col(i, r[:])
	return r, err
}

// Row returns row i or ErrOutOfRange.
func (m {Self}) Row(i int) ({RowV}, error) {
	var r {RowV}
	err := m.view().Row(i, r[:])
	return r, err
}

// Values yields the components in column-major order.
func (m {Self}) Values() iter.Seq[{Elem}] {
	return m.view().Values()
}

// String formats m as a list of columns, "((m00, m01, ...), (m10, ...))".
func (m {Self}) String() string {
	return FormatMatrix(m.view())
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (m {Self}) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the String form.
func (m *{Self}) UnmarshalText(text []byte) error {
	return {Unmarshal}(m.view(), string(text))
}

// Equal reports whether m and o have equal components.
func (m {Self}) Equal(o {Self}) bool {
	return m == o
}

// Transposed returns the {R}x{C} matrix with rows and columns swapped.
func (m {Self}) Transposed() {Tr} {
	var r {Tr}
	must(matrix.Transpose(r.view(), m.view()))
	return r
}
`

const matBinTmpl = `
// {Op} returns {Expr} per component.
func (m {Self}) {Op}(o {Self}) {Self} {
	var r {Self}
	must(matrix.ZipGrid(r.view(), m.view(), o.view(), scalar.{Fn}{Inst}))
	return r
}
`

const matScalarTmpl = `
// {Op} returns {Expr} per component.
func (m {Self}) {Op}(s {Elem}) {Self} {
	var r {Self}
	must(matrix.ZipScalarGrid(r.view(), m.view(), s, scalar.{Fn}{Inst}))
	return r
}
`

const matRScalarTmpl = `
// {Op} returns {Expr} per component.
func (m {Self}) {Op}(s {Elem}) {Self} {
	var r {Self}
	must(matrix.ScalarZipGrid(r.view(), s, m.view(), scalar.{Fn}{Inst}))
	return r
}
`

const matUnaryTmpl = `
// {Op} returns {Expr} per component.
func (m {Self}) {Op}() {Self} {
	var r {Self}
	must(matrix.MapGrid(r.view(), m.view(), scalar.{Fn}{Inst}))
	return r
}
`

const matCmpTmpl = `
// {Op} returns {Expr} per component.
func (m {Self}) {Op}(o {Self}) {Bool} {
	var r {Bool}
	must(matrix.ZipGrid(r.view(), m.view(), o.view(), scalar.{Fn}[{Elem}]))
	return r
}
`

const matCmpScalarTmpl = `
// {Op} returns {Expr} per component.
func (m {Self}) {Op}(s {Elem}) {Bool} {
	var r {Bool}
	must(matrix.ZipScalarGrid(r.view(), m.view(), s, scalar.{Fn}[{Elem}]))
	return r
}
`

const matRedTmpl = `
// {Op} {Doc}
func (m {Self}) {Op}() {Ret} {
	return matrix.{Fn}(m.view()...)
}
`

const matNumericTmpl = `
// NormP returns the p-norm (sum |x|^p)^(1/p) over all components, in float64.
func (m {Self}) NormP(p float64) float64 {
	return matrix.NormP(p, m.view()...)
}

// MulVec returns the product m * v: one input component per column, one
// output component per row.
func (m {Self}) MulVec(v {RowV}) {ColV} {
	var r {ColV}
	must(matrix.MulVec(r[:], m.view(), v[:]))
	return r
}
`

const matMulTmpl = `
// MulMat{K}x{C} returns the matrix product m * o.
func (m {Self}) MulMat{K}x{C}(o {Arg}) {Res} {
	var r {Res}
	must(matrix.Mul(r.view(), m.view(), o.view()))
	return r
}
`

const matSquareTmpl = `
// Trace returns the sum of the diagonal.
func (m {Self}) Trace() T {
	t, err := matrix.Trace(m.view())
	must(err)
	return t
}

// Determinant returns det(m), computed in float64.
func (m {Self}) Determinant() float64 {
	d, err := matrix.Determinant(m.view())
	must(err)
	return d
}

// Inverse returns the inverse of m or ErrSingular. The elimination runs in
// float64 and integral domains truncate each cell toward zero, so a
// nonsingular integer matrix may invert to zeros: the inverse of
// Int2x2{{2, 0}, {0, 2}} is the zero matrix. Use a float domain when the
// exact inverse is needed.
func (m {Self}) Inverse() ({Self}, error) {
	var r {Self}
	if err := matrix.Inverse(r.view(), m.view()); err != nil {
		return {Self}{}, err
	}
	return r, nil
}
`

const aliasesHeaderTmpl = `// Code generated by glmgen; DO NOT EDIT.

package glm
`

const aliasTmpl = `
// {Alias} is a {Desc}.
type {Alias} = {Target}
`
