// SPDX-License-Identifier: MIT
// Package main: code generation for the swizzle views and the glm types.
//
// Purpose:
//   - Expand the templates in templates.go over the closed shape set so the
//     per-shape method sets never drift apart.
//   - Take the letter table from swizzle.Sequences: only valid letter
//     combinations are ever emitted, so invalid swizzles do not compile.
//
// Determinism:
//   - Fixed loop orders (dimension, alphabet, length, lexicographic pattern;
//     columns before rows) make the output byte-stable across runs.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvglm/swizzle"
)

// ErrUnknownKind is returned for a -kind value other than the four below.
var ErrUnknownKind = errors.New("glmgen: unknown kind")

// Kinds of generated files.
const (
	kindViews    = "views"
	kindVectors  = "vectors"
	kindMatrices = "matrices"
	kindAliases  = "aliases"
)

// dims is the closed dimension set, in generation order.
var dims = []int{2, 3, 4}

// minViewLen is the shortest view pattern; single letters are generated as
// direct accessors on the vector types instead.
const minViewLen = 2

// op is one row of an operator table: the method name, the scalar function
// it applies and the expression shown in its doc comment. Expr holds one %s
// for the receiver name.
type op struct {
	Name, Fn, Expr string
}

var (
	numBinOps = []op{
		{"Add", "Add", "%s + o"},
		{"Sub", "Sub", "%s - o"},
		{"CompMul", "Mul", "%s * o"},
		{"CompDiv", "Div", "%s / o"},
		{"Min", "Min", "min(%s, o)"},
		{"Max", "Max", "max(%s, o)"},
	}
	numScalarOps = []op{
		{"AddScalar", "Add", "%s + s"},
		{"SubScalar", "Sub", "%s - s"},
		{"MulScalar", "Mul", "%s * s"},
		{"DivScalar", "Div", "%s / s"},
	}
	numRScalarOps = []op{
		{"RSub", "Sub", "s - %s"},
		{"RDiv", "Div", "s / %s"},
	}
	numUnaryOps = []op{
		{"Neg", "Neg", "-%s"},
		{"Abs", "Abs", "|%s|"},
	}
	numCmpOps = []op{
		{"Less", "Less", "%s < o"},
		{"LessEqual", "LessEqual", "%s <= o"},
		{"Greater", "Greater", "%s > o"},
		{"GreaterEqual", "GreaterEqual", "%s >= o"},
		{"EqualTo", "Equal", "%s == o"},
		{"NotEqualTo", "NotEqual", "%s != o"},
	}
	numCmpScalarOps = []op{
		{"LessScalar", "Less", "%s < s"},
		{"LessEqualScalar", "LessEqual", "%s <= s"},
		{"GreaterScalar", "Greater", "%s > s"},
		{"GreaterEqualScalar", "GreaterEqual", "%s >= s"},
		{"EqualToScalar", "Equal", "%s == s"},
		{"NotEqualToScalar", "NotEqual", "%s != s"},
	}
	boolBinOps = []op{
		{"And", "And", "%s && o"},
		{"Or", "Or", "%s || o"},
		{"Xor", "Xor", "%s != o"},
	}
	boolScalarOps = []op{
		{"AndScalar", "And", "%s && s"},
		{"OrScalar", "Or", "%s || s"},
	}
	boolUnaryOps = []op{
		{"Not", "Not", "!%s"},
	}
	boolCmpOps = []op{
		{"EqualTo", "Equal", "%s == o"},
		{"NotEqualTo", "NotEqual", "%s != o"},
	}
)

// reduction is one row of a reduction table; Doc completes the sentence
// "// <Name> ...".
type reduction struct {
	Name, Fn, Ret, Doc string
}

var (
	numReductions = []reduction{
		{"Sum", "Sum", "T", "returns the sum of all components."},
		{"MinElement", "MinElement", "T", "returns the smallest component."},
		{"MaxElement", "MaxElement", "T", "returns the largest component."},
		{"LengthSqr", "LengthSqr", "T", "returns the sum of squared components, in T."},
		{"Length", "Length", "float64", "returns the Euclidean length, computed in float64."},
		{"Norm", "Norm", "float64", "is the Euclidean norm; same as Length."},
		{"Norm1", "Norm1", "float64", "returns the sum of absolute components (L1 norm)."},
		{"Norm2", "Norm2", "float64", "is the Euclidean (L2) norm; same as Length."},
		{"NormMax", "NormMax", "float64", "returns the largest absolute component (max norm)."},
	}
	boolReductions = []reduction{
		{"All", "All", "bool", "reports whether every component is true."},
		{"Any", "Any", "bool", "reports whether at least one component is true."},
		{"MinElement", "All", "bool", "is the AND fold over all components; same as All."},
		{"MaxElement", "Any", "bool", "is the OR fold over all components; same as Any."},
	}
)

// domain is a scalar domain that gets type aliases.
type domain struct {
	Prefix, Elem string
}

var aliasDomains = []domain{
	{"Float", "float32"},
	{"Double", "float64"},
	{"Int", "int32"},
	{"Long", "int64"},
}

// generator accumulates the output of one file.
type generator struct {
	buf bytes.Buffer
}

// emit expands tmpl with the given token/value pairs and appends it.
func (g *generator) emit(tmpl string, kv ...string) {
	g.buf.WriteString(strings.NewReplacer(kv...).Replace(tmpl))
}

// generate returns the gofmt-formatted source of the given kind.
func generate(kind string) ([]byte, error) {
	var (
		g   generator
		err error
	)
	switch kind {
	case kindViews:
		err = g.views()
	case kindVectors:
		err = g.vectors()
	case kindMatrices:
		g.matrices()
	case kindAliases:
		g.aliases()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("glmgen: format %s: %w", kind, err)
	}

	return src, nil
}

// views emits one getter per pattern of length 2..4 and one setter per
// distinct pattern, for every source length and both alphabets.
func (g *generator) views() error {
	g.emit(viewsHeaderTmpl)
	for _, n := range dims {
		var setters []swizzle.Pattern
		for _, a := range swizzle.Alphabets {
			for length := minViewLen; length <= swizzle.MaxLen; length++ {
				seq, err := swizzle.Sequences(n, length, a)
				if err != nil {
					return err
				}
				for _, p := range seq {
					g.emit(viewGetTmpl,
						"{N}", strconv.Itoa(n),
						"{Name}", p.Method(),
						"{L}", strconv.Itoa(p.Len()),
						"{Lit}", viewLiteral(p))
					if p.Distinct() {
						setters = append(setters, p)
					}
				}
			}
		}
		for _, p := range setters {
			g.emit(viewSetTmpl,
				"{N}", strconv.Itoa(n),
				"{Name}", p.Setter(),
				"{L}", strconv.Itoa(p.Len()),
				"{Assign}", viewAssign(p))
		}
	}

	return nil
}

// viewLiteral renders the getter body, e.g. V3{s.c[0], s.c[2], s.c[1]}.
func viewLiteral(p swizzle.Pattern) string {
	parts := make([]string, p.Len())
	for i, idx := range p.Index {
		parts[i] = fmt.Sprintf("s.c[%d]", idx)
	}

	return fmt.Sprintf("V%d{%s}", p.Len(), strings.Join(parts, ", "))
}

// viewAssign renders the setter body, one assignment per letter.
func viewAssign(p swizzle.Pattern) string {
	var b strings.Builder
	for i, idx := range p.Index {
		fmt.Fprintf(&b, "\ts.p[%d] = v[%d]\n", idx, i)
	}

	return b.String()
}

// vecNames returns the tokens shared by every template of one vector type.
func vecNames(n int, isBool bool) []string {
	self, elem, bvec, unmarshal := fmt.Sprintf("Vec%d[T]", n), "T", fmt.Sprintf("Bool%d", n), "unmarshalVec"
	v2, v3, v4 := "Vec2[T]", "Vec3[T]", "Vec4[T]"
	if isBool {
		self, elem, unmarshal = bvec, "bool", "unmarshalBoolVec"
		v2, v3, v4 = "Bool2", "Bool3", "Bool4"
	}

	return []string{
		"{Self}", self,
		"{Elem}", elem,
		"{Bool}", bvec,
		"{N}", strconv.Itoa(n),
		"{V2}", v2,
		"{V3}", v3,
		"{V4}", v4,
		"{Unmarshal}", unmarshal,
	}
}

// with appends extra token/value pairs to a copy of base.
func with(base []string, kv ...string) []string {
	out := make([]string, 0, len(base)+len(kv))
	out = append(out, base...)

	return append(out, kv...)
}

// emitOps expands tmpl once per table row.
func (g *generator) emitOps(tmpl string, names []string, recv, inst string, ops []op) {
	for _, o := range ops {
		g.emit(tmpl, with(names,
			"{Op}", o.Name,
			"{Fn}", o.Fn,
			"{Expr}", fmt.Sprintf(o.Expr, recv),
			"{Inst}", inst)...)
	}
}

// emitReductions expands tmpl once per reduction row.
func (g *generator) emitReductions(tmpl string, names []string, rs []reduction) {
	for _, r := range rs {
		g.emit(tmpl, with(names,
			"{Op}", r.Name,
			"{Fn}", r.Fn,
			"{Ret}", r.Ret,
			"{Doc}", r.Doc)...)
	}
}

// vectors emits the method sets of Vec2..4 and Bool2..4.
func (g *generator) vectors() error {
	g.emit(vectorsHeaderTmpl)
	for _, isBool := range []bool{false, true} {
		for _, n := range dims {
			names := vecNames(n, isBool)
			g.emit(vecCoreTmpl, names...)
			for _, a := range swizzle.Alphabets {
				letters, err := swizzle.Sequences(n, 1, a)
				if err != nil {
					return err
				}
				for _, p := range letters {
					g.emit(vecLetterTmpl, with(names,
						"{L}", p.Method(),
						"{I}", strconv.Itoa(p.Index[0]))...)
				}
			}
			if isBool {
				g.emitOps(vecBinTmpl, names, "v", "", boolBinOps)
				g.emitOps(vecScalarTmpl, names, "v", "", boolScalarOps)
				g.emitOps(vecUnaryTmpl, names, "v", "", boolUnaryOps)
				g.emitOps(vecCmpTmpl, names, "v", "", boolCmpOps)
				g.emitReductions(vecRedTmpl, names, boolReductions)
				continue
			}
			g.emitOps(vecBinTmpl, names, "v", "[T]", numBinOps)
			g.emitOps(vecScalarTmpl, names, "v", "[T]", numScalarOps)
			g.emitOps(vecRScalarTmpl, names, "v", "[T]", numRScalarOps)
			g.emitOps(vecUnaryTmpl, names, "v", "[T]", numUnaryOps)
			g.emitOps(vecCmpTmpl, names, "v", "", numCmpOps)
			g.emitOps(vecCmpScalarTmpl, names, "v", "", numCmpScalarOps)
			g.emitReductions(vecRedTmpl, names, numReductions)
			g.emit(vecNumericTmpl, names...)
		}
	}

	return nil
}

// matNames returns the tokens shared by every template of one matrix type.
func matNames(c, r int, isBool bool) []string {
	typ := func(cols, rows int) string {
		if isBool {
			return fmt.Sprintf("Bool%dx%d", cols, rows)
		}
		return fmt.Sprintf("Mat%dx%d[T]", cols, rows)
	}
	vec := func(n int) string {
		if isBool {
			return fmt.Sprintf("Bool%d", n)
		}
		return fmt.Sprintf("Vec%d[T]", n)
	}
	elem, unmarshal := "T", "unmarshalMat"
	if isBool {
		elem, unmarshal = "bool", "unmarshalBoolMat"
	}

	cols := make([]string, c)
	for i := range cols {
		cols[i] = fmt.Sprintf("m[%d][:]", i)
	}

	return []string{
		"{Self}", typ(c, r),
		"{Elem}", elem,
		"{Bool}", fmt.Sprintf("Bool%dx%d", c, r),
		"{C}", strconv.Itoa(c),
		"{R}", strconv.Itoa(r),
		"{Len}", strconv.Itoa(c * r),
		"{ColV}", vec(r),
		"{RowV}", vec(c),
		"{Tr}", typ(r, c),
		"{ViewLit}", fmt.Sprintf("matrix.Grid[%s]{%s}", elem, strings.Join(cols, ", ")),
		"{Unmarshal}", unmarshal,
	}
}

// matrices emits the method sets of Mat2x2..Mat4x4 and Bool2x2..Bool4x4.
func (g *generator) matrices() {
	g.emit(matricesHeaderTmpl)
	for _, isBool := range []bool{false, true} {
		for _, c := range dims {
			for _, r := range dims {
				names := matNames(c, r, isBool)
				g.emit(matCoreTmpl, names...)
				if isBool {
					g.emitOps(matBinTmpl, names, "m", "", boolBinOps)
					g.emitOps(matScalarTmpl, names, "m", "", boolScalarOps)
					g.emitOps(matUnaryTmpl, names, "m", "", boolUnaryOps)
					g.emitOps(matCmpTmpl, names, "m", "", boolCmpOps)
					g.emitReductions(matRedTmpl, names, boolReductions)
					continue
				}
				g.emitOps(matBinTmpl, names, "m", "[T]", numBinOps)
				g.emitOps(matScalarTmpl, names, "m", "[T]", numScalarOps)
				g.emitOps(matRScalarTmpl, names, "m", "[T]", numRScalarOps)
				g.emitOps(matUnaryTmpl, names, "m", "[T]", numUnaryOps)
				g.emitOps(matCmpTmpl, names, "m", "", numCmpOps)
				g.emitOps(matCmpScalarTmpl, names, "m", "", numCmpScalarOps)
				g.emitReductions(matRedTmpl, names, numReductions)
				g.emit(matNumericTmpl, names...)
				for _, k := range dims {
					g.emit(matMulTmpl, with(names,
						"{K}", strconv.Itoa(k),
						"{Arg}", fmt.Sprintf("Mat%dx%d[T]", k, c),
						"{Res}", fmt.Sprintf("Mat%dx%d[T]", k, r))...)
				}
				if c == r {
					g.emit(matSquareTmpl, names...)
				}
			}
		}
	}
}

// aliases emits the named domain types (Float3, Int4x4, ...).
func (g *generator) aliases() {
	g.emit(aliasesHeaderTmpl)
	for _, d := range aliasDomains {
		for _, n := range dims {
			g.emit(aliasTmpl,
				"{Alias}", fmt.Sprintf("%s%d", d.Prefix, n),
				"{Desc}", fmt.Sprintf("%d-component %s vector", n, d.Elem),
				"{Target}", fmt.Sprintf("Vec%d[%s]", n, d.Elem))
		}
		for _, c := range dims {
			for _, r := range dims {
				g.emit(aliasTmpl,
					"{Alias}", fmt.Sprintf("%s%dx%d", d.Prefix, c, r),
					"{Desc}", fmt.Sprintf("%s matrix with %d columns and %d rows", d.Elem, c, r),
					"{Target}", fmt.Sprintf("Mat%dx%d[%s]", c, r, d.Elem))
			}
		}
	}
}
