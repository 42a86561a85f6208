// SPDX-License-Identifier: MIT
// Package glm - text form of vectors and matrices.
//
// Public API (this file):
//   - FormatVector, FormatMatrix: render with the configured brackets,
//     separator and verb.
//   - ParseVec, ParseMat, ParseBoolVec, ParseBoolMat: parse the same form
//     back into a glm type chosen by the type argument.
//
// Parsing contract:
//   - The component (column) count must match the destination shape
//     exactly; anything else is ErrSyntax.
//   - Integer domains reject values that do not fit T.
//   - On error the destination is never partially written.

package glm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
)

// FormatVector renders components as open + c0 sep c1 ... + close.
func FormatVector[T any](c []T, opts ...Option) string {
	return formatList(c, gatherOptions(opts))
}

// FormatMatrix renders a grid as a bracketed list of bracketed columns.
func FormatMatrix[T any](g matrix.Grid[T], opts ...Option) string {
	o := gatherOptions(opts)
	var b strings.Builder
	b.WriteString(o.open)
	for c, col := range g {
		if c > 0 {
			b.WriteString(o.separator)
		}
		b.WriteString(formatList(col, o))
	}
	b.WriteString(o.close)

	return b.String()
}

// formatList renders one bracketed list.
func formatList[T any](c []T, o Options) string {
	var b strings.Builder
	b.WriteString(o.open)
	for i, x := range c {
		if i > 0 {
			b.WriteString(o.separator)
		}
		fmt.Fprintf(&b, o.verb, x)
	}
	b.WriteString(o.close)

	return b.String()
}

// ParseVec parses the FormatVector form into the vector type D.
// Example: glm.ParseVec[glm.Float3, float32]("(1, 2, 3)").
// Errors: ErrSyntax.
func ParseVec[D any, T scalar.Number, PD vectorPtr[D, T]](s string, opts ...Option) (D, error) {
	var dst D
	if err := decodeVec(PD(&dst).view(), s, parseNumber[T], gatherOptions(opts)); err != nil {
		var zero D
		return zero, err
	}

	return dst, nil
}

// ParseBoolVec parses "(true, false, ...)" into the boolean vector type D.
func ParseBoolVec[D any, PD vectorPtr[D, bool]](s string, opts ...Option) (D, error) {
	var dst D
	if err := decodeVec(PD(&dst).view(), s, strconv.ParseBool, gatherOptions(opts)); err != nil {
		var zero D
		return zero, err
	}

	return dst, nil
}

// ParseMat parses the FormatMatrix form (a list of columns) into the matrix
// type D. Errors: ErrSyntax.
func ParseMat[D any, T scalar.Number, PD matrixPtr[D, T]](s string, opts ...Option) (D, error) {
	var dst D
	if err := decodeMat(PD(&dst).view(), s, parseNumber[T], gatherOptions(opts)); err != nil {
		var zero D
		return zero, err
	}

	return dst, nil
}

// ParseBoolMat parses a list of boolean columns into the matrix type D.
func ParseBoolMat[D any, PD matrixPtr[D, bool]](s string, opts ...Option) (D, error) {
	var dst D
	if err := decodeMat(PD(&dst).view(), s, strconv.ParseBool, gatherOptions(opts)); err != nil {
		var zero D
		return zero, err
	}

	return dst, nil
}

// Targets of the generated UnmarshalText methods (default options).

func unmarshalVec[T scalar.Number](dst []T, s string) error {
	return decodeVec(dst, s, parseNumber[T], gatherOptions(nil))
}

func unmarshalBoolVec(dst []bool, s string) error {
	return decodeVec(dst, s, strconv.ParseBool, gatherOptions(nil))
}

func unmarshalMat[T scalar.Number](dst matrix.Grid[T], s string) error {
	return decodeMat(dst, s, parseNumber[T], gatherOptions(nil))
}

func unmarshalBoolMat(dst matrix.Grid[bool], s string) error {
	return decodeMat(dst, s, strconv.ParseBool, gatherOptions(nil))
}

// syntaxErrorf wraps ErrSyntax (and an optional cause) with the input.
func syntaxErrorf(s, why string, cause error) error {
	if cause != nil {
		return fmt.Errorf("glm: parse %q: %s: %w: %w", s, why, ErrSyntax, cause)
	}

	return fmt.Errorf("glm: parse %q: %s: %w", s, why, ErrSyntax)
}

// decodeVec parses one bracketed list into dst; dst is written only on success.
func decodeVec[T any](dst []T, s string, parse func(string) (T, error), o Options) error {
	vals, err := parseList(s, len(dst), parse, o)
	if err != nil {
		return err
	}
	copy(dst, vals)

	return nil
}

// decodeMat parses a bracketed list of columns into dst; dst is written
// only on success.
func decodeMat[T any](dst matrix.Grid[T], s string, parse func(string) (T, error), o Options) error {
	inner, err := unwrap(s, o)
	if err != nil {
		return err
	}
	groups, err := splitGroups(inner, o)
	if err != nil {
		return syntaxErrorf(s, err.Error(), nil)
	}
	if len(groups) != dst.Cols() {
		return syntaxErrorf(s, fmt.Sprintf("want %d columns, got %d", dst.Cols(), len(groups)), nil)
	}

	cols := make([][]T, len(groups))
	for c, grp := range groups {
		if cols[c], err = parseList(grp, dst.Rows(), parse, o); err != nil {
			return err
		}
	}
	for c := range dst {
		copy(dst[c], cols[c])
	}

	return nil
}

// parseList parses exactly n components from one bracketed list.
func parseList[T any](s string, n int, parse func(string) (T, error), o Options) ([]T, error) {
	inner, err := unwrap(s, o)
	if err != nil {
		return nil, err
	}
	fields := splitFields(inner, o)
	if len(fields) != n {
		return nil, syntaxErrorf(s, fmt.Sprintf("want %d components, got %d", n, len(fields)), nil)
	}

	out := make([]T, n)
	for i, f := range fields {
		if out[i], err = parse(f); err != nil {
			return nil, syntaxErrorf(s, fmt.Sprintf("component %d", i), err)
		}
	}

	return out, nil
}

// unwrap strips the surrounding brackets (and whitespace) from s.
func unwrap(s string, o Options) (string, error) {
	t := strings.TrimSpace(s)
	if len(t) < len(o.open)+len(o.close) || !strings.HasPrefix(t, o.open) || !strings.HasSuffix(t, o.close) {
		return "", syntaxErrorf(s, "missing brackets", nil)
	}

	return t[len(o.open) : len(t)-len(o.close)], nil
}

// splitFields splits the inside of a list on the separator. An
// all-whitespace separator splits on runs of whitespace.
func splitFields(s string, o Options) []string {
	sep := strings.TrimSpace(o.separator)
	if sep == "" {
		return strings.Fields(s)
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// splitGroups splits the inside of a column list into bracketed columns.
func splitGroups(s string, o Options) ([]string, error) {
	sep := strings.TrimSpace(o.separator)
	rest := strings.TrimSpace(s)
	var groups []string
	for rest != "" {
		if !strings.HasPrefix(rest, o.open) {
			return nil, fmt.Errorf("column %d: missing %q", len(groups), o.open)
		}
		end := strings.Index(rest[len(o.open):], o.close)
		if end < 0 {
			return nil, fmt.Errorf("column %d: missing %q", len(groups), o.close)
		}
		end += len(o.open) + len(o.close)
		groups = append(groups, rest[:end])
		rest = strings.TrimSpace(rest[end:])
		if rest == "" || sep == "" {
			continue
		}
		if !strings.HasPrefix(rest, sep) {
			return nil, fmt.Errorf("column %d: missing separator", len(groups))
		}
		rest = strings.TrimSpace(rest[len(sep):])
		if rest == "" {
			return nil, fmt.Errorf("trailing separator")
		}
	}

	return groups, nil
}

// parseNumber parses one component of a numeric domain, rejecting values
// that do not fit T (float32 overflow included).
func parseNumber[T scalar.Number](s string) (T, error) {
	if !scalar.IsIntegral[T]() {
		f, err := strconv.ParseFloat(s, scalar.BitSize[T]())
		if err != nil {
			return 0, err
		}
		return T(f), nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if int64(T(i)) != i || (i < 0) != (T(i) < 0) {
			return 0, fmt.Errorf("%s: %w", s, strconv.ErrRange)
		}
		return T(i), nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if uint64(T(u)) != u || T(u) < 0 {
		return 0, fmt.Errorf("%s: %w", s, strconv.ErrRange)
	}

	return T(u), nil
}
