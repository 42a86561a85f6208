// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the grid kernels over every
// square shape of the closed set, using deterministic fills.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvglm/matrix"
	"github.com/katalvlaran/lvglm/scalar"
)

// benchSizes are the square shapes to benchmark.
var benchSizes = []int{2, 3, 4}

// sinks to defeat dead-code elimination
var (
	sinkG matrix.Grid[float64]
	sinkV []float64
	sinkF float64
)

// fillSeq writes 1, 2, 3, ... in column-major order (invertible once shifted).
func fillSeq(tb testing.TB, n int) matrix.Grid[float64] {
	tb.Helper()
	g := MustGrid[float64](tb, n, n)
	g.Apply(func(col, row int, _ float64) float64 {
		if col == row {
			return float64(n + col + 1)
		}

		return float64(col*n + row + 1)
	})

	return g
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := fillSeq(b, n), fillSeq(b, n)
			dst := MustGrid[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.Mul(dst, A, B); err != nil {
					b.Fatal(err)
				}
			}
			sinkG = dst
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillSeq(b, n)
			x := make([]float64, n)
			dst := make([]float64, n)
			for i := range x {
				x[i] = float64(i + 1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MulVec(dst, A, x); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = dst
		})
	}
}

func BenchmarkZipGrid(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := fillSeq(b, n), fillSeq(b, n)
			dst := MustGrid[float64](b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.ZipGrid(dst, A, B, scalar.Add[float64]); err != nil {
					b.Fatal(err)
				}
			}
			sinkG = dst
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillSeq(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkLength(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillSeq(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = matrix.Length(A...)
			}
		})
	}
}
