// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvglm/matrix"
)

// ExampleResize shows the identity-fill rule: a 2x2 grid grown to 3x3 keeps
// its overlap and gains a 1 on the new diagonal cell.
func ExampleResize() {
	src, _ := matrix.NewGrid[int](2, 2)
	_ = src.Set(0, 0, 5)
	_ = src.Set(1, 0, 6)
	_ = src.Set(0, 1, 7)
	_ = src.Set(1, 1, 8)

	dst, _ := matrix.NewGrid[int](3, 3)
	matrix.Resize(dst, src, 0, 1)
	fmt.Println(dst)

	// Output:
	// ((5, 7, 0), (6, 8, 0), (0, 0, 1))
}

// ExampleProduct multiplies a 3-column, 2-row grid by a 2-column, 3-row grid.
func ExampleProduct() {
	a, _ := matrix.NewGrid[int](3, 2)
	for i, v := range []int{1, 4, 2, 5, 3, 6} {
		_ = a.SetIndex(i, v)
	}
	b, _ := matrix.NewGrid[int](2, 3)
	for i, v := range []int{7, 9, 11, 8, 10, 12} {
		_ = b.SetIndex(i, v)
	}

	p, err := matrix.Product(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Shape())
	fmt.Println(p)

	// Output:
	// 2 2
	// ((58, 139), (64, 154))
}

// ExampleTransposed shows that columns become rows.
func ExampleTransposed() {
	g, _ := matrix.NewGrid[float64](4, 3)
	matrix.Identity(g, 0, 1)

	tr, _ := matrix.Transposed(g)
	fmt.Println(tr.Shape())
	fmt.Println(matrix.MinElement(tr...), matrix.MaxElement(tr...))

	// Output:
	// 3 4
	// 0 1
}

// ExampleNormP compares the common vector norms of (3, -4).
func ExampleNormP() {
	v := []float32{3, -4}
	fmt.Println(matrix.Norm1(v), matrix.Norm2(v), matrix.NormMax(v))
	fmt.Printf("%.4f\n", matrix.NormP(3, v))

	// Output:
	// 7 5 4
	// 4.4979
}
