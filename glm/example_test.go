// SPDX-License-Identifier: MIT

package glm_test

import (
	"fmt"

	"github.com/katalvlaran/lvglm/glm"
)

func ExampleVec3_Swizzle() {
	v := glm.Float3{1, 2, 3}
	fmt.Println(v.Swizzle().ZYX())
	fmt.Println(v.Swizzle().RRG())

	v.SwizzleRef().SetXZ(glm.Float2{9, 8})
	fmt.Println(v)
	// Output:
	// (3, 2, 1)
	// (1, 1, 2)
	// (9, 2, 8)
}

func ExampleMat4x3_MulVec() {
	m := glm.Identity[glm.Float4x3, float32]()
	fmt.Println(m.MulVec(glm.Float4{1, 2, 3, 4}))
	fmt.Println(m.Transposed().Cols(), m.Transposed().Rows())
	// Output:
	// (1, 2, 3)
	// 3 4
}

func ExampleResize() {
	m := glm.Int2x2{{5, 6}, {7, 8}}
	fmt.Println(glm.Resize[glm.Int3x3, int32](m))
	// Output:
	// ((5, 6, 0), (7, 8, 0), (0, 0, 1))
}

func ExampleBool3_All() {
	b := glm.Bool3{true, false, true}
	fmt.Println(b.All(), b.Any(), b.And(glm.Bool3{true, true, true}))
	// Output:
	// false true (true, false, true)
}

func ExampleParseMat() {
	m, err := glm.ParseMat[glm.Double2x2, float64]("((2, 1), (1, 1))")
	if err != nil {
		fmt.Println(err)
		return
	}
	inv, err := m.Inverse()
	fmt.Println(m.Determinant(), err)
	fmt.Println(inv)
	fmt.Println(inv.MulMat2x2(m))
	// Output:
	// 1 <nil>
	// ((1, -1), (-1, 2))
	// ((1, 0), (0, 1))
}
