package affine_test

import (
	"errors"
	"fmt"

	"github.com/yangfeng-xu/lab3-maths2/affine"
	"github.com/yangfeng-xu/lab3-maths2/geom"
)

// ExampleFromTRS builds a transform, decomposes it and inverts it.
func ExampleFromTRS() {
	m := affine.FromTRS(geom.V3(1, 2, 3), geom.Mat3Identity(), geom.V3(2, 2, 2))
	fmt.Print(m)
	fmt.Println("T =", m.GetTranslation())
	fmt.Println("S =", m.GetScale())
	fmt.Println("p =", m.TransformPoint(geom.V3(1, 0, 0)))

	inv, err := m.InverseTRS()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("back =", inv.TransformPoint(geom.V3(3, 2, 3)))

	// Output:
	// [2, 0, 0, 1]
	// [0, 2, 0, 2]
	// [0, 0, 2, 3]
	// [0, 0, 0, 1]
	// T = (1, 2, 3)
	// S = (2, 2, 2)
	// p = (3, 2, 3)
	// back = (1, 0, 0)
}

// ExampleMatrix_InverseTRS shows the degenerate-scale signal.
func ExampleMatrix_InverseTRS() {
	m := affine.Scale(geom.V3(1, 0, 1))
	_, err := m.InverseTRS()
	fmt.Println(errors.Is(err, affine.ErrDegenerateScale))
	fmt.Println(err)

	// Output:
	// true
	// InverseTRS: ValidateScale: axis 1: affine: degenerate scale
}
