// SPDX-License-Identifier: MIT

package affine

import (
	"math"

	"github.com/yangfeng-xu/lab3-maths2/geom"
)

// IsAffine reports whether row 3 equals (0,0,0,1) within eps.
// Decomposition and inversion assume this; the checked entry points
// (Decompose, InverseTR, InverseTRS, PolarRotation) call it themselves.
// Complexity: O(1).
func (m Matrix) IsAffine(opts ...Option) bool {
	return m.isAffine(gatherOptions(opts...).eps)
}

func (m Matrix) isAffine(eps float64) bool {
	return math.Abs(float64(m[12])) <= eps &&
		math.Abs(float64(m[13])) <= eps &&
		math.Abs(float64(m[14])) <= eps &&
		math.Abs(float64(m[15])-1) <= eps
}

// TransformPoint applies the 3×4 affine part to p: block·p + translation.
// Row 3 is ignored; no perspective divide happens.
func (m Matrix) TransformPoint(p geom.Vec3) geom.Vec3 {
	x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
	row := func(i int) float32 {
		return float32(float64(m[4*i])*x + float64(m[4*i+1])*y + float64(m[4*i+2])*z + float64(m[4*i+3]))
	}

	return geom.Vec3{X: row(0), Y: row(1), Z: row(2)}
}

// TransformVector applies only the 3×3 block to v, so directions are
// unaffected by translation.
func (m Matrix) TransformVector(v geom.Vec3) geom.Vec3 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	row := func(i int) float32 {
		return float32(float64(m[4*i])*x + float64(m[4*i+1])*y + float64(m[4*i+2])*z)
	}

	return geom.Vec3{X: row(0), Y: row(1), Z: row(2)}
}

// Det3 returns the determinant of the 3×3 block. A negative value means the
// transform mirrors space.
func (m Matrix) Det3() float32 {
	return float32(m.block().det())
}
