// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
	"strings"
)

// Mat3 is a 3×3 matrix stored row-major: element (r, c) lives at m[3*r+c].
// As a rotation input it is expected to be orthonormal with determinant +1.
type Mat3 [9]float32

// Mat3Identity returns the 3×3 identity.
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3Diag returns diag(x, y, z).
func Mat3Diag(x, y, z float32) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3FromCols builds a matrix whose columns are c0, c1, c2.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

// RotX returns a rotation of a radians about the X axis.
func RotX(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		1, 0, 0,
		0, float32(c), float32(-s),
		0, float32(s), float32(c),
	}
}

// RotY returns a rotation of a radians about the Y axis.
func RotY(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		float32(c), 0, float32(s),
		0, 1, 0,
		float32(-s), 0, float32(c),
	}
}

// RotZ returns a rotation of a radians about the Z axis.
func RotZ(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		float32(c), float32(-s), 0,
		float32(s), float32(c), 0,
		0, 0, 1,
	}
}

// At returns element (r, c). Indices outside [0,2] panic.
func (m Mat3) At(r, c int) float32 { return m[3*r+c] }

// Set assigns element (r, c). Indices outside [0,2] panic.
func (m *Mat3) Set(r, c int, v float32) { m[3*r+c] = v }

// Col returns column j.
func (m Mat3) Col(j int) Vec3 { return Vec3{m[j], m[3+j], m[6+j]} }

// SetCol overwrites column j.
func (m *Mat3) SetCol(j int, v Vec3) {
	m[j], m[3+j], m[6+j] = v.X, v.Y, v.Z
}

// Row returns row i.
func (m Mat3) Row(i int) Vec3 { return Vec3{m[3*i], m[3*i+1], m[3*i+2]} }

// Mul returns m × b with float64 accumulation.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = float32(float64(m[3*r])*float64(b[c]) +
				float64(m[3*r+1])*float64(b[3+c]) +
				float64(m[3*r+2])*float64(b[6+c]))
		}
	}
	return out
}

// MulVec3 returns m × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return Vec3{
		float32(float64(m[0])*x + float64(m[1])*y + float64(m[2])*z),
		float32(float64(m[3])*x + float64(m[4])*y + float64(m[5])*z),
		float32(float64(m[6])*x + float64(m[7])*y + float64(m[8])*z),
	}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant computed in float64.
func (m Mat3) Det() float64 {
	a := func(i int) float64 { return float64(m[i]) }
	return a(0)*(a(4)*a(8)-a(5)*a(7)) -
		a(1)*(a(3)*a(8)-a(5)*a(6)) +
		a(2)*(a(3)*a(7)-a(4)*a(6))
}

// IsRotation reports whether m is orthonormal with determinant +1, within eps.
func (m Mat3) IsRotation(eps float64) bool {
	p := m.Transpose().Mul(m)
	if !p.ApproxEqual(Mat3Identity(), eps) {
		return false
	}
	return math.Abs(m.Det()-1) <= eps
}

// ApproxEqual reports whether every element of m and b differs by at most eps.
func (m Mat3) ApproxEqual(b Mat3, eps float64) bool {
	for i := range m {
		if !near(m[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (m Mat3) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", m[3*r], m[3*r+1], m[3*r+2])
	}
	return sb.String()
}
