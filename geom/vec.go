// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Vec3 is a point or a free vector in 3D space.
// Whether translation applies is decided by the transform method used,
// not by the value itself.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous coordinate. W=1 marks a point, W=0 a direction.
type Vec4 struct {
	X, Y, Z, W float32
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float32) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns a·b accumulated in float64.
func (a Vec3) Dot(b Vec3) float32 {
	return float32(float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y) + float64(a.Z)*float64(b.Z))
}

// Cross returns a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean norm of v.
func (v Vec3) Len() float32 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return float32(math.Sqrt(x*x + y*y + z*z))
}

// Normalize returns v scaled to unit length.
// A vector shorter than 1e-12 has no direction and yields the zero vector.
func (v Vec3) Normalize() Vec3 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	l := math.Sqrt(x*x + y*y + z*z)
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{float32(x / l), float32(y / l), float32(z / l)}
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

// Point lifts v to a homogeneous point (W=1).
func (v Vec3) Point() Vec4 { return Vec4{v.X, v.Y, v.Z, 1} }

// Direction lifts v to a homogeneous direction (W=0).
func (v Vec3) Direction() Vec4 { return Vec4{v.X, v.Y, v.Z, 0} }

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// XYZ drops the W component without dividing by it.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec4) ApproxEqual(b Vec4, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps) && near(a.W, b.W, eps)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// near compares two float32 values in float64.
func near(a, b float32, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}
