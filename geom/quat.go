// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion with imaginary part (X, Y, Z) and scalar part S.
//
// Rotation helpers assume a unit quaternion. Non-unit input is never
// normalized implicitly: the resulting matrix is a uniformly scaled
// rotation, so callers that cannot guarantee unit norm should check IsUnit
// or call Normalize first.
type Quat struct {
	X, Y, Z, S float32
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity() Quat { return Quat{S: 1} }

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis is normalized; a zero axis yields the identity rotation.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Normalize()
	if n == (Vec3{}) {
		return QuatIdentity()
	}
	s, c := math.Sincos(angle * 0.5)
	return Quat{
		X: float32(float64(n.X) * s),
		Y: float32(float64(n.Y) * s),
		Z: float32(float64(n.Z) * s),
		S: float32(c),
	}
}

// QuatFromEuler converts XYZ Euler angles (radians) into a quaternion.
// The result rotates about X first, then Y, then Z, i.e. R = Rz·Ry·Rx.
func QuatFromEuler(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		X: float32(sx*cy*cz - cx*sy*sz),
		Y: float32(cx*sy*cz + sx*cy*sz),
		Z: float32(cx*cy*sz - sx*sy*cz),
		S: float32(cx*cy*cz + sx*sy*sz),
	}
}

// Norm returns |q|.
func (q Quat) Norm() float32 {
	return float32(math.Sqrt(q.norm2()))
}

func (q Quat) norm2() float64 {
	x, y, z, s := float64(q.X), float64(q.Y), float64(q.Z), float64(q.S)
	return x*x + y*y + z*z + s*s
}

// IsUnit reports whether |q| is within eps of 1.
func (q Quat) IsUnit(eps float64) bool {
	return math.Abs(math.Sqrt(q.norm2())-1) <= eps
}

// Normalize returns q / |q|. The zero quaternion maps to the identity.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.norm2())
	if n < 1e-12 {
		return QuatIdentity()
	}
	return Quat{
		X: float32(float64(q.X) / n),
		Y: float32(float64(q.Y) / n),
		Z: float32(float64(q.Z) / n),
		S: float32(float64(q.S) / n),
	}
}

// Conj returns the conjugate, which is the inverse rotation for a unit quaternion.
func (q Quat) Conj() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, S: q.S}
}

// Mul returns the Hamilton product q·r (apply r first, then q).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.S*r.X + q.X*r.S + q.Y*r.Z - q.Z*r.Y,
		Y: q.S*r.Y - q.X*r.Z + q.Y*r.S + q.Z*r.X,
		Z: q.S*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.S,
		S: q.S*r.S - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Mat3 returns the rotation matrix of q using the closed form
//
//	| 1-2(yy+zz)  2(xy-sz)    2(xz+sy)   |
//	| 2(xy+sz)    1-2(xx+zz)  2(yz-sx)   |
//	| 2(xz-sy)    2(yz+sx)    1-2(xx+yy) |
//
// q must be unit length; see the type comment.
func (q Quat) Mat3() Mat3 {
	x, y, z, s := float64(q.X), float64(q.Y), float64(q.Z), float64(q.S)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	sx, sy, sz := s*x, s*y, s*z

	return Mat3{
		float32(1 - 2*(yy+zz)), float32(2 * (xy - sz)), float32(2 * (xz + sy)),
		float32(2 * (xy + sz)), float32(1 - 2*(xx+zz)), float32(2 * (yz - sx)),
		float32(2 * (xz - sy)), float32(2 * (yz + sx)), float32(1 - 2*(xx+yy)),
	}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return q.Mat3().MulVec3(v)
}

// SameRotation reports whether q and r describe the same rotation within
// eps per component. q and -q are the same rotation.
func (q Quat) SameRotation(r Quat, eps float64) bool {
	same := near(q.X, r.X, eps) && near(q.Y, r.Y, eps) && near(q.Z, r.Z, eps) && near(q.S, r.S, eps)
	flip := near(q.X, -r.X, eps) && near(q.Y, -r.Y, eps) && near(q.Z, -r.Z, eps) && near(q.S, -r.S, eps)
	return same || flip
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g; %g)", q.X, q.Y, q.Z, q.S)
}
