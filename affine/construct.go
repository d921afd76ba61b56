// SPDX-License-Identifier: MIT

package affine

import "github.com/yangfeng-xu/lab3-maths2/geom"

// Translate returns the identity with column 3 set to t.
func Translate(t geom.Vec3) Matrix {
	m := Identity()
	m[3], m[7], m[11] = t.X, t.Y, t.Z

	return m
}

// Scale returns the identity with the diagonal set to (s.X, s.Y, s.Z, 1).
func Scale(s geom.Vec3) Matrix {
	m := Identity()
	m[0], m[5], m[10] = s.X, s.Y, s.Z

	return m
}

// Rotate returns the identity with its 3×3 block replaced by r.
// r is copied as given; orthonormality is the caller's guarantee.
func Rotate(r geom.Mat3) Matrix {
	m := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[4*i+j] = r[3*i+j]
		}
	}

	return m
}

// RotateQuat returns the rotation matrix of q.
//
// q must be unit length. A non-unit q is not normalized: the block comes out
// as |q|² times a rotation plus a skew on the diagonal, silently. Use
// q.IsUnit / q.Normalize when the source is not trusted.
func RotateQuat(q geom.Quat) Matrix {
	return Rotate(q.Mat3())
}

// FromTRS composes [R·diag(s) | t; 0 0 0 1].
//
// Implementation:
//   - Stage 1: column j of the block is column j of r scaled by s[j].
//   - Stage 2: t fills column 3; row 3 stays (0,0,0,1).
//
// Applied to a point p the result is R·(s∘p) + t: scale first, then rotate,
// then translate.
//
// Complexity: O(1).
func FromTRS(t geom.Vec3, r geom.Mat3, s geom.Vec3) Matrix {
	m := Identity()
	for i := 0; i < 3; i++ {
		m[4*i+0] = r[3*i+0] * s.X
		m[4*i+1] = r[3*i+1] * s.Y
		m[4*i+2] = r[3*i+2] * s.Z
	}
	m[3], m[7], m[11] = t.X, t.Y, t.Z

	return m
}

// FromTRSQuat is FromTRS with the rotation given as a unit quaternion.
// The unit-norm precondition of RotateQuat applies.
func FromTRSQuat(t geom.Vec3, q geom.Quat, s geom.Vec3) Matrix {
	return FromTRS(t, q.Mat3(), s)
}
