// SPDX-License-Identifier: MIT
// Package affine: TRS decomposition and in-place setters.
//
// Conventions fixed here (and relied on by inversion):
//   - Scale magnitudes are the Euclidean norms of the block columns.
//   - A mirrored block (negative determinant) has its reflection attributed
//     to the X axis: GetScale reports a negative X and GetRotation stays a
//     proper rotation. Which axis was mirrored at build time is not
//     recoverable, so FromTRS(t, R, (-1,1,1)) and FromTRS(t, R', (1,-1,1))
//     decompose identically when they describe the same block.
//   - An axis with norm <= eps has no direction. GetRotation rebuilds it from
//     the surviving axes instead of dividing by ~0.
//
// Getters never fail. They assume an affine matrix; use Decompose for a
// checked variant.

package affine

import (
	"math"

	"github.com/yangfeng-xu/lab3-maths2/geom"
)

// GetTranslation returns column 3, rows 0..2.
func (m Matrix) GetTranslation() geom.Vec3 {
	return geom.Vec3{X: m[3], Y: m[7], Z: m[11]}
}

// GetRotationScale returns the raw 3×3 block, rotation and scale combined.
func (m Matrix) GetRotationScale() geom.Mat3 {
	return geom.Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// GetScale returns the per-axis scale: the norm of each block column, with X
// negated when the block mirrors space.
//
// Implementation:
//   - Stage 1: s[j] = ‖column j‖ in float64.
//   - Stage 2: when every s[j] > eps and det(block)/(sx·sy·sz) < -eps,
//     negate s[0]. Degenerate blocks have no meaningful handedness and keep
//     unsigned magnitudes.
//
// Complexity: O(1).
func (m Matrix) GetScale(opts ...Option) geom.Vec3 {
	return m.signedScale(m.block(), gatherOptions(opts...).eps).vec3()
}

func (m Matrix) signedScale(b basis, eps float64) vec3d {
	s := vec3d{b[0].norm(), b[1].norm(), b[2].norm()}
	if s[0] > eps && s[1] > eps && s[2] > eps {
		if b.det()/(s[0]*s[1]*s[2]) < -eps {
			s[0] = -s[0]
		}
	}

	return s
}

// GetRotation returns the rotation factor of the block as a proper
// orthonormal matrix (det = +1).
//
// Implementation:
//   - Stage 1: divide each column by its signed scale (see GetScale); a
//     column with |s| <= eps is marked degenerate.
//   - Stage 2: modified Gram–Schmidt in X, Y order, Z completed as X×Y.
//     Degenerate axes are rebuilt from the survivors (Gram–Schmidt
//     completion), never divided by.
//
// Error bound: the output is orthonormal to float32 round-off (about 1e-7
// per element). For an exact R·diag(s) input it reproduces R to the same
// bound. For a sheared block it returns the Gram–Schmidt frame anchored on
// the X axis; PolarRotation gives the closest rotation instead.
//
// Complexity: O(1).
func (m Matrix) GetRotation(opts ...Option) geom.Mat3 {
	return m.rotationBasis(gatherOptions(opts...).eps).mat3()
}

func (m Matrix) rotationBasis(eps float64) basis {
	b := m.block()
	s := m.signedScale(b, eps)

	var ok [3]bool
	for j := 0; j < 3; j++ {
		if math.Abs(s[j]) > eps {
			b[j] = b[j].scale(1 / s[j])
			ok[j] = true
		}
	}

	return orthonormalize(b, ok, eps)
}

// GetRotationQuat returns GetRotation as a unit quaternion with S >= 0.
//
// Implementation (Shepperd):
//   - Stage 1: pick the largest of trace, r00, r11, r22.
//   - Stage 2: take the square root on that branch, so the divisor is at
//     least 1 and never near zero; derive the other three components from
//     the off-diagonal sums and differences.
//   - Stage 3: normalize and flip to S >= 0.
//
// Complexity: O(1).
func (m Matrix) GetRotationQuat(opts ...Option) geom.Quat {
	return quatFromBasis(m.rotationBasis(gatherOptions(opts...).eps))
}

func quatFromBasis(r basis) geom.Quat {
	r00, r11, r22 := r.at(0, 0), r.at(1, 1), r.at(2, 2)
	tr := r00 + r11 + r22

	var x, y, z, w, s float64
	switch {
	case tr > r00 && tr > r11 && tr > r22:
		s = 2 * math.Sqrt(1+tr)
		w = 0.25 * s
		x = (r.at(2, 1) - r.at(1, 2)) / s
		y = (r.at(0, 2) - r.at(2, 0)) / s
		z = (r.at(1, 0) - r.at(0, 1)) / s
	case r00 >= r11 && r00 >= r22:
		s = 2 * math.Sqrt(1+r00-r11-r22)
		w = (r.at(2, 1) - r.at(1, 2)) / s
		x = 0.25 * s
		y = (r.at(0, 1) + r.at(1, 0)) / s
		z = (r.at(0, 2) + r.at(2, 0)) / s
	case r11 >= r22:
		s = 2 * math.Sqrt(1+r11-r00-r22)
		w = (r.at(0, 2) - r.at(2, 0)) / s
		x = (r.at(0, 1) + r.at(1, 0)) / s
		y = 0.25 * s
		z = (r.at(1, 2) + r.at(2, 1)) / s
	default:
		s = 2 * math.Sqrt(1+r22-r00-r11)
		w = (r.at(1, 0) - r.at(0, 1)) / s
		x = (r.at(0, 2) + r.at(2, 0)) / s
		y = (r.at(1, 2) + r.at(2, 1)) / s
		z = 0.25 * s
	}

	n := math.Sqrt(x*x + y*y + z*z + w*w)
	if w < 0 {
		n = -n
	}

	return geom.Quat{X: float32(x / n), Y: float32(y / n), Z: float32(z / n), S: float32(w / n)}
}

// Decompose splits an affine matrix into translation, rotation and scale
// such that FromTRS(t, r, s) reproduces m for any block of the form R·diag(s).
//
// Errors:
//   - ErrNotAffine when row 3 is not (0,0,0,1) within eps.
//
// Degenerate scale is not an error here; see GetRotation for how the
// rotation is completed.
func (m Matrix) Decompose(opts ...Option) (t geom.Vec3, r geom.Mat3, s geom.Vec3, err error) {
	o := gatherOptions(opts...)
	if err = validateAffine(m, o.eps); err != nil {
		return geom.Vec3{}, geom.Mat3{}, geom.Vec3{}, affineErrorf(opDecompose, err)
	}

	b := m.block()
	return m.GetTranslation(), m.rotationBasis(o.eps).mat3(), m.signedScale(b, o.eps).vec3(), nil
}

// DecomposeQuat is Decompose with the rotation returned as GetRotationQuat
// would report it. The rotation basis is computed once.
func (m Matrix) DecomposeQuat(opts ...Option) (t geom.Vec3, q geom.Quat, s geom.Vec3, err error) {
	o := gatherOptions(opts...)
	if err = validateAffine(m, o.eps); err != nil {
		return geom.Vec3{}, geom.Quat{}, geom.Vec3{}, affineErrorf(opDecompose, err)
	}

	b := m.block()
	return m.GetTranslation(), quatFromBasis(m.rotationBasis(o.eps)), m.signedScale(b, o.eps).vec3(), nil
}

// SetTranslation overwrites column 3, rows 0..2. The block is untouched.
func (m *Matrix) SetTranslation(t geom.Vec3) {
	m[3], m[7], m[11] = t.X, t.Y, t.Z
}

// SetScale replaces the scale factor while keeping the current rotation:
// the block becomes GetRotation()·diag(s). The sign of s replaces any
// reflection the block carried. Translation and row 3 are untouched.
func (m *Matrix) SetScale(s geom.Vec3, opts ...Option) {
	r := m.rotationBasis(gatherOptions(opts...).eps)
	sd := vec3dOf(s)
	for j := 0; j < 3; j++ {
		r[j] = r[j].scale(sd[j])
	}
	m.setBlock(r)
}

// SetRotation replaces the rotation factor while keeping the current scale
// (including a mirrored X axis): the block becomes r·diag(GetScale()).
// Translation and row 3 are untouched.
func (m *Matrix) SetRotation(r geom.Mat3, opts ...Option) {
	eps := gatherOptions(opts...).eps
	s := m.signedScale(m.block(), eps)
	rb := basisOf(r)
	for j := 0; j < 3; j++ {
		rb[j] = rb[j].scale(s[j])
	}
	m.setBlock(rb)
}

// SetRotationQuat is SetRotation with the rotation given as a unit quaternion.
func (m *Matrix) SetRotationQuat(q geom.Quat, opts ...Option) {
	m.SetRotation(q.Mat3(), opts...)
}

// SetRotationScale pastes rs into the block as is.
func (m *Matrix) SetRotationScale(rs geom.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[4*i+j] = rs[3*i+j]
		}
	}
}
