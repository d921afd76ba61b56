// SPDX-License-Identifier: MIT

package affine

// InverseTR returns the closed-form inverse of a rigid transform
// [R | t; 0 0 0 1]: the block becomes Rᵀ and the translation −Rᵀ·t.
//
// Implementation:
//   - Stage 1 (Validate): ValidateAffine, then ValidateRigid. A block with
//     scale or shear would make the transpose a wrong inverse, so it is
//     rejected instead of silently producing garbage.
//   - Stage 2 (Execute): transpose the block; accumulate −Rᵀ·t in float64.
//
// Errors:
//   - ErrNotAffine, ErrNotRigid (wrapped with "InverseTR").
//
// Complexity: O(1), no allocation.
func (m Matrix) InverseTR(opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateAffine(m, o.eps); err != nil {
		return Matrix{}, affineErrorf(opInverseTR, err)
	}
	if err := validateRigid(m, o.eps); err != nil {
		return Matrix{}, affineErrorf(opInverseTR, err)
	}

	var inv Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[4*r+c] = m[4*c+r]
		}
	}

	t := vec3d{float64(m[3]), float64(m[7]), float64(m[11])}
	for r := 0; r < 3; r++ {
		// row r of Rᵀ is column r of R
		inv[4*r+3] = float32(-m.col3(r).dot(t))
	}
	inv[15] = 1

	return inv, nil
}

// InverseTRS returns the closed-form inverse of [R·diag(s) | t; 0 0 0 1]:
// the block becomes diag(1/s)·Rᵀ and the translation −(diag(1/s)·Rᵀ)·t.
//
// Implementation:
//   - Stage 1 (Validate): ValidateAffine, then ValidateScale. No division
//     happens unless every |s[j]| > eps.
//   - Stage 2 (Decompose): signed scale and proper rotation, using the same
//     conventions as GetScale/GetRotation.
//   - Stage 3 (Execute): row j of the inverse block is column j of R divided
//     by s[j]; translation accumulated in float64 and narrowed once.
//
// The result is exact for blocks of the form R·diag(s). A sheared block is
// inverted as if its Gram–Schmidt frame were the rotation.
//
// Errors:
//   - ErrNotAffine, ErrDegenerateScale (wrapped with "InverseTRS"). On error
//     the returned Matrix is the zero value, never NaN or Inf.
//
// Complexity: O(1), no allocation.
func (m Matrix) InverseTRS(opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateAffine(m, o.eps); err != nil {
		return Matrix{}, affineErrorf(opInverseTRS, err)
	}
	if err := validateScale(m, o.eps); err != nil {
		return Matrix{}, affineErrorf(opInverseTRS, err)
	}

	b := m.block()
	s := m.signedScale(b, o.eps)
	rot := m.rotationBasis(o.eps)

	var rows basis // rows[j] is row j of diag(1/s)·Rᵀ
	for j := 0; j < 3; j++ {
		rows[j] = rot[j].scale(1 / s[j])
	}

	t := vec3d{float64(m[3]), float64(m[7]), float64(m[11])}
	var inv Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[4*r+c] = float32(rows[r][c])
		}
		inv[4*r+3] = float32(-rows[r].dot(t))
	}
	inv[15] = 1

	return inv, nil
}
