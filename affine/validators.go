// SPDX-License-Identifier: MIT
// Package: affine
//
// Purpose:
//   - One canonical place for the precondition checks shared by the checked
//     entry points (Decompose, InverseTR, InverseTRS, PolarRotation).
//   - Return sentinels wrapped with the validator tag; the operation adds its
//     own tag on top.
//
// All validators are pure and allocate nothing beyond the error value.

package affine

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateAffine returns ErrNotAffine unless row 3 is (0,0,0,1) within eps.
// Complexity: O(1).
func ValidateAffine(m Matrix, opts ...Option) error {
	return validateAffine(m, gatherOptions(opts...).eps)
}

func validateAffine(m Matrix, eps float64) error {
	if !m.isAffine(eps) {
		return validatorErrorf("ValidateAffine", ErrNotAffine)
	}

	return nil
}

// ValidateScale returns ErrDegenerateScale when any column of the 3×3 block
// has norm <= eps, or when the columns are linearly dependent (the
// normalized determinant is within eps of zero).
// Complexity: O(1).
func ValidateScale(m Matrix, opts ...Option) error {
	return validateScale(m, gatherOptions(opts...).eps)
}

func validateScale(m Matrix, eps float64) error {
	b := m.block()
	s := vec3d{b[0].norm(), b[1].norm(), b[2].norm()}
	for j := 0; j < 3; j++ {
		if s[j] <= eps {
			return validatorErrorf(fmt.Sprintf("ValidateScale: axis %d", j), ErrDegenerateScale)
		}
	}
	if math.Abs(b.det()/(s[0]*s[1]*s[2])) <= eps {
		return validatorErrorf("ValidateScale: rank", ErrDegenerateScale)
	}

	return nil
}

// ValidateRigid returns ErrNotRigid unless the 3×3 block is orthonormal
// within eps: unit columns, pairwise orthogonal. Reflections pass, since
// their inverse is still the transpose.
// Complexity: O(1).
func ValidateRigid(m Matrix, opts ...Option) error {
	return validateRigid(m, gatherOptions(opts...).eps)
}

func validateRigid(m Matrix, eps float64) error {
	b := m.block()
	for j := 0; j < 3; j++ {
		if math.Abs(b[j].norm()-1) > eps {
			return validatorErrorf(fmt.Sprintf("ValidateRigid: axis %d length", j), ErrNotRigid)
		}
	}
	if math.Abs(b[0].dot(b[1])) > eps || math.Abs(b[1].dot(b[2])) > eps || math.Abs(b[2].dot(b[0])) > eps {
		return validatorErrorf("ValidateRigid: orthogonality", ErrNotRigid)
	}

	return nil
}
