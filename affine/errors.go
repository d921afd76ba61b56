// SPDX-License-Identifier: MIT
// Package affine: sentinel error set.
// Every failure the package reports is one of the sentinels below, possibly
// wrapped with an operation tag ("InverseTRS: ..."). Callers match them with
// errors.Is. No exported function panics on user-triggered conditions;
// panics are reserved for nonsensical option values (programmer error) and
// out-of-range element indices, which are a caller contract.

package affine

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "affine: " so it greps cleanly in logs.
//
// ERROR PRIORITY (checked in this order, enforced in tests):
// non-affine bottom row -> degenerate scale -> non-rigid block -> convergence.

var (
	// ErrNotAffine is returned when row 3 is not (0,0,0,1) within eps.
	// Decomposition and inversion are meaningless for projective matrices.
	ErrNotAffine = errors.New("affine: matrix is not affine")

	// ErrDegenerateScale is returned when a scale factor is zero within eps,
	// or the 3×3 block is rank deficient, so no inverse or rotation exists.
	ErrDegenerateScale = errors.New("affine: degenerate scale")

	// ErrNotRigid is returned by InverseTR when the 3×3 block is not
	// orthonormal within eps (the matrix carries scale or shear).
	ErrNotRigid = errors.New("affine: matrix is not a rigid transform")

	// ErrNotConverged is returned when an iterative routine exhausts its
	// iteration budget before reaching the configured tolerance.
	ErrNotConverged = errors.New("affine: iteration did not converge")
)

// Operation tags for uniform error wrapping.
const (
	opDecompose  = "Decompose"
	opInverseTR  = "InverseTR"
	opInverseTRS = "InverseTRS"
	opPolar      = "PolarRotation"
)

// affineErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func affineErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
