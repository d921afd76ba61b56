// SPDX-License-Identifier: MIT

// Package affine implements a dense 4×4 homogeneous transform for 3D
// pipelines: construction from translation, rotation and scale (TRS),
// composition, point and vector transforms, TRS decomposition and
// closed-form inverses.
//
// What & Why:
//
//	Matrix is a [16]float32 value, row-major, with the usual affine layout
//
//	    | R·diag(s)  t |
//	    | 0  0  0    1 |
//
//	Storage is single precision to match GPU-facing data; every product and
//	norm accumulates in float64 and narrows once. A single tolerance
//	(DefaultEpsilon, overridable per call with WithEpsilon) gates every
//	approximate comparison and degeneracy guard.
//
// Failure policy:
//
//	Unchecked getters (GetScale, GetRotation, …) never fail and assume an
//	affine matrix. Checked entry points (Decompose, InverseTR, InverseTRS,
//	PolarRotation) validate and return sentinel errors (ErrNotAffine,
//	ErrNotRigid, ErrDegenerateScale, ErrNotConverged) matched with errors.Is.
//	A zero-scale axis never causes a division by zero: rotation extraction
//	rebuilds the axis and inversion reports ErrDegenerateScale.
//
// Concurrency:
//
//	Matrix has value semantics and no internal state. Distinct values are
//	safe to use from different goroutines; the Set* mutators need exclusive
//	access to the value they are called on, like any other Go variable.
//
// Complexity:
//
//	Every operation is O(1) and allocation-free, except PolarRotation which
//	runs at most WithMaxIterations Newton steps.
package affine
