// SPDX-License-Identifier: MIT

// Package geom provides the small value types consumed by package affine:
// Vec3, Vec4, Quat and Mat3.
//
// All types store float32 components and are plain values: they are copied
// on assignment and never share storage. Arithmetic that feeds a narrowing
// step (dot products, norms, matrix products) accumulates in float64 and
// rounds once on the way out.
//
// Every type converts losslessly to and from its counterpart in
// golang.org/x/image/math/f32, so the values can be handed to renderers that
// already speak that vocabulary.
package geom
