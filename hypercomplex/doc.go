// SPDX-License-Identifier: MIT

// Package hypercomplex provides single-precision complex numbers and
// quaternions.
//
// 🚀 What is here?
//
//	Complex    — (real, imaginary) with field arithmetic, norm, argument
//	             and conjugate. New is RECTANGULAR; FromPolar takes
//	             (magnitude, angle in radians). The two constructors give
//	             different values for the same literal pair, so the call
//	             site always names its interpretation.
//	Quaternion — (r, i, j, k) with the Hamilton product, conjugate, norm
//	             and inverse. Division p.Div(q) is p·q⁻¹ (right division).
//
// Numeric policy:
//
//   - Complex multiplication and division use the algebraic form everywhere.
//   - Dividing by a zero complex value, or inverting a zero quaternion, yields
//     ±Inf/NaN components. Nothing is reported as an error.
//   - Argument is atan(imaginary/real) and is unreliable on the imaginary axis.
//
// Conversions to matrices live in package matrix (FromComplex, FromQuaternion).
package hypercomplex
