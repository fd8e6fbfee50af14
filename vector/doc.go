// SPDX-License-Identifier: MIT

// Package vector provides fixed-arity float32 vectors: Vector2D, Vector3D
// and Vector4D.
//
// Vectors are immutable values. Every operation takes its operands by value
// and returns a fresh result; nothing is mutated in place, so values may be
// shared freely between goroutines.
//
// Operations:
//   - Add / Sub / Neg          component-wise.
//   - Scale / DivScalar        scalar multiply and divide. scalar.Times(s, v)
//     is the scalar-on-left form and always equals v.Scale(s).
//   - Dot                      inner product, returns float32.
//   - Norm / Sum               Euclidean length and component sum.
//   - Cross / Rem              (Vector3D only) cross product; Rem is an alias.
//
// Equality is exact component-wise float comparison. Use ApproxEqual with a
// scalar.Option for tolerance. Dividing by zero yields ±Inf/NaN components;
// it is not reported as an error.
//
// Construction accepts int or float components through a single generic
// constructor per arity:
//
//	v := vector.New3D(1, 2, 3)
//	u := vector.New3D(0.5, 0.25, 1.0)
//	w := v.Cross(u)
package vector
