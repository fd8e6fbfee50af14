// SPDX-License-Identifier: MIT

package hypercomplex

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vector"
)

// Quaternion is r + i·î + j·ĵ + k·k̂ in single precision.
// The zero value is the zero quaternion.
type Quaternion struct {
	r, i, j, k float32
}

// NewQuaternion builds a quaternion from its four components.
func NewQuaternion[T scalar.Number](r, i, j, k T) Quaternion {
	return Quaternion{
		r: scalar.Float32(r),
		i: scalar.Float32(i),
		j: scalar.Float32(j),
		k: scalar.Float32(k),
	}
}

// FromScalarVector builds a quaternion from a scalar part and a vector part;
// v's x, y, z become i, j, k.
func FromScalarVector[T scalar.Number](r T, v vector.Vector3D) Quaternion {
	return Quaternion{r: scalar.Float32(r), i: v.X(), j: v.Y(), k: v.Z()}
}

// R returns the scalar part.
func (q Quaternion) R() float32 { return q.r }

// I returns the î coefficient.
func (q Quaternion) I() float32 { return q.i }

// J returns the ĵ coefficient.
func (q Quaternion) J() float32 { return q.j }

// K returns the k̂ coefficient.
func (q Quaternion) K() float32 { return q.k }

// Vector returns the vector part (i, j, k).
func (q Quaternion) Vector() vector.Vector3D { return vector.New3D(q.i, q.j, q.k) }

// NormSquared returns r² + i² + j² + k².
func (q Quaternion) NormSquared() float32 {
	return q.r*q.r + q.i*q.i + q.j*q.j + q.k*q.k
}

// Norm returns the Euclidean magnitude.
func (q Quaternion) Norm() float32 { return scalar.Sqrt(q.NormSquared()) }

// Conjugate returns (r, -i, -j, -k).
func (q Quaternion) Conjugate() Quaternion { return Quaternion{q.r, -q.i, -q.j, -q.k} }

// Inverse returns conjugate/norm². The zero quaternion yields NaN components.
func (q Quaternion) Inverse() Quaternion { return q.Conjugate().DivScalar(q.NormSquared()) }

// Neg returns -q.
func (q Quaternion) Neg() Quaternion { return Quaternion{-q.r, -q.i, -q.j, -q.k} }

// Add returns q + p.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{q.r + p.r, q.i + p.i, q.j + p.j, q.k + p.k}
}

// Sub returns q - p.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{q.r - p.r, q.i - p.i, q.j - p.j, q.k - p.k}
}

// Mul returns the Hamilton product q·p. It is not commutative.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		r: q.r*p.r - q.i*p.i - q.j*p.j - q.k*p.k,
		i: q.r*p.i + q.i*p.r + q.j*p.k - q.k*p.j,
		j: q.r*p.j - q.i*p.k + q.j*p.r + q.k*p.i,
		k: q.r*p.k + q.i*p.j - q.j*p.i + q.k*p.r,
	}
}

// Div returns q·p⁻¹. Because Mul is not commutative this generally differs
// from p⁻¹·q.
func (q Quaternion) Div(p Quaternion) Quaternion { return q.Mul(p.Inverse()) }

// Scale returns s·q.
func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{s * q.r, s * q.i, s * q.j, s * q.k}
}

// DivScalar returns q/s.
func (q Quaternion) DivScalar(s float32) Quaternion {
	return Quaternion{q.r / s, q.i / s, q.j / s, q.k / s}
}

// Equal reports exact component-wise equality.
func (q Quaternion) Equal(p Quaternion) bool {
	return q.r == p.r && q.i == p.i && q.j == p.j && q.k == p.k
}

// ApproxEqual reports component-wise equality within the resolved epsilon.
func (q Quaternion) ApproxEqual(p Quaternion, opts ...scalar.Option) bool {
	return scalar.Close(q.r, p.r, opts...) &&
		scalar.Close(q.i, p.i, opts...) &&
		scalar.Close(q.j, p.j, opts...) &&
		scalar.Close(q.k, p.k, opts...)
}

// String formats q as "(r, ii, jj, kk)".
func (q Quaternion) String() string {
	return fmt.Sprintf("(%v, %vi, %vj, %vk)", q.r, q.i, q.j, q.k)
}
