// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
)

// Vector2D is a 2-component float32 vector. The zero value is the zero vector.
type Vector2D struct {
	x, y float32
}

// New2D builds a Vector2D from integer or floating-point components.
func New2D[T scalar.Number](x, y T) Vector2D {
	return Vector2D{x: scalar.Float32(x), y: scalar.Float32(y)}
}

// X returns the first component.
func (v Vector2D) X() float32 { return v.x }

// Y returns the second component.
func (v Vector2D) Y() float32 { return v.y }

// XY returns both components.
func (v Vector2D) XY() (float32, float32) { return v.x, v.y }

// Add returns v + u.
func (v Vector2D) Add(u Vector2D) Vector2D { return Vector2D{v.x + u.x, v.y + u.y} }

// Sub returns v - u.
func (v Vector2D) Sub(u Vector2D) Vector2D { return Vector2D{v.x - u.x, v.y - u.y} }

// Neg returns -v.
func (v Vector2D) Neg() Vector2D { return Vector2D{-v.x, -v.y} }

// Scale returns s·v.
func (v Vector2D) Scale(s float32) Vector2D { return Vector2D{s * v.x, s * v.y} }

// DivScalar returns v/s. A zero s yields non-finite components.
func (v Vector2D) DivScalar(s float32) Vector2D { return Vector2D{v.x / s, v.y / s} }

// Dot returns the inner product v·u.
func (v Vector2D) Dot(u Vector2D) float32 { return v.x*u.x + v.y*u.y }

// Norm returns the Euclidean length.
func (v Vector2D) Norm() float32 { return scalar.Sqrt(v.x*v.x + v.y*v.y) }

// Sum returns x + y.
func (v Vector2D) Sum() float32 { return v.x + v.y }

// Equal reports exact component-wise equality.
func (v Vector2D) Equal(u Vector2D) bool { return v.x == u.x && v.y == u.y }

// ApproxEqual reports component-wise equality within the resolved epsilon.
func (v Vector2D) ApproxEqual(u Vector2D, opts ...scalar.Option) bool {
	return scalar.Close(v.x, u.x, opts...) && scalar.Close(v.y, u.y, opts...)
}

// String formats v as "(x, y)".
func (v Vector2D) String() string { return fmt.Sprintf("(%v, %v)", v.x, v.y) }
