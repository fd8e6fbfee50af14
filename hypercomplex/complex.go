// SPDX-License-Identifier: MIT

package hypercomplex

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/linmath/scalar"
)

// Complex is a single-precision complex number. The zero value is 0+0i.
type Complex struct {
	re, im float32
}

// New builds re + im·i (rectangular form).
func New[T scalar.Number](re, im T) Complex {
	return Complex{re: scalar.Float32(re), im: scalar.Float32(im)}
}

// FromPolar builds r·(cos θ + i·sin θ) from a magnitude and an angle in radians.
func FromPolar[T scalar.Number](r, theta T) Complex {
	m, a := scalar.Float32(r), scalar.Float32(theta)
	return Complex{re: m * math32.Cos(a), im: m * math32.Sin(a)}
}

// Real returns the real part.
func (c Complex) Real() float32 { return c.re }

// Imaginary returns the imaginary part.
func (c Complex) Imaginary() float32 { return c.im }

// Norm returns the modulus |c|.
func (c Complex) Norm() float32 { return scalar.Sqrt(c.re*c.re + c.im*c.im) }

// Argument returns atan(im/re). The quadrant is not resolved and a zero real
// part gives ±π/2 or NaN.
func (c Complex) Argument() float32 { return math32.Atan(c.im / c.re) }

// Conjugate returns re - im·i.
func (c Complex) Conjugate() Complex { return Complex{c.re, -c.im} }

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex{-c.re, -c.im} }

// Add returns c + d.
func (c Complex) Add(d Complex) Complex { return Complex{c.re + d.re, c.im + d.im} }

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex { return Complex{c.re - d.re, c.im - d.im} }

// Mul returns c·d = (ac - bd) + (ad + bc)i.
func (c Complex) Mul(d Complex) Complex {
	return Complex{
		c.re*d.re - c.im*d.im,
		c.re*d.im + c.im*d.re,
	}
}

// Div returns c/d = ((ac + bd) + (bc - ad)i) / (c² + d²).
// A zero d yields non-finite parts.
func (c Complex) Div(d Complex) Complex {
	num := Complex{
		c.re*d.re + c.im*d.im,
		c.im*d.re - c.re*d.im,
	}

	return num.DivScalar(d.re*d.re + d.im*d.im)
}

// Scale returns s·c.
func (c Complex) Scale(s float32) Complex { return Complex{s * c.re, s * c.im} }

// DivScalar returns c/s.
func (c Complex) DivScalar(s float32) Complex { return Complex{c.re / s, c.im / s} }

// Equal reports exact equality of both parts.
func (c Complex) Equal(d Complex) bool { return c.re == d.re && c.im == d.im }

// ApproxEqual reports equality of both parts within the resolved epsilon.
func (c Complex) ApproxEqual(d Complex, opts ...scalar.Option) bool {
	return scalar.Close(c.re, d.re, opts...) && scalar.Close(c.im, d.im, opts...)
}

// String formats c as "(re, imi)".
func (c Complex) String() string { return fmt.Sprintf("(%v, %vi)", c.re, c.im) }
