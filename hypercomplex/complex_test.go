package hypercomplex_test

import (
	"math/cmplx"
	"testing"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/linmath/hypercomplex"
	"github.com/katalvlaran/linmath/scalar"
	"github.com/stretchr/testify/assert"
)

func TestComplex_Accessors(t *testing.T) {
	z := hypercomplex.New(3., 4.)

	assert.Equal(t, float32(3), z.Real())
	assert.Equal(t, float32(4), z.Imaginary())
	assert.Equal(t, float32(5), z.Norm())
	assert.Equal(t, "(3, 4i)", z.String())
	assert.Equal(t, hypercomplex.New(3, 4), z, "int and float construction agree")
}

func TestComplex_Argument(t *testing.T) {
	assert.Equal(t, float32(0), hypercomplex.New(3, 0).Argument())
	assert.InDelta(t, math32.Pi/4, hypercomplex.New(1, 1).Argument(), 1e-6)

	// on the imaginary axis the ratio is ±Inf or NaN
	assert.InDelta(t, math32.Pi/2, hypercomplex.New(0, 1).Argument(), 1e-6)
	assert.True(t, math32.IsNaN(hypercomplex.New(0, 0).Argument()))
}

func TestComplex_Arithmetic(t *testing.T) {
	a, b := hypercomplex.New(3., 4.), hypercomplex.New(1., 1.)

	tests := []struct {
		name string
		got  hypercomplex.Complex
		want hypercomplex.Complex
	}{
		{"add", a.Add(b), hypercomplex.New(4, 5)},
		{"sub", a.Sub(b), hypercomplex.New(2, 3)},
		{"mul", a.Mul(b), hypercomplex.New(-1., 7.)},
		{"div", a.Div(b), hypercomplex.New(3.5, 0.5)},
		{"scale", a.Scale(5), hypercomplex.New(15, 20)},
		{"scalar left", scalar.Times(5, a), hypercomplex.New(15, 20)},
		{"div scalar", hypercomplex.New(0, 1).DivScalar(2), hypercomplex.New(0, 0.5)},
		{"conjugate", a.Conjugate(), hypercomplex.New(3, -4)},
		{"neg", a.Neg(), hypercomplex.New(-3, -4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.got.Equal(tc.want), "got %v want %v", tc.got, tc.want)
		})
	}
}

func TestComplex_MatchesStdlib(t *testing.T) {
	pairs := [][2]complex128{
		{complex(3, 4), complex(1, 1)},
		{complex(-2.5, 0.5), complex(0.25, -4)},
		{complex(7, -1), complex(-3, 2)},
	}
	for _, p := range pairs {
		a := hypercomplex.New(real(p[0]), imag(p[0]))
		b := hypercomplex.New(real(p[1]), imag(p[1]))

		prod := p[0] * p[1]
		quo := p[0] / p[1]
		assert.True(t, a.Mul(b).ApproxEqual(hypercomplex.New(real(prod), imag(prod))), "%v * %v", a, b)
		assert.True(t, a.Div(b).ApproxEqual(hypercomplex.New(real(quo), imag(quo))), "%v / %v", a, b)
		assert.InDelta(t, cmplx.Abs(p[0]), a.Norm(), 1e-5)
	}
}

func TestComplex_Polar(t *testing.T) {
	assert.True(t, hypercomplex.FromPolar(2, 0).Equal(hypercomplex.New(2, 0)))
	assert.True(t, hypercomplex.FromPolar(float32(1), math32.Pi/2).ApproxEqual(hypercomplex.New(0, 1)))

	// the same literal pair means different numbers in the two constructors
	assert.False(t, hypercomplex.FromPolar(3., 4.).ApproxEqual(hypercomplex.New(3., 4.)))

	z := hypercomplex.New(3, 4)
	back := hypercomplex.FromPolar(z.Norm(), z.Argument())
	assert.True(t, back.ApproxEqual(z), "polar round trip: %v", back)
}

func TestComplex_MulDivRoundTrip(t *testing.T) {
	a, b := hypercomplex.New(1.5, -2.0), hypercomplex.New(0.5, 3.0)
	assert.True(t, a.Mul(b).Div(b).ApproxEqual(a))
	assert.True(t, a.Mul(a.Conjugate()).ApproxEqual(hypercomplex.New(a.Norm()*a.Norm(), 0)))
}

func TestComplex_DivideByZeroIsNonFinite(t *testing.T) {
	z := hypercomplex.New(1, 1).Div(hypercomplex.Complex{})
	assert.False(t, scalar.IsFinite(z.Real()))
	assert.False(t, scalar.IsFinite(z.Imaginary()))

	w := hypercomplex.New(1, 0).DivScalar(0)
	assert.True(t, math32.IsInf(w.Real(), 1))
}
