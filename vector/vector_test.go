package vector_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2D_Basics(t *testing.T) {
	v := vector.New2D(3, 4)

	assert.Equal(t, float32(3), v.X())
	assert.Equal(t, float32(4), v.Y())
	x, y := v.XY()
	assert.Equal(t, [2]float32{3, 4}, [2]float32{x, y})
	assert.Equal(t, float32(5), v.Norm())
	assert.Equal(t, float32(7), v.Sum())
	assert.Equal(t, "(3, 4)", v.String())
}

func TestVector2D_Arithmetic(t *testing.T) {
	a, b := vector.New2D(1, 2), vector.New2D(3, 4)

	assert.True(t, a.Add(b).Equal(vector.New2D(4, 6)))
	assert.True(t, a.Sub(b).Equal(vector.New2D(-2, -2)))
	assert.Equal(t, float32(11), a.Dot(b))
	assert.True(t, a.Scale(5).Equal(vector.New2D(5, 10)))
	assert.True(t, scalar.Times(5, a).Equal(vector.New2D(5, 10)))
	assert.True(t, scalar.Times(2.5, a).Equal(a.Scale(2.5)))
	assert.True(t, b.DivScalar(2).Equal(vector.New2D(1.5, 2.0)))
}

func TestVector2D_FromIntsEqualsFromFloats(t *testing.T) {
	assert.Equal(t, vector.New2D(5.0, 4.0), vector.New2D(5, 4))
	assert.Equal(t, vector.New2D(float32(5), 4), vector.New2D(int32(5), 4))
}

func TestVector3D_Basics(t *testing.T) {
	v := vector.New3D(1, 2, 3)

	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())

	x, y := v.XY()
	assert.Equal(t, [2]float32{1, 2}, [2]float32{x, y})
	x, z := v.XZ()
	assert.Equal(t, [2]float32{1, 3}, [2]float32{x, z})
	y, z = v.YZ()
	assert.Equal(t, [2]float32{2, 3}, [2]float32{y, z})
	x, y, z = v.XYZ()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})

	assert.Equal(t, math32.Sqrt(14), v.Norm())
	assert.Equal(t, float32(6), v.Sum())
	assert.Equal(t, "(1, 2, 3)", v.String())
	assert.True(t, v.Extend(1).Equal(vector.New4D(1, 2, 3, 1)))
}

func TestVector3D_ZeroValue(t *testing.T) {
	var v vector.Vector3D
	assert.True(t, v.Equal(vector.New3D(0, 0, 0)))
	assert.Equal(t, float32(0), v.Norm())
}

func TestVector3D_Arithmetic(t *testing.T) {
	a, b := vector.New3D(1, 2, 3), vector.New3D(3, 2, 1)

	assert.True(t, a.Add(b).Equal(vector.New3D(4, 4, 4)))
	assert.True(t, a.Sub(b).Equal(vector.New3D(-2, 0, 2)))
	assert.Equal(t, float32(10), a.Dot(b))
	assert.True(t, a.Scale(2).Equal(vector.New3D(2, 4, 6)))
	assert.True(t, scalar.Times(2, a).Equal(a.Scale(2)))
	assert.True(t, a.Neg().Equal(vector.New3D(-1, -2, -3)))
}

func TestVector3D_Cross(t *testing.T) {
	a, b := vector.New3D(1., 2., 3.), vector.New3D(3., 2., 1.)
	want := vector.New3D(-4., 8., -4.)

	require.True(t, a.Cross(b).Equal(want), "got %v", a.Cross(b))
	assert.True(t, a.Rem(b).Equal(a.Cross(b)), "Rem must alias Cross")

	// unit axes
	ex, ey, ez := vector.New3D(1, 0, 0), vector.New3D(0, 1, 0), vector.New3D(0, 0, 1)
	assert.True(t, ex.Cross(ey).Equal(ez))
	assert.True(t, ey.Cross(ez).Equal(ex))
	assert.True(t, ez.Cross(ex).Equal(ey))
}

func TestVector3D_CrossAntiCommutative(t *testing.T) {
	pairs := [][2]vector.Vector3D{
		{vector.New3D(1, 2, 3), vector.New3D(3, 2, 1)},
		{vector.New3D(-5, 0, 7), vector.New3D(2, 9, -1)},
		{vector.New3D(0.5, 0.25, -1.5), vector.New3D(4.0, -2.0, 8.0)},
	}
	for _, p := range pairs {
		assert.True(t, p[0].Cross(p[1]).Equal(p[1].Cross(p[0]).Neg()), "%v x %v", p[0], p[1])
	}
}

func TestVector4D_Swizzles(t *testing.T) {
	v := vector.New4D(1, 2, 3, 4)

	two := func(a, b float32) [2]float32 { return [2]float32{a, b} }
	three := func(a, b, c float32) [3]float32 { return [3]float32{a, b, c} }

	assert.Equal(t, float32(4), v.W())
	assert.Equal(t, [2]float32{1, 2}, two(v.XY()))
	assert.Equal(t, [2]float32{1, 3}, two(v.XZ()))
	assert.Equal(t, [2]float32{1, 4}, two(v.XW()))
	assert.Equal(t, [2]float32{2, 3}, two(v.YZ()))
	assert.Equal(t, [2]float32{2, 4}, two(v.YW()))
	assert.Equal(t, [2]float32{3, 4}, two(v.ZW()))
	assert.Equal(t, [3]float32{1, 2, 3}, three(v.XYZ()))
	assert.Equal(t, [3]float32{1, 2, 4}, three(v.XYW()))
	assert.Equal(t, [3]float32{1, 3, 4}, three(v.XZW()))
	assert.Equal(t, [3]float32{2, 3, 4}, three(v.YZW()))

	x, y, z, w := v.XYZW()
	assert.Equal(t, [4]float32{1, 2, 3, 4}, [4]float32{x, y, z, w})
	assert.True(t, v.Truncate().Equal(vector.New3D(1, 2, 3)))
}

func TestVector4D_Arithmetic(t *testing.T) {
	a, b := vector.New4D(1, 2, 3, 4), vector.New4D(4, 3, 2, 1)

	assert.True(t, a.Add(b).Equal(vector.New4D(5, 5, 5, 5)))
	assert.True(t, a.Sub(b).Equal(vector.New4D(-3, -1, 1, 3)))
	assert.Equal(t, float32(20), a.Dot(b))
	assert.Equal(t, math32.Sqrt(30), a.Norm())
	assert.Equal(t, float32(10), a.Sum())
	assert.True(t, a.Scale(3).Equal(scalar.Times(3, a)))
	assert.True(t, a.Scale(3).DivScalar(3).Equal(a))
	assert.Equal(t, "(1, 2, 3, 4)", a.String())
}

func TestVectors_AlgebraicProperties(t *testing.T) {
	// integer-valued components keep every sum exact
	u3, v3 := vector.New3D(7, -3, 11), vector.New3D(-2, 5, 13)
	assert.True(t, u3.Add(v3).Equal(v3.Add(u3)))
	assert.True(t, u3.Add(v3).Sub(v3).Equal(u3))
	assert.True(t, u3.Scale(-4).Equal(scalar.Times(-4, u3)))

	u2, v2 := vector.New2D(7, -3), vector.New2D(-2, 5)
	assert.True(t, u2.Add(v2).Equal(v2.Add(u2)))
	assert.True(t, u2.Add(v2).Sub(v2).Equal(u2))

	u4, v4 := vector.New4D(7, -3, 1, 0), vector.New4D(-2, 5, 9, 6)
	assert.True(t, u4.Add(v4).Equal(v4.Add(u4)))
	assert.True(t, u4.Add(v4).Sub(v4).Equal(u4))
}

func TestVectors_DivideByZeroPropagatesNonFinite(t *testing.T) {
	v := vector.New3D(1, -1, 0).DivScalar(0)

	assert.True(t, math32.IsInf(v.X(), 1))
	assert.True(t, math32.IsInf(v.Y(), -1))
	assert.True(t, math32.IsNaN(v.Z()))
	assert.False(t, v.Equal(v), "NaN component never compares equal")
}

func TestVectors_ApproxEqual(t *testing.T) {
	a := vector.New3D(0.1, 0.2, 0.3)
	b := vector.New3D(0.1, 0.2, 0.3000001)

	assert.False(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b))
	assert.False(t, a.ApproxEqual(vector.New3D(0.1, 0.2, 0.4)))
	assert.True(t, a.ApproxEqual(vector.New3D(0.1, 0.2, 0.4), scalar.WithEpsilon(0.2)))

	assert.True(t, vector.New2D(1, 1).ApproxEqual(vector.New2D(1.000001, 1)))
	assert.True(t, vector.New4D(1, 1, 1, 1).ApproxEqual(vector.New4D(1, 1, 1, 1.000001)))
}
