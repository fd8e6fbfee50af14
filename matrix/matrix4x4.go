// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linmath/scalar"
	"github.com/katalvlaran/linmath/vector"
)

// Matrix4x4 is a 4×4 float32 matrix stored row-major; the transform type
// handed to the rendering layer. The zero value is the zero matrix.
type Matrix4x4 struct {
	data [16]float32
}

// Zeros4x4 returns the zero matrix.
func Zeros4x4() Matrix4x4 { return Matrix4x4{} }

// Ones4x4 returns the matrix with every entry 1.
func Ones4x4() Matrix4x4 {
	var m Matrix4x4
	for i := range m.data {
		m.data[i] = 1
	}

	return m
}

// Diagonal4x4 returns value on the diagonal and 0 elsewhere.
func Diagonal4x4(value float32) Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		m.data[i*5] = value
	}

	return m
}

// Identity4x4 returns Diagonal4x4(1).
func Identity4x4() Matrix4x4 { return Diagonal4x4(1) }

// New4x4 builds a matrix from 16 row-major values.
func New4x4[T scalar.Number](data [16]T) Matrix4x4 {
	var m Matrix4x4
	for i, v := range data {
		m.data[i] = scalar.Float32(v)
	}

	return m
}

// FromColumns4x4 builds the matrix whose columns are c0..c3.
func FromColumns4x4(c0, c1, c2, c3 vector.Vector4D) Matrix4x4 {
	return Matrix4x4{data: [16]float32{
		c0.X(), c1.X(), c2.X(), c3.X(),
		c0.Y(), c1.Y(), c2.Y(), c3.Y(),
		c0.Z(), c1.Z(), c2.Z(), c3.Z(),
		c0.W(), c1.W(), c2.W(), c3.W(),
	}}
}

// At returns the entry at (row, col). Panics when out of range.
func (m Matrix4x4) At(row, col int) float32 {
	checkIndex(4, row, col)
	return m.data[row*4+col]
}

// Row returns row i as a vector.
func (m Matrix4x4) Row(i int) vector.Vector4D {
	checkVectorIndex(4, i)
	return vector.New4D(m.data[4*i], m.data[4*i+1], m.data[4*i+2], m.data[4*i+3])
}

// Col returns column j as a vector.
func (m Matrix4x4) Col(j int) vector.Vector4D {
	checkVectorIndex(4, j)
	return vector.New4D(m.data[j], m.data[j+4], m.data[j+8], m.data[j+12])
}

// Array returns a row-major copy of the entries.
func (m Matrix4x4) Array() [16]float32 { return m.data }

// Transpose swaps (i,j) and (j,i).
func (m Matrix4x4) Transpose() Matrix4x4 {
	var t Matrix4x4
	transposeInto(t.data[:], m.data[:], 4)

	return t
}

// Minor deletes row and col and returns the remaining 3×3 matrix.
func (m Matrix4x4) Minor(row, col int) Matrix3x3 {
	checkIndex(4, row, col)
	var out Matrix3x3
	minorInto(out.data[:], m.data[:], 4, row, col)

	return out
}

// Cofactor returns the matrix of (-1)^(i+j)·det(Minor(i,j)).
//
// Complexity: 16 3×3 determinants, each expanding into three 2×2 ones.
func (m Matrix4x4) Cofactor() Matrix4x4 {
	var c Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c.data[i*4+j] = cofactorSign(i, j) * m.Minor(i, j).Determinant()
		}
	}

	return c
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix4x4) Adjugate() Matrix4x4 { return m.Cofactor().Transpose() }

// Determinant expands along row 0: Σ_j (-1)^j·m[0,j]·det(Minor(0,j)).
func (m Matrix4x4) Determinant() float32 {
	var det float32
	for j := 0; j < 4; j++ {
		det += cofactorSign(0, j) * m.data[j] * m.Minor(0, j).Determinant()
	}

	return det
}

// Inverse returns Adjugate/Determinant.
//
// Errors:
//   - ErrSingular when the determinant is exactly 0 (no epsilon).
func (m Matrix4x4) Inverse() (Matrix4x4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4x4{}, matrixErrorf(opInverse, ErrSingular)
	}

	return m.Adjugate().DivScalar(det), nil
}

// Add returns m + n.
func (m Matrix4x4) Add(n Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := range m.data {
		out.data[i] = m.data[i] + n.data[i]
	}

	return out
}

// Sub returns m - n.
func (m Matrix4x4) Sub(n Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := range m.data {
		out.data[i] = m.data[i] - n.data[i]
	}

	return out
}

// Mul returns the product m·n, assembled column by column as m·col_j(n).
func (m Matrix4x4) Mul(n Matrix4x4) Matrix4x4 {
	return FromColumns4x4(
		m.MulVec(n.Col(0)),
		m.MulVec(n.Col(1)),
		m.MulVec(n.Col(2)),
		m.MulVec(n.Col(3)),
	)
}

// MulVec returns m·v with v as a column: Σ_j col_j·v[j].
func (m Matrix4x4) MulVec(v vector.Vector4D) vector.Vector4D {
	return m.Col(0).Scale(v.X()).
		Add(m.Col(1).Scale(v.Y())).
		Add(m.Col(2).Scale(v.Z())).
		Add(m.Col(3).Scale(v.W()))
}

// TransformPoint applies m to p lifted with w = 1 and drops w again.
// No perspective divide is applied.
func (m Matrix4x4) TransformPoint(p vector.Vector3D) vector.Vector3D {
	return m.MulVec(p.Extend(1)).Truncate()
}

// Scale returns s·m.
func (m Matrix4x4) Scale(s float32) Matrix4x4 {
	var out Matrix4x4
	for i, v := range m.data {
		out.data[i] = s * v
	}

	return out
}

// DivScalar returns m/s entry by entry.
func (m Matrix4x4) DivScalar(s float32) Matrix4x4 {
	var out Matrix4x4
	for i, v := range m.data {
		out.data[i] = v / s
	}

	return out
}

// Equal reports exact entry-wise equality over all 16 entries.
func (m Matrix4x4) Equal(n Matrix4x4) bool { return m.data == n.data }

// ApproxEqual reports entry-wise equality within the resolved epsilon.
func (m Matrix4x4) ApproxEqual(n Matrix4x4, opts ...scalar.Option) bool {
	return scalar.CloseAll(m.data[:], n.data[:], opts...)
}

// String formats m one parenthesized row per line.
func (m Matrix4x4) String() string {
	d := m.data
	return fmt.Sprintf("(%v, %v, %v, %v)\n(%v, %v, %v, %v)\n(%v, %v, %v, %v)\n(%v, %v, %v, %v)",
		d[0], d[1], d[2], d[3],
		d[4], d[5], d[6], d[7],
		d[8], d[9], d[10], d[11],
		d[12], d[13], d[14], d[15])
}
