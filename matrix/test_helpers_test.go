// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Load the closed-form fixtures from testdata/fixtures.yaml.
//   • Bridge the three fixed-size types to a size-tagged view so table tests
//     can iterate over all of them.
//   • Provide gonum oracles for cross-checking in float64.

package matrix_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/linmath/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

type determinantFixture struct {
	Name        string    `yaml:"name"`
	Size        int       `yaml:"size"`
	Data        []float32 `yaml:"data"`
	Determinant float32   `yaml:"determinant"`
}

type inverseFixture struct {
	Name        string    `yaml:"name"`
	Size        int       `yaml:"size"`
	Data        []float32 `yaml:"data"`
	Numerators  []float32 `yaml:"numerators"`
	Denominator float32   `yaml:"denominator"`
}

type fixtures struct {
	Determinants []determinantFixture `yaml:"determinants"`
	Inverses     []inverseFixture     `yaml:"inverses"`
}

// loadFixtures decodes testdata/fixtures.yaml or fails the test.
func loadFixtures(t testing.TB) fixtures {
	t.Helper()

	raw, err := os.ReadFile("testdata/fixtures.yaml")
	require.NoError(t, err)

	var fx fixtures
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Determinants)
	require.NotEmpty(t, fx.Inverses)

	return fx
}

// square is the size-tagged view used by table tests.
type square struct {
	size        int
	determinant func() float32
	inverse     func() ([]float32, error)
}

func mustLen(t testing.TB, data []float32, n int) {
	t.Helper()
	require.Len(t, data, n*n, "fixture has %d values for a %dx%d matrix", len(data), n, n)
}

// buildSquare wraps row-major data in the matrix type of the given size.
func buildSquare(t testing.TB, size int, data []float32) square {
	t.Helper()
	mustLen(t, data, size)

	switch size {
	case 2:
		m := matrix.New2x2([4]float32(data))
		return square{
			size:        2,
			determinant: m.Determinant,
			inverse: func() ([]float32, error) {
				inv, err := m.Inverse()
				arr := inv.Array()
				return arr[:], err
			},
		}
	case 3:
		m := matrix.New3x3([9]float32(data))
		return square{
			size:        3,
			determinant: m.Determinant,
			inverse: func() ([]float32, error) {
				inv, err := m.Inverse()
				arr := inv.Array()
				return arr[:], err
			},
		}
	case 4:
		m := matrix.New4x4([16]float32(data))
		return square{
			size:        4,
			determinant: m.Determinant,
			inverse: func() ([]float32, error) {
				inv, err := m.Inverse()
				arr := inv.Array()
				return arr[:], err
			},
		}
	}
	t.Fatalf("unsupported size %d", size)

	return square{}
}

// gonumDense converts row-major float32 data into a gonum Dense.
func gonumDense(n int, data []float32) *mat.Dense {
	f64 := make([]float64, len(data))
	for i, v := range data {
		f64[i] = float64(v)
	}

	return mat.NewDense(n, n, f64)
}

// seq returns n values first, first+step, ... as float32.
func seq(n int, first, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = first + float32(i)*step
	}

	return out
}
