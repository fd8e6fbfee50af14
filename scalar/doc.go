// SPDX-License-Identifier: MIT

// Package scalar is the conversion layer shared by every linmath type.
//
// Every vector, complex number, quaternion and matrix stores float32. The
// constructors of those types accept any Number (int or float family) and
// normalize through Float32, so callers can write
//
//	vector.New3D(1, 2, 3)       // ints
//	vector.New3D(1.5, 2.0, 0.5) // floats
//
// without explicit conversions. A single call cannot mix integer and
// floating-point components: Go infers one type parameter per call.
//
// The package also owns the numeric policy used by the ApproxEqual methods
// (functional options, see options.go) and Times, the scalar-on-left form of
// Scale.
package scalar
