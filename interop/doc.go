// SPDX-License-Identifier: MIT

// Package interop hands linmath values to the graphics layer and back.
//
// Two layouts are supported:
//
//   - golang.org/x/image/math/f32: row-major arrays, the same layout as
//     linmath matrices. Conversions are plain copies.
//   - github.com/go-gl/mathgl/mgl32: column-major, the layout OpenGL
//     expects with transpose=GL_FALSE. Conversions transpose.
//
// UploadBuffer packs any number of 4×4 matrices into one column-major
// []float32 for glUniformMatrix4fv. Nothing here touches a GL context.
package interop
