// Package g3d provides the shared building blocks of a series of small
// GPU tutorial programs built on the GoGPU stack.
//
// # Overview
//
// Each tutorial step (see package tutorial) draws one thing: a cleared
// window, a triangle moved by a uniform matrix, a triangle with per-vertex
// colors, a textured triangle, and finally a lit teapot seen through a
// camera. This package holds the pieces those steps have in common:
//
//   - Transform math: [ViewMatrix], [Perspective], [ClipCorrection]
//   - Camera parameters: [Camera]
//   - Vertex formats and their GPU layouts: [Vertex2D], [ColorVertex],
//     [TexVertex], [MeshVertex]
//   - Indexed triangle meshes: [Mesh]
//   - A GPU-agnostic draw description: [Pass]
//
// # Conventions
//
// Matrices are 4x4 column-major float32 values ([mgl32.Mat4]), the same
// layout WGSL uses for mat4x4<f32>, so they can be copied into uniform
// buffers with [MatrixBytes] unchanged.
//
// The view matrix follows the left-handed look-at convention: the camera
// looks along +Z in view space and [Perspective] maps view-space depth
// in [near, far] to normalized device depth [-1, 1]. WebGPU expects depth
// in [0, 1]; multiply by [ClipCorrection] before uploading.
//
// # Logging
//
// g3d and its sub-packages are silent by default. Call [SetLogger] to
// route diagnostics to any [log/slog] handler.
//
// # Errors
//
// Every fallible operation returns an error wrapping one of the sentinel
// values declared in this package or in the sub-package that produced it,
// so callers can use [errors.Is] to decide whether to abort or recover.
package g3d
