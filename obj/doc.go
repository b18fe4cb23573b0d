// Package obj reads and writes triangle meshes in the Wavefront OBJ text
// format.
//
// Only geometry is supported: v, vt, vn and f statements. Faces with more
// than three corners are split into a triangle fan. Each distinct
// position/texture/normal index triple becomes one output vertex, so the
// resulting mesh can be drawn with a single index buffer. Material,
// grouping and smoothing statements are accepted and ignored; the
// Decoder records them in Warnings.
package obj
