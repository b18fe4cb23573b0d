package g3d

import "errors"

var (
	// ErrDegenerateBasis is returned when a camera forward vector is zero
	// or parallel to its up hint, leaving the look-at basis undefined.
	ErrDegenerateBasis = errors.New("g3d: degenerate camera basis")

	// ErrInvalidProjection is returned for perspective parameters outside
	// 0 < near < far, 0 < fovy < pi, aspect > 0.
	ErrInvalidProjection = errors.New("g3d: invalid perspective projection")

	// ErrEmptyMesh is returned by Mesh.Validate for a mesh without vertices.
	ErrEmptyMesh = errors.New("g3d: mesh has no vertices")

	// ErrIndexOutOfRange is returned when a mesh index refers past the
	// end of the vertex slice.
	ErrIndexOutOfRange = errors.New("g3d: index out of range")

	// ErrIncompleteTriangle is returned when an index list length is not
	// a multiple of three.
	ErrIncompleteTriangle = errors.New("g3d: index count is not a multiple of three")
)
