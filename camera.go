package g3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the scalar parameters the view and projection matrices
// are rebuilt from every frame.
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	// FovY is the vertical field of view in radians.
	FovY float32
	Near float32
	Far  float32
}

// DefaultCamera returns the camera used by the teapot step: positioned
// below and to the right of the origin, looking back toward it.
func DefaultCamera() Camera {
	return Camera{
		Position:  mgl32.Vec3{2, -1, 1},
		Direction: mgl32.Vec3{-2, 1, 1},
		Up:        mgl32.Vec3{0, 1, 0},
		FovY:      math.Pi / 3,
		Near:      0.1,
		Far:       1024,
	}
}

// Validate checks the basis and projection parameters.
func (c Camera) Validate() error {
	if err := CheckBasis(c.Direction, c.Up); err != nil {
		return err
	}
	return CheckPerspective(1, c.FovY, c.Near, c.Far)
}

// View returns the camera's look-at matrix.
func (c Camera) View() mgl32.Mat4 {
	return ViewMatrix(c.Position, c.Direction, c.Up)
}

// Projection returns the perspective matrix for a width x height surface,
// with depth in the [-1, 1] range.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	return Perspective(Aspect(width, height), c.FovY, c.Near, c.Far)
}

// ClipProjection returns Projection premultiplied by [ClipCorrection],
// the form uploaded to WebGPU shaders.
func (c Camera) ClipProjection(width, height int) mgl32.Mat4 {
	return ClipCorrection.Mul4(c.Projection(width, height))
}
