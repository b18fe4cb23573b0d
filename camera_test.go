package g3d

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultCameraValid(t *testing.T) {
	if err := DefaultCamera().Validate(); err != nil {
		t.Fatalf("DefaultCamera().Validate() = %v", err)
	}
}

func TestCameraValidate(t *testing.T) {
	c := DefaultCamera()
	c.Up = c.Direction.Mul(2)
	if err := c.Validate(); !errors.Is(err, ErrDegenerateBasis) {
		t.Errorf("parallel up: Validate() = %v, want ErrDegenerateBasis", err)
	}

	c = DefaultCamera()
	c.Near, c.Far = 10, 1
	if err := c.Validate(); !errors.Is(err, ErrInvalidProjection) {
		t.Errorf("near > far: Validate() = %v, want ErrInvalidProjection", err)
	}
}

func TestCameraClipProjectionDepthRange(t *testing.T) {
	c := Camera{
		Position:  mgl32.Vec3{0, 0, -3},
		Direction: mgl32.Vec3{0, 0, 1},
		Up:        mgl32.Vec3{0, 1, 0},
		FovY:      1,
		Near:      1,
		Far:       10,
	}
	m := c.ClipProjection(640, 480).Mul4(c.View())

	// Points on the near and far planes in front of the camera.
	if z := ProjectPoint(m, mgl32.Vec3{0, 0, -2}).Z(); !approx(z, 0, 1e-4) {
		t.Errorf("near plane depth = %v, want 0", z)
	}
	if z := ProjectPoint(m, mgl32.Vec3{0, 0, 7}).Z(); !approx(z, 1, 1e-4) {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}
