package g3d

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewMatrix returns the look-at view matrix for a camera at eye looking
// along forward, with up as a hint for the vertical axis.
//
// forward need not be normalized and up need not be orthogonal to it:
//
//	f = normalize(forward)
//	s = normalize(up × f)
//	u = f × s
//	p = (-eye·s, -eye·u, -eye·f)
//
// The upper-left 3x3 block holds the rows s, u and f, and the last
// column holds p. The result is orthonormal for any non-parallel
// forward/up pair; use [CheckBasis] to reject degenerate input first.
func ViewMatrix(eye, forward, up mgl32.Vec3) mgl32.Mat4 {
	f := forward.Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)
	p := mgl32.Vec3{-eye.Dot(s), -eye.Dot(u), -eye.Dot(f)}

	return mgl32.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		p[0], p[1], p[2], 1,
	}
}

// CheckBasis reports whether forward and up define a camera basis.
// It returns an error wrapping [ErrDegenerateBasis] if forward is zero
// or parallel to up.
func CheckBasis(forward, up mgl32.Vec3) error {
	if forward.Len() < basisEpsilon {
		return fmt.Errorf("%w: zero forward vector", ErrDegenerateBasis)
	}
	if up.Len() < basisEpsilon {
		return fmt.Errorf("%w: zero up vector", ErrDegenerateBasis)
	}
	if Parallel(forward, up, 1e-4) {
		return fmt.Errorf("%w: forward %v is parallel to up %v", ErrDegenerateBasis, forward, up)
	}
	return nil
}

// Perspective returns a perspective projection matrix.
//
// aspect is the viewport height divided by its width, fovy the vertical
// field of view in radians. With f = 1/tan(fovy/2) the columns are:
//
//	(f*aspect, 0, 0, 0)
//	(0, f, 0, 0)
//	(0, 0, (far+near)/(far-near), 1)
//	(0, 0, -(2*far*near)/(far-near), 0)
//
// View-space depth near maps to NDC -1 and far to +1. The caller must
// ensure 0 < near < far; see [CheckPerspective].
func Perspective(aspect, fovy, near, far float32) mgl32.Mat4 {
	f := float32(1 / math.Tan(float64(fovy)/2))
	depth := far - near

	return mgl32.Mat4{
		f * aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / depth, 1,
		0, 0, -(2 * far * near) / depth, 0,
	}
}

// CheckPerspective validates the parameters of [Perspective].
// It returns an error wrapping [ErrInvalidProjection].
func CheckPerspective(aspect, fovy, near, far float32) error {
	for _, v := range [...]float32{aspect, fovy, near, far} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: non-finite parameter", ErrInvalidProjection)
		}
	}
	switch {
	case aspect <= 0:
		return fmt.Errorf("%w: aspect=%g", ErrInvalidProjection, aspect)
	case fovy <= 0 || fovy >= math.Pi:
		return fmt.Errorf("%w: fovy=%g", ErrInvalidProjection, fovy)
	case near <= 0:
		return fmt.Errorf("%w: near=%g", ErrInvalidProjection, near)
	case far <= near:
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidProjection, near, far)
	}
	return nil
}

// ClipCorrection remaps clip-space depth from the [-1, 1] range produced
// by [Perspective] to the [0, 1] range WebGPU rasterizes: z' = 0.5z + 0.5w.
var ClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// ProjectPoint transforms p by m and performs the perspective divide.
// It returns the zero vector when the resulting w is zero.
func ProjectPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return mgl32.Vec3{}
	}
	return v.Vec3().Mul(1 / v[3])
}

// Aspect returns height/width, the aspect convention used by
// [Perspective]. Returns 1 for a zero width.
func Aspect(width, height int) float32 {
	if width <= 0 {
		return 1
	}
	return float32(height) / float32(width)
}

// MatrixBytes packs matrices into little-endian float32 bytes in
// column-major order, ready for a uniform buffer.
func MatrixBytes(ms ...mgl32.Mat4) []byte {
	b := make([]byte, 0, len(ms)*64)
	for _, m := range ms {
		b = AppendFloat32s(b, m[:]...)
	}
	return b
}

// AppendFloat32s appends fs to b as little-endian float32 values.
func AppendFloat32s(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}
