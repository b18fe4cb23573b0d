package g3d

import "github.com/go-gl/mathgl/mgl32"

// basisEpsilon is the smallest vector length treated as non-zero when
// building a camera basis.
const basisEpsilon = 1e-6

// Normalize returns v scaled to unit length.
// If v has zero length, returns the zero vector.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < basisEpsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Parallel reports whether a and b point along the same line, or either
// of them is (nearly) zero. eps bounds the sine of the angle between them.
func Parallel(a, b mgl32.Vec3, eps float32) bool {
	la, lb := a.Len(), b.Len()
	if la < basisEpsilon || lb < basisEpsilon {
		return true
	}
	return a.Cross(b).Len() <= eps*la*lb
}
