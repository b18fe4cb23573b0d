package g3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalize(t *testing.T) {
	got := Normalize(mgl32.Vec3{3, 0, 4})
	if !got.ApproxEqualThreshold(mgl32.Vec3{0.6, 0, 0.8}, 1e-6) {
		t.Errorf("Normalize = %v, want (0.6, 0, 0.8)", got)
	}
	if got := Normalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestParallel(t *testing.T) {
	tests := []struct {
		a, b mgl32.Vec3
		want bool
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{5, 0, 0}, true},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-2, 0, 0}, true},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, false},
		{mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 0.999, 0}, false},
		{mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, true},
	}
	for _, tt := range tests {
		if got := Parallel(tt.a, tt.b, 1e-4); got != tt.want {
			t.Errorf("Parallel(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
