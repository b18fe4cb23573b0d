package g3d

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const matrixEpsilon = 1e-5

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// rotationRows returns the rows of the upper-left 3x3 block.
func rotationRows(m mgl32.Mat4) [3]mgl32.Vec3 {
	var rows [3]mgl32.Vec3
	for r := 0; r < 3; r++ {
		rows[r] = mgl32.Vec3{m.At(r, 0), m.At(r, 1), m.At(r, 2)}
	}
	return rows
}

func assertMat4(t *testing.T, got, want mgl32.Mat4, eps float32) {
	t.Helper()
	for i := range got {
		if !approx(got[i], want[i], eps) {
			t.Errorf("entry %d (row %d, col %d) = %v, want %v", i, i%4, i/4, got[i], want[i])
		}
	}
}

func TestViewMatrixOrthonormal(t *testing.T) {
	tests := []struct {
		name        string
		eye         mgl32.Vec3
		forward, up mgl32.Vec3
	}{
		{"axis aligned", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{"teapot camera", mgl32.Vec3{2, -1, 1}, mgl32.Vec3{-2, 1, 1}, mgl32.Vec3{0, 1, 0}},
		{"skewed up", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0.3, 1, 0.2}},
		{"unnormalized", mgl32.Vec3{-5, 0, 4}, mgl32.Vec3{10, -3, 7}, mgl32.Vec3{0, 4, 0}},
		{"looking down", mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, -1, 0.01}, mgl32.Vec3{0, 0, 1}},
		{"nearly parallel", mgl32.Vec3{}, mgl32.Vec3{0, 1, 0.05}, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := rotationRows(ViewMatrix(tt.eye, tt.forward, tt.up))
			for i := 0; i < 3; i++ {
				if l := rows[i].Len(); !approx(l, 1, 1e-4) {
					t.Errorf("row %d length = %v, want 1", i, l)
				}
				for j := i + 1; j < 3; j++ {
					if d := rows[i].Dot(rows[j]); !approx(d, 0, 1e-4) {
						t.Errorf("rows %d and %d dot = %v, want 0", i, j, d)
					}
				}
			}
			// The third row is the normalized forward direction.
			f := tt.forward.Normalize()
			if !rows[2].ApproxEqualThreshold(f, 1e-5) {
				t.Errorf("forward row = %v, want %v", rows[2], f)
			}
		})
	}
}

func TestViewMatrixIdentity(t *testing.T) {
	// up × forward = +X and forward × right = +Y when forward is +Z.
	m := ViewMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	assertMat4(t, m, mgl32.Ident4(), matrixEpsilon)
}

func TestViewMatrixLookingDownNegativeZ(t *testing.T) {
	m := ViewMatrix(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	want := mgl32.Diag4(mgl32.Vec4{-1, 1, -1, 1})
	assertMat4(t, m, want, matrixEpsilon)
}

func TestViewMatrixTranslation(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}
	m := ViewMatrix(eye, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	for i, want := range []float32{-1, -2, -3, 1} {
		if got := m[12+i]; !approx(got, want, matrixEpsilon) {
			t.Errorf("translation[%d] = %v, want %v", i, got, want)
		}
	}
	if got := ProjectPoint(m, eye); got.Len() > matrixEpsilon {
		t.Errorf("eye maps to %v, want origin", got)
	}
}

func TestViewMatrixMatchesMathGL(t *testing.T) {
	// mgl32.LookAtV is right-handed: its right and forward rows are
	// negated compared to ViewMatrix.
	flip := mgl32.Scale3D(-1, 1, -1)
	cases := [][3]mgl32.Vec3{
		{{2, -1, 1}, {-2, 1, 1}, {0, 1, 0}},
		{{0, 0, 5}, {0, 0, -1}, {0, 1, 0}},
		{{-3, 4, 1}, {1, -1, 0.5}, {0.2, 1, 0}},
	}
	for _, c := range cases {
		eye, forward, up := c[0], c[1], c[2]
		want := flip.Mul4(mgl32.LookAtV(eye, eye.Add(forward), up))
		assertMat4(t, ViewMatrix(eye, forward, up), want, 1e-4)
	}
}

func TestViewMatrixForwardPointIsOnAxis(t *testing.T) {
	eye := mgl32.Vec3{3, 4, 5}
	forward := mgl32.Vec3{1, 1, 0}
	m := ViewMatrix(eye, forward, mgl32.Vec3{0, 0, 1})
	p := eye.Add(forward.Normalize().Mul(7))
	got := ProjectPoint(m, p)
	if !approx(got.X(), 0, 1e-5) || !approx(got.Y(), 0, 1e-5) || !approx(got.Z(), 7, 1e-5) {
		t.Errorf("view-space point = %v, want (0, 0, 7)", got)
	}
}

func TestPerspectiveClosedForm(t *testing.T) {
	const near, far = 0.1, 100
	m := Perspective(1, math.Pi/2, near, far)

	// tan(45°) = 1, so f = 1.
	want := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, (far + near) / (far - near), 1,
		0, 0, -(2 * far * near) / (far - near), 0,
	}
	assertMat4(t, m, want, matrixEpsilon)

	if !approx(m[10], 1.002002, 1e-5) {
		t.Errorf("m[2][2] = %v, want 1.002002", m[10])
	}
	if !approx(m[14], -0.2002002, 1e-5) {
		t.Errorf("m[3][2] = %v, want -0.2002002", m[14])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	m := Perspective(Aspect(800, 600), math.Pi/3, 0.1, 1024)
	f := float32(1 / math.Tan(math.Pi/6))
	if !approx(m[0], f*0.75, matrixEpsilon) {
		t.Errorf("m[0][0] = %v, want %v", m[0], f*0.75)
	}
	if !approx(m[5], f, matrixEpsilon) {
		t.Errorf("m[1][1] = %v, want %v", m[5], f)
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	// mgl32.Perspective takes width/height and looks down -Z.
	for _, size := range [][2]int{{1, 1}, {800, 600}, {600, 800}} {
		w, h := size[0], size[1]
		fov := mgl32.DegToRad(60)
		want := mgl32.Perspective(fov, float32(w)/float32(h), 0.5, 50).Mul4(mgl32.Scale3D(1, 1, -1))
		assertMat4(t, Perspective(Aspect(w, h), fov, 0.5, 50), want, 1e-5)
	}
}

func TestPerspectiveDepthRoundTrip(t *testing.T) {
	const near, far = 0.1, 100
	m := Perspective(1, math.Pi/2, near, far)

	for _, d := range []float32{near, 0.5, 1, 10, 50, far} {
		got := ProjectPoint(m, mgl32.Vec3{0, 0, d}).Z()
		want := (far+near)/(far-near) - (2*far*near)/((far-near)*d)
		if !approx(got, want, 1e-4) {
			t.Errorf("depth at %v = %v, want %v", d, got, want)
		}
	}
	if z := ProjectPoint(m, mgl32.Vec3{0, 0, near}).Z(); !approx(z, -1, 1e-4) {
		t.Errorf("near plane depth = %v, want -1", z)
	}
	if z := ProjectPoint(m, mgl32.Vec3{0, 0, far}).Z(); !approx(z, 1, 1e-4) {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}

func TestClipCorrection(t *testing.T) {
	const near, far = 0.1, 100
	m := ClipCorrection.Mul4(Perspective(1, math.Pi/2, near, far))

	tests := []struct {
		d    float32
		want float32
	}{
		{near, 0},
		{far, 1},
	}
	for _, tt := range tests {
		if got := ProjectPoint(m, mgl32.Vec3{0, 0, tt.d}).Z(); !approx(got, tt.want, 1e-4) {
			t.Errorf("corrected depth at %v = %v, want %v", tt.d, got, tt.want)
		}
	}

	// x and y are untouched.
	p := ProjectPoint(m, mgl32.Vec3{0.5, -0.25, 1})
	if !approx(p.X(), 0.5, 1e-5) || !approx(p.Y(), -0.25, 1e-5) {
		t.Errorf("corrected xy = (%v, %v), want (0.5, -0.25)", p.X(), p.Y())
	}
}

func TestCheckPerspective(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name                   string
		aspect, fov, near, far float32
		wantErr                bool
	}{
		{"valid", 1, math.Pi / 2, 0.1, 100, false},
		{"near equals far", 1, 1, 10, 10, true},
		{"near beyond far", 1, 1, 10, 1, true},
		{"zero near", 1, 1, 0, 1, true},
		{"negative near", 1, 1, -1, 1, true},
		{"zero fov", 1, 0, 0.1, 1, true},
		{"fov of pi", 1, math.Pi, 0.1, 1, true},
		{"zero aspect", 0, 1, 0.1, 1, true},
		{"nan far", 1, 1, 0.1, nan, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPerspective(tt.aspect, tt.fov, tt.near, tt.far)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckPerspective() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProjection) {
				t.Errorf("error %v does not wrap ErrInvalidProjection", err)
			}
		})
	}
}

func TestCheckBasis(t *testing.T) {
	tests := []struct {
		name        string
		forward, up mgl32.Vec3
		wantErr     bool
	}{
		{"valid", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, false},
		{"skewed", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0}, false},
		{"zero forward", mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, true},
		{"zero up", mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, true},
		{"parallel", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 1, 0}, true},
		{"antiparallel", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 3, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBasis(tt.forward, tt.up)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckBasis() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDegenerateBasis) {
				t.Errorf("error %v does not wrap ErrDegenerateBasis", err)
			}
		})
	}
}

func TestAspect(t *testing.T) {
	if got := Aspect(800, 600); got != 0.75 {
		t.Errorf("Aspect(800, 600) = %v, want 0.75", got)
	}
	if got := Aspect(0, 600); got != 1 {
		t.Errorf("Aspect(0, 600) = %v, want 1", got)
	}
}

func TestMatrixBytes(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	b := MatrixBytes(mgl32.Ident4(), m)
	if len(b) != 128 {
		t.Fatalf("len = %d, want 128", len(b))
	}
	read := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	if read(0) != 1 || read(1) != 0 || read(5) != 1 {
		t.Errorf("identity not encoded column-major: %v %v %v", read(0), read(1), read(5))
	}
	// Second matrix, column 3 holds the translation.
	if read(16+12) != 1 || read(16+13) != 2 || read(16+14) != 3 {
		t.Errorf("translation = (%v, %v, %v), want (1, 2, 3)", read(28), read(29), read(30))
	}
}
