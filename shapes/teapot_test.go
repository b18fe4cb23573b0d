package shapes

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTeapotCounts(t *testing.T) {
	const n = 4
	m := Teapot(n)

	// Profiles: lid 2, rim 1, body 2, bottom 1 segments; tubes 2 segments each.
	profileRows := (2*n + 1) + (n + 1) + (2*n + 1) + (n + 1)
	wantVerts := profileRows*(4*n+1) + 2*(2*n+1)*(2*n+1)
	if len(m.Vertices) != wantVerts {
		t.Errorf("vertices = %d, want %d", len(m.Vertices), wantVerts)
	}

	profileQuads := (profileRows - 4) * 4 * n
	tubeQuads := 2 * (2 * n) * (2 * n)
	if got, want := m.TriangleCount(), 2*(profileQuads+tubeQuads); got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
}

func TestTeapotValid(t *testing.T) {
	for _, detail := range []int{0, 1, 3, DefaultTeapotDetail} {
		m := Teapot(detail)
		if err := m.Validate(); err != nil {
			t.Errorf("Teapot(%d).Validate() = %v", detail, err)
		}
		for i, v := range m.Vertices {
			if l := mgl32.Vec3(v.Normal).Len(); math.Abs(float64(l-1)) > 1e-4 {
				t.Fatalf("Teapot(%d) vertex %d normal length %v", detail, i, l)
			}
		}
	}
}

func TestTeapotDefaultDetail(t *testing.T) {
	if a, b := len(Teapot(0).Vertices), len(Teapot(DefaultTeapotDetail).Vertices); a != b {
		t.Errorf("Teapot(0) has %d vertices, Teapot(default) has %d", a, b)
	}
}

func TestTeapotBounds(t *testing.T) {
	lo, hi := Teapot(DefaultTeapotDetail).Bounds()
	if math.Abs(float64(lo.Y())) > 1e-5 {
		t.Errorf("min y = %v, want 0", lo.Y())
	}
	if math.Abs(float64(hi.Y()-TeapotHeight)) > 1e-5 {
		t.Errorf("max y = %v, want %v", hi.Y(), TeapotHeight)
	}
	if hi.X() < 3.2 {
		t.Errorf("max x = %v, spout tip should reach past 3.2", hi.X())
	}
	if lo.X() > -2.8 {
		t.Errorf("min x = %v, handle should reach past -2.8", lo.X())
	}
	if math.Abs(float64(hi.Z()-2)) > 1e-4 || math.Abs(float64(lo.Z()+2)) > 1e-4 {
		t.Errorf("z range = [%v, %v], want [-2, 2]", lo.Z(), hi.Z())
	}
}

func TestTeapotNormalsPointOutward(t *testing.T) {
	m := Teapot(DefaultTeapotDetail)
	probes := []struct {
		pos, normal mgl32.Vec3
	}{
		{mgl32.Vec3{2, 0.9, 0}, mgl32.Vec3{1, 0, 0}},  // widest point of the body
		{mgl32.Vec3{0, 3.15, 0}, mgl32.Vec3{0, 1, 0}}, // top of the knob
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}},   // center of the base
	}
	for _, p := range probes {
		found := false
		for _, v := range m.Vertices {
			if !mgl32.Vec3(v.Position).ApproxEqualThreshold(p.pos, 1e-5) {
				continue
			}
			found = true
			if d := mgl32.Vec3(v.Normal).Dot(p.normal); d < 0.99 {
				t.Errorf("normal at %v = %v, want %v", p.pos, v.Normal, p.normal)
			}
			break
		}
		if !found {
			t.Errorf("no vertex at %v", p.pos)
		}
	}
}

func TestBezierEndpoints(t *testing.T) {
	b := bezier2{{0, 0}, {1, 2}, {3, 2}, {4, 0}}
	p0, d0 := b.eval(0)
	p1, d1 := b.eval(1)
	if p0 != [2]float32{0, 0} || p1 != [2]float32{4, 0} {
		t.Errorf("endpoints = %v, %v", p0, p1)
	}
	if d0 != [2]float32{3, 6} || d1 != [2]float32{3, -6} {
		t.Errorf("end derivatives = %v, %v, want (3, 6) and (3, -6)", d0, d1)
	}

	c := curve{b, {{4, 0}, {5, -1}, {6, -1}, {7, 0}}}
	if c.samples(4) != 9 {
		t.Errorf("samples = %d, want 9", c.samples(4))
	}
	if pt, _ := c.sample(8, 4); pt != [2]float32{7, 0} {
		t.Errorf("last sample = %v, want (7, 0)", pt)
	}
	if pt, _ := c.sample(4, 4); pt != [2]float32{4, 0} {
		t.Errorf("joint sample = %v, want (4, 0)", pt)
	}
}

func TestTriangles(t *testing.T) {
	plain, colored, textured := Triangle(), ColorTriangle(), TexTriangle()
	if len(plain) != 3 || len(colored) != 3 || len(textured) != 3 {
		t.Fatal("triangle helpers should return three vertices")
	}
	for i := range plain {
		if plain[i].Position != colored[i].Position || colored[i].Position != textured[i].Position {
			t.Errorf("vertex %d positions differ between formats", i)
		}
		if colored[i].Color != textured[i].Color {
			t.Errorf("vertex %d colors differ", i)
		}
	}
	if colored[0].Color != [3]float32{1, 0, 0} || colored[2].Color != [3]float32{0, 0, 1} {
		t.Errorf("corner colors = %v, %v", colored[0].Color, colored[2].Color)
	}
	if plain[2].Position != [2]float32{0.5, -0.25} {
		t.Errorf("third corner = %v", plain[2].Position)
	}
}
