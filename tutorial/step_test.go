package tutorial

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"math"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/obj"
	"github.com/gogpu/g3d/shader"
	"github.com/gogpu/g3d/shapes"
	"github.com/gogpu/g3d/texture"
	"github.com/gogpu/gputypes"
)

func floatAt(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

func matAt(b []byte, i int) mgl32.Mat4 {
	var m mgl32.Mat4
	for k := range m {
		m[k] = floatAt(b, i*16+k)
	}
	return m
}

func teapotFS(t *testing.T) fstest.MapFS {
	t.Helper()
	var buf bytes.Buffer
	if err := obj.Encode(&buf, shapes.Teapot(2)); err != nil {
		t.Fatal(err)
	}
	return fstest.MapFS{DefaultModel: {Data: buf.Bytes()}}
}

func allSteps(t *testing.T) []Step {
	t.Helper()
	opts := []Option{
		WithLoader(shader.Embedded()),
		WithModel(teapotFS(t), DefaultModel),
		WithDetail(2),
	}
	var steps []Step
	for _, name := range Names() {
		s, err := ByName(name, opts...)
		if err != nil {
			t.Fatalf("ByName(%q) error = %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, s.Name())
		}
		steps = append(steps, s)
	}
	return steps
}

func TestStepsProduceValidPasses(t *testing.T) {
	frame := loop.Frame{Index: 1, T: loop.DefaultStep, Width: 1024, Height: 768}
	for _, s := range allSteps(t) {
		t.Run(s.Name(), func(t *testing.T) {
			p, err := s.Pass()
			if err != nil {
				t.Fatalf("Pass() error = %v", err)
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if p.Clear != [4]float64{0, 0, 1, 1} {
				t.Errorf("clear = %v, want blue", p.Clear)
			}
			u := s.Uniforms(frame)
			if uint64(len(u)) != p.UniformSize {
				t.Errorf("uniforms are %d bytes, pass declares %d", len(u), p.UniformSize)
			}
		})
	}
}

func TestClearStep(t *testing.T) {
	p, err := Clear().Pass()
	if err != nil {
		t.Fatal(err)
	}
	if !p.ClearOnly() {
		t.Error("clear step draws geometry")
	}
}

func TestTriangleUniformsSlide(t *testing.T) {
	s := Triangle(shader.Embedded())
	tests := []struct {
		t     float32
		wantX float64
	}{
		{loop.DefaultStep, math.Sin(0.02) * 0.5},
		{math.Pi / 2, 0.5},
		{-math.Pi / 2, -0.5},
	}
	for _, tt := range tests {
		u := s.Uniforms(loop.Frame{T: tt.t})
		// Column 3, row 0 of a column-major mat4.
		if got := floatAt(u, 12); math.Abs(float64(got)-tt.wantX) > 1e-6 {
			t.Errorf("t = %v: x = %v, want %v", tt.t, got, tt.wantX)
		}
		if m := matAt(u, 0); m.At(0, 0) != 1 || m.At(1, 1) != 1 || m.At(1, 3) != 0 {
			t.Errorf("t = %v: matrix is not a pure x translation: %v", tt.t, m)
		}
	}
}

func TestTrianglePassLayouts(t *testing.T) {
	l := shader.Embedded()
	tests := []struct {
		step   Step
		stride uint64
		attrs  int
	}{
		{Triangle(l), g3d.Vertex2DStride, 1},
		{ColorTriangle(l), g3d.ColorVertexStride, 2},
		{Texture(l, nil), g3d.TexVertexStride, 3},
	}
	for _, tt := range tests {
		p, err := tt.step.Pass()
		if err != nil {
			t.Fatalf("%s: %v", tt.step.Name(), err)
		}
		if uint64(p.Layout.ArrayStride) != tt.stride || len(p.Layout.Attributes) != tt.attrs {
			t.Errorf("%s: stride %d with %d attributes, want %d with %d",
				tt.step.Name(), p.Layout.ArrayStride, len(p.Layout.Attributes), tt.stride, tt.attrs)
		}
		if p.VertexCount != 3 || p.Indexed() || p.DepthTest {
			t.Errorf("%s: unexpected draw setup %+v", tt.step.Name(), p)
		}
	}
}

func TestTextureStep(t *testing.T) {
	p, err := Texture(shader.Embedded(), nil).Pass()
	if err != nil {
		t.Fatal(err)
	}
	if p.Texture == nil || p.Texture.Bounds() != image.Rect(0, 0, 200, 200) {
		t.Fatalf("default texture = %v", p.Texture)
	}

	blank, _ := texture.Empty(16, 16)
	p, err = Texture(shader.Embedded(), blank).Pass()
	if err != nil {
		t.Fatal(err)
	}
	if p.Texture != blank {
		t.Error("Texture() ignored the given image")
	}
}

func TestTeapotStep(t *testing.T) {
	cam := g3d.DefaultCamera()
	s := Teapot(shader.Embedded(), cam, 2)
	p, err := s.Pass()
	if err != nil {
		t.Fatal(err)
	}
	if !p.DepthTest || !p.Indexed() || p.IndexFormat != gputypes.IndexFormatUint16 {
		t.Errorf("teapot pass: depth %v indexed %v format %v", p.DepthTest, p.Indexed(), p.IndexFormat)
	}

	u := s.Uniforms(loop.Frame{Width: 800, Height: 600})
	model, view, proj := matAt(u, 0), matAt(u, 1), matAt(u, 2)
	if view != cam.View() {
		t.Error("view uniform differs from the camera view")
	}
	if light := (mgl32.Vec4{floatAt(u, 48), floatAt(u, 49), floatAt(u, 50), floatAt(u, 51)}); light != Light.Vec4(0) {
		t.Errorf("light = %v, want %v", light, Light)
	}

	// The camera looks at the teapot's center, which lands mid-screen at a
	// depth inside the WebGPU range.
	lo, hi := shapes.Teapot(2).Bounds()
	center := lo.Add(hi).Mul(0.5)
	ndc := g3d.ProjectPoint(proj.Mul4(view).Mul4(model), center)
	if math.Abs(float64(ndc.X())) > 1e-4 || math.Abs(float64(ndc.Y())) > 1e-4 {
		t.Errorf("center projects to %v, want the middle of the screen", ndc)
	}
	if ndc.Z() <= 0 || ndc.Z() >= 1 {
		t.Errorf("center depth = %v, want in (0, 1)", ndc.Z())
	}
}

func TestTeapotStepTable(t *testing.T) {
	p, err := Teapot(shader.Embedded(), g3d.DefaultCamera(), 0).Pass()
	if err != nil {
		t.Fatal(err)
	}
	table := shapes.TeapotTable()
	if p.VertexCount != uint32(len(table.Vertices)) || p.IndexCount != uint32(len(table.Indices)) {
		t.Errorf("pass draws %d vertices and %d indices, table has %d and %d",
			p.VertexCount, p.IndexCount, len(table.Vertices), len(table.Indices))
	}
	if !bytes.Equal(p.Vertices, table.VertexBytes()) {
		t.Error("pass vertices differ from the static table")
	}
}

func TestTeapotStepBadCamera(t *testing.T) {
	cam := g3d.DefaultCamera()
	cam.Up = cam.Direction
	_, err := Teapot(shader.Embedded(), cam, 2).Pass()
	if !errors.Is(err, g3d.ErrDegenerateBasis) {
		t.Errorf("Pass() error = %v, want ErrDegenerateBasis", err)
	}
}

func TestObjStep(t *testing.T) {
	s := ObjTeapot(shader.Embedded(), teapotFS(t), DefaultModel)
	p, err := s.Pass()
	if err != nil {
		t.Fatal(err)
	}
	if !p.DepthTest || p.IndexCount != uint32(len(shapes.Teapot(2).Indices)) {
		t.Errorf("obj pass: depth %v, %d indices", p.DepthTest, p.IndexCount)
	}

	u := s.Uniforms(loop.Frame{Width: 1024, Height: 768})
	if matAt(u, 1) != mgl32.Ident4() {
		t.Error("view uniform is not the identity")
	}
	lo, hi := shapes.Teapot(2).Bounds()
	ndc := g3d.ProjectPoint(matAt(u, 2).Mul4(matAt(u, 0)), lo.Add(hi).Mul(0.5))
	if math.Abs(float64(ndc.X())) > 1e-4 || math.Abs(float64(ndc.Y())) > 1e-4 || ndc.Z() <= 0 || ndc.Z() >= 1 {
		t.Errorf("mesh center projects to %v", ndc)
	}
}

func TestObjStepMissingModel(t *testing.T) {
	_, err := ObjTeapot(shader.Embedded(), fstest.MapFS{}, DefaultModel).Pass()
	if err == nil {
		t.Fatal("Pass() succeeded without a model file")
	}
}

func TestMissingShader(t *testing.T) {
	empty := shader.NewLoader(fstest.MapFS{}, shader.DefaultDir)
	if _, err := Triangle(empty).Pass(); !errors.Is(err, shader.ErrNotFound) {
		t.Errorf("Pass() error = %v, want shader.ErrNotFound", err)
	}
}

func TestBrokenShader(t *testing.T) {
	fsys := fstest.MapFS{"shaders/triangle.wgsl": {Data: []byte("this is not wgsl {{{")}}
	_, err := Triangle(shader.NewLoader(fsys, shader.DefaultDir)).Pass()
	if !errors.Is(err, shader.ErrCompile) {
		t.Fatalf("Pass() error = %v, want shader.ErrCompile", err)
	}
	var ce *shader.CompileError
	if !errors.As(err, &ce) || ce.Name != shader.Triangle {
		t.Errorf("error %v does not carry the triangle CompileError", err)
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("cube"); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("ByName(cube) error = %v, want ErrUnknownStep", err)
	}
	if Known("cube") || !Known(NameTeapot) {
		t.Error("Known() disagrees with Names()")
	}
}
