package tutorial

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/obj"
	"github.com/gogpu/g3d/shader"
	"github.com/gogpu/g3d/shapes"
)

// Uniform block sizes: model, view and perspective matrices, plus the
// light direction for the shaded teapot.
const (
	meshUniformSize   = 3 * 64
	teapotUniformSize = 3*64 + 16
)

// Light is the direction toward the light, in view space.
var Light = mgl32.Vec3{-1, 0.4, 0.9}

// meshDistance is how far in front of the viewer the fitted mesh sits.
const meshDistance = 2

// meshPass builds the indexed, depth-tested pass for m.
func meshPass(name, code string, m *g3d.Mesh, uniformSize uint64) (*g3d.Pass, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("tutorial: %s: %w", name, err)
	}
	p := &g3d.Pass{
		Label:       name,
		Clear:       blue,
		Shader:      code,
		Layout:      g3d.MeshVertex{}.Layout(),
		Vertices:    m.VertexBytes(),
		VertexCount: uint32(len(m.Vertices)), //nolint:gosec // validated mesh
		Indices:     m.IndexBytes(),
		IndexFormat: m.IndexFormat(),
		IndexCount:  uint32(len(m.Indices)), //nolint:gosec // validated mesh
		UniformSize: uniformSize,
		DepthTest:   true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g3d.Logger().Debug("tutorial: mesh pass",
		"step", name,
		"vertices", p.VertexCount,
		"indices", p.IndexCount,
		"index_format", p.IndexFormat)
	return p, nil
}

// fitModel places m centered meshDistance units in front of the viewer
// with its largest extent scaled to one unit.
func fitModel(m *g3d.Mesh) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, meshDistance).Mul4(m.FitMatrix(1))
}

type objStep struct {
	loader *shader.Loader
	fsys   fs.FS
	path   string
	model  mgl32.Mat4
}

// ObjTeapot returns the step that loads a mesh from an OBJ file and draws
// it with depth testing, seen from the origin along +Z.
func ObjTeapot(l *shader.Loader, fsys fs.FS, path string) Step {
	return &objStep{loader: l, fsys: fsys, path: path, model: mgl32.Ident4()}
}

func (s *objStep) Name() string { return NameObj }

func (s *objStep) Pass() (*g3d.Pass, error) {
	code, err := loadShader(s.loader, shader.Mesh)
	if err != nil {
		return nil, err
	}
	m, err := obj.Load(s.fsys, s.path)
	if err != nil {
		return nil, fmt.Errorf("tutorial: %w", err)
	}
	s.model = fitModel(m)
	return meshPass(NameObj, code, m, meshUniformSize)
}

// Uniforms returns model, an identity view and the clip-corrected
// perspective for the frame size.
func (s *objStep) Uniforms(f loop.Frame) []byte {
	perspective := g3d.ClipCorrection.Mul4(
		g3d.Perspective(g3d.Aspect(f.Width, f.Height), g3d.DefaultCamera().FovY, 0.1, 1024))
	return g3d.MatrixBytes(s.model, mgl32.Ident4(), perspective)
}

type teapotStep struct {
	loader *shader.Loader
	camera g3d.Camera
	detail int
	model  mgl32.Mat4
}

// Teapot returns the final step: the built-in teapot, lit from Light and
// viewed through camera. detail <= 0 draws the precomputed
// shapes.TeapotTable; a positive detail tessellates the teapot anew.
func Teapot(l *shader.Loader, camera g3d.Camera, detail int) Step {
	return &teapotStep{loader: l, camera: camera, detail: detail, model: mgl32.Ident4()}
}

func (s *teapotStep) Name() string { return NameTeapot }

func (s *teapotStep) Pass() (*g3d.Pass, error) {
	if err := s.camera.Validate(); err != nil {
		return nil, fmt.Errorf("tutorial: teapot camera: %w", err)
	}
	code, err := loadShader(s.loader, shader.Teapot)
	if err != nil {
		return nil, err
	}
	m := shapes.TeapotTable()
	if s.detail > 0 {
		m = shapes.Teapot(s.detail)
	}
	s.model = fitModel(m)
	return meshPass(NameTeapot, code, m, teapotUniformSize)
}

// Uniforms returns model, the camera view, the clip-corrected perspective
// and the light direction.
func (s *teapotStep) Uniforms(f loop.Frame) []byte {
	b := g3d.MatrixBytes(s.model, s.camera.View(), s.camera.ClipProjection(f.Width, f.Height))
	return g3d.AppendFloat32s(b, Light[0], Light[1], Light[2], 0)
}
