package tutorial

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/shader"
	"github.com/gogpu/g3d/shapes"
	"github.com/gogpu/g3d/texture"
)

// matrixUniformSize is one mat4x4<f32>.
const matrixUniformSize = 64

// TextureSize is the width and height of the texture step's default
// checkerboard.
const TextureSize = 200

const checkerCell = 25

// SlideMatrix returns the translation that slides the triangle along x:
// sin(t)/2, so it sweeps between -0.5 and 0.5.
func SlideMatrix(t float32) mgl32.Mat4 {
	x := float32(math.Sin(float64(t))) * 0.5
	return mgl32.Translate3D(x, 0, 0)
}

type clearStep struct{}

// Clear returns the first step: a window cleared to blue every frame.
func Clear() Step { return clearStep{} }

func (clearStep) Name() string { return NameClear }

func (clearStep) Pass() (*g3d.Pass, error) {
	return &g3d.Pass{Label: NameClear, Clear: blue}, nil
}

func (clearStep) Uniforms(loop.Frame) []byte { return nil }

// triangleStep covers the three triangle steps, which differ only in
// vertex format, shader and texture.
type triangleStep struct {
	name     string
	program  string
	loader   *shader.Loader
	geometry func() (vertices []byte, count uint32, format g3d.Vertex)
	texture  func() (*image.RGBA, error)
}

func (s *triangleStep) Name() string { return s.name }

func (s *triangleStep) Pass() (*g3d.Pass, error) {
	code, err := loadShader(s.loader, s.program)
	if err != nil {
		return nil, err
	}
	data, count, v := s.geometry()
	p := &g3d.Pass{
		Label:       s.name,
		Clear:       blue,
		Shader:      code,
		Layout:      v.Layout(),
		Vertices:    data,
		VertexCount: count,
		UniformSize: matrixUniformSize,
	}
	if s.texture != nil {
		if p.Texture, err = s.texture(); err != nil {
			return nil, fmt.Errorf("tutorial: %s texture: %w", s.name, err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *triangleStep) Uniforms(f loop.Frame) []byte {
	return g3d.MatrixBytes(SlideMatrix(f.T))
}

// Triangle returns the red triangle sliding left and right.
func Triangle(l *shader.Loader) Step {
	return &triangleStep{
		name:    NameTriangle,
		program: shader.Triangle,
		loader:  l,
		geometry: func() ([]byte, uint32, g3d.Vertex) {
			vs := shapes.Triangle()
			return g3d.PackVertices(vs), uint32(len(vs)), g3d.Vertex2D{} //nolint:gosec // three vertices
		},
	}
}

// ColorTriangle returns the sliding triangle with red, green and blue
// corners.
func ColorTriangle(l *shader.Loader) Step {
	return &triangleStep{
		name:    NameColor,
		program: shader.Color,
		loader:  l,
		geometry: func() ([]byte, uint32, g3d.Vertex) {
			vs := shapes.ColorTriangle()
			return g3d.PackVertices(vs), uint32(len(vs)), g3d.ColorVertex{} //nolint:gosec // three vertices
		},
	}
}

// Texture returns the colored triangle modulated by img. A nil img
// selects a 200x200 black and white checkerboard. With a blank
// texture.Empty image the triangle renders transparent black.
func Texture(l *shader.Loader, img *image.RGBA) Step {
	return &triangleStep{
		name:    NameTexture,
		program: shader.Texture,
		loader:  l,
		geometry: func() ([]byte, uint32, g3d.Vertex) {
			vs := shapes.TexTriangle()
			return g3d.PackVertices(vs), uint32(len(vs)), g3d.TexVertex{} //nolint:gosec // three vertices
		},
		texture: func() (*image.RGBA, error) {
			if img != nil {
				return img, nil
			}
			return texture.Checkerboard(TextureSize, TextureSize, checkerCell,
				color.White, color.Black)
		},
	}
}
