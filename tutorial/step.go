package tutorial

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"slices"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/shader"
)

// ErrUnknownStep is returned by ByName for names not in Names.
var ErrUnknownStep = errors.New("tutorial: unknown step")

// DefaultModel is the OBJ file the obj step reads when no model is given.
const DefaultModel = "assets/teapot.obj"

// blue is the clear color of every step.
var blue = [4]float64{0, 0, 1, 1}

// Step is one tutorial program.
type Step interface {
	// Name is the short name used on the command line.
	Name() string

	// Pass loads the step's shader and geometry.
	Pass() (*g3d.Pass, error)

	// Uniforms returns the uniform block for a frame, UniformSize bytes.
	Uniforms(loop.Frame) []byte
}

// Step names, in tutorial order.
const (
	NameClear    = "clear"
	NameTriangle = "triangle"
	NameColor    = "color"
	NameTexture  = "texture"
	NameObj      = "obj"
	NameTeapot   = "teapot"
)

// Names lists the steps ByName understands.
func Names() []string {
	return []string{NameClear, NameTriangle, NameColor, NameTexture, NameObj, NameTeapot}
}

type options struct {
	loader  *shader.Loader
	camera  g3d.Camera
	texture *image.RGBA
	modelFS fs.FS
	model   string
	detail  int
}

// Option configures ByName.
type Option func(*options)

// WithLoader sets the shader loader. The default is shader.Default().
func WithLoader(l *shader.Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithCamera sets the teapot camera.
func WithCamera(c g3d.Camera) Option {
	return func(o *options) { o.camera = c }
}

// WithTexture sets the image sampled by the texture step.
func WithTexture(img *image.RGBA) Option {
	return func(o *options) { o.texture = img }
}

// WithModel sets where the obj step reads its mesh from.
func WithModel(fsys fs.FS, name string) Option {
	return func(o *options) { o.modelFS, o.model = fsys, name }
}

// WithDetail sets the tessellation detail of the teapot step.
func WithDetail(detail int) Option {
	return func(o *options) { o.detail = detail }
}

// ByName returns the named step.
func ByName(name string, opts ...Option) (Step, error) {
	o := options{
		camera: g3d.DefaultCamera(),
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.loader == nil {
		o.loader = shader.Default()
	}
	if o.modelFS == nil {
		o.modelFS = os.DirFS(".")
	}

	switch name {
	case NameClear:
		return Clear(), nil
	case NameTriangle:
		return Triangle(o.loader), nil
	case NameColor:
		return ColorTriangle(o.loader), nil
	case NameTexture:
		return Texture(o.loader, o.texture), nil
	case NameObj:
		return ObjTeapot(o.loader, o.modelFS, o.model), nil
	case NameTeapot:
		return Teapot(o.loader, o.camera, o.detail), nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownStep, name, Names())
}

// Known reports whether name is a step name.
func Known(name string) bool {
	return slices.Contains(Names(), name)
}

func loadShader(l *shader.Loader, name string) (string, error) {
	src, err := l.Load(name)
	if err != nil {
		return "", fmt.Errorf("tutorial: %w", err)
	}
	if err := shader.Validate(src); err != nil {
		return "", fmt.Errorf("tutorial: %w", err)
	}
	return src.Code, nil
}
