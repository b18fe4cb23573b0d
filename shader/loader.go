package shader

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/gogpu/g3d"
)

// DefaultDir is the directory, relative to the working directory, that
// Default reads shader files from.
const DefaultDir = "shaders"

// Ext is the file extension of shader sources.
const Ext = ".wgsl"

// Built-in program names.
const (
	Triangle = "triangle"
	Color    = "color"
	Texture  = "texture"
	Mesh     = "mesh"
	Teapot   = "teapot"
)

// Builtins lists the programs served by Embedded.
var Builtins = []string{Triangle, Color, Texture, Mesh, Teapot}

// ErrNotFound is returned when no loader in the chain has the program.
var ErrNotFound = errors.New("shader: not found")

//go:embed wgsl/*.wgsl
var builtin embed.FS

// Source is a loaded WGSL program.
type Source struct {
	// Name is the program name without directory or extension.
	Name string

	// Path is the file the code was read from, relative to the loader's FS.
	Path string

	// Code is the WGSL text.
	Code string
}

// Loader reads <Dir>/<name>.wgsl from FS. When the file does not exist
// and Fallback is set, the lookup continues there.
type Loader struct {
	FS       fs.FS
	Dir      string
	Fallback *Loader
}

// NewLoader returns a Loader for dir inside fsys with no fallback.
func NewLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{FS: fsys, Dir: dir}
}

// Embedded returns a Loader over the built-in programs.
func Embedded() *Loader {
	return &Loader{FS: builtin, Dir: "wgsl"}
}

// Default reads from DefaultDir on disk and falls back to the built-in
// programs, so the examples run from any directory.
func Default() *Loader {
	return &Loader{FS: os.DirFS("."), Dir: DefaultDir, Fallback: Embedded()}
}

// Load returns the named program. A program missing from every loader in
// the chain yields an error wrapping ErrNotFound and fs.ErrNotExist.
func (l *Loader) Load(name string) (Source, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return Source{}, fmt.Errorf("shader: invalid name %q", name)
	}
	p := path.Join(l.Dir, name+Ext)

	data, err := fs.ReadFile(l.FS, p)
	switch {
	case err == nil:
		return Source{Name: name, Path: p, Code: string(data)}, nil
	case errors.Is(err, fs.ErrNotExist):
		if l.Fallback != nil {
			g3d.Logger().Warn("shader: using fallback", "name", name, "missing", p)
			return l.Fallback.Load(name)
		}
		return Source{}, fmt.Errorf("%w: %s: %w", ErrNotFound, p, err)
	default:
		return Source{}, fmt.Errorf("shader: read %s: %w", p, err)
	}
}
