package shader

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoaderLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/custom.wgsl": {Data: []byte("// custom")},
	}
	src, err := NewLoader(fsys, DefaultDir).Load("custom")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if src.Name != "custom" || src.Path != "shaders/custom.wgsl" || src.Code != "// custom" {
		t.Errorf("Load() = %+v", src)
	}
}

func TestLoaderNotFound(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, DefaultDir)
	_, err := l.Load("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "shaders/missing.wgsl") {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestLoaderInvalidName(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, DefaultDir)
	for _, name := range []string{"", "../escape", "/abs"} {
		if _, err := l.Load(name); err == nil || errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q) error = %v, want invalid name", name, err)
		}
	}
}

func TestLoaderFallback(t *testing.T) {
	override := fstest.MapFS{
		"shaders/teapot.wgsl": {Data: []byte("// override")},
	}
	l := &Loader{FS: override, Dir: DefaultDir, Fallback: Embedded()}

	src, err := l.Load(Teapot)
	if err != nil {
		t.Fatalf("Load(teapot) error = %v", err)
	}
	if src.Code != "// override" {
		t.Error("file on the primary FS should win over the fallback")
	}

	src, err = l.Load(Color)
	if err != nil {
		t.Fatalf("Load(color) error = %v", err)
	}
	if src.Path != "wgsl/color.wgsl" {
		t.Errorf("fallback path = %q, want wgsl/color.wgsl", src.Path)
	}

	if _, err := l.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing everywhere: error = %v, want ErrNotFound", err)
	}
}

func TestEmbeddedBuiltins(t *testing.T) {
	l := Embedded()
	for _, name := range Builtins {
		t.Run(name, func(t *testing.T) {
			src, err := l.Load(name)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			for _, want := range []string{"@vertex", "@fragment", "vs_main", "fs_main", "@group(0) @binding(0)"} {
				if !strings.Contains(src.Code, want) {
					t.Errorf("%s missing %q", name, want)
				}
			}
		})
	}

	tex := Embedded()
	src, err := tex.Load(Texture)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"texture_2d<f32>", "sampler", "textureSample", "@binding(2)"} {
		if !strings.Contains(src.Code, want) {
			t.Errorf("texture shader missing %q", want)
		}
	}
}

// The files under shaders/ at the repository root are the editable copies
// of the embedded programs and must not drift.
func TestDiskCopiesMatchEmbedded(t *testing.T) {
	disk := NewLoader(os.DirFS(".."), DefaultDir)
	for _, name := range Builtins {
		want, err := Embedded().Load(name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := disk.Load(name)
		if errors.Is(err, ErrNotFound) {
			t.Skipf("no %s directory next to the module", DefaultDir)
		}
		if err != nil {
			t.Fatal(err)
		}
		if got.Code != want.Code {
			t.Errorf("%s: shaders/%s.wgsl differs from the embedded copy", name, name)
		}
	}
}
